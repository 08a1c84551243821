// Package app declares the use cases the CLI and HTTP adapters drive.
// Services in internal/service implement them.
package app

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/braindump/internal/compression"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/nudge"
	"github.com/alexanderramin/braindump/internal/scheduler"
)

// CompressUseCase is the stateless AI compression used by the HTTP API.
type CompressUseCase interface {
	Compress(ctx context.Context, text string, c *domain.AICapacity) compression.Result
	StreamCompress(ctx context.Context, text string, c *domain.AICapacity) (io.ReadCloser, error)
}

// BrainDumpUseCase compresses text and stores the resulting tasks.
type BrainDumpUseCase interface {
	BrainDump(ctx context.Context, req BrainDumpRequest) (*BrainDumpResult, error)
}

// PlanTasksUseCase schedules a caller-supplied task list.
type PlanTasksUseCase interface {
	PlanTasks(day time.Time, tasks []domain.Task, prefs *domain.Preferences) (*scheduler.Plan, error)
}

// EvaluateNudgesUseCase runs the nudge engine on caller-supplied counters.
type EvaluateNudgesUseCase interface {
	Evaluate(nctx nudge.Context) []domain.Nudge
}

type BrainDumpRequest struct {
	Text     string
	Capacity *domain.AICapacity
	// Replace clears the current task list before storing the new tasks.
	Replace bool
}

type BrainDumpResult struct {
	Dump   *domain.BrainDump
	Tasks  []*domain.PlannedTask
	Nudges []domain.Nudge
}

type CompletionResult struct {
	Task  *domain.PlannedTask
	Nudge *domain.Nudge
}
