package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/braindump/internal/app"
	"github.com/alexanderramin/braindump/internal/compression"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/nudge"
	"github.com/alexanderramin/braindump/internal/scheduler"
)

type PlanService interface {
	BrainDump(ctx context.Context, req app.BrainDumpRequest) (*app.BrainDumpResult, error)
	Compress(ctx context.Context, text string, c *domain.AICapacity) compression.Result
	StreamCompress(ctx context.Context, text string, c *domain.AICapacity) (io.ReadCloser, error)
	RecentDumps(ctx context.Context, limit int) ([]*domain.BrainDump, error)
}

type TaskService interface {
	List(ctx context.Context, includeCompleted bool) ([]*domain.PlannedTask, error)
	Get(ctx context.Context, ref string) (*domain.PlannedTask, error)
	Complete(ctx context.Context, ref string) (*app.CompletionResult, error)
	Reopen(ctx context.Context, ref string) (*domain.PlannedTask, error)
	Remove(ctx context.Context, ref string) (*domain.PlannedTask, error)
	Clear(ctx context.Context) (int, error)
}

type ScheduleService interface {
	// Plan schedules the open tasks in the store with the configured
	// preferences.
	Plan(ctx context.Context, day time.Time) (*scheduler.Plan, error)
	PlanTasks(day time.Time, tasks []domain.Task, prefs *domain.Preferences) (*scheduler.Plan, error)
	Defaults() domain.Preferences
}

type DayService interface {
	Counters(ctx context.Context) (domain.DayCounters, error)
	StartFocus(ctx context.Context, now time.Time) error
	StopFocus(ctx context.Context) error
	TakeBreak(ctx context.Context, now time.Time) error
	SetCapacity(ctx context.Context, c domain.AICapacity) error
}

type NudgeService interface {
	// Check evaluates the nudges for the stored day state at now.
	Check(ctx context.Context, now time.Time, endOfDay bool) ([]domain.Nudge, error)
	Evaluate(nctx nudge.Context) []domain.Nudge
}

// Compile-time checks that services satisfy the adapter ports.
var (
	_ app.BrainDumpUseCase      = PlanService(nil)
	_ app.CompressUseCase       = PlanService(nil)
	_ app.PlanTasksUseCase      = ScheduleService(nil)
	_ app.EvaluateNudgesUseCase = NudgeService(nil)
)
