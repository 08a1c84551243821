package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/braindump/internal/app"
	"github.com/alexanderramin/braindump/internal/compression"
	"github.com/alexanderramin/braindump/internal/db"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/nudge"
	"github.com/alexanderramin/braindump/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	engine   *compression.Engine
	dumps    repository.DumpRepo
	uow      db.UnitOfWork
	provider string
	timeout  time.Duration
	observer UseCaseObserver
}

// NewPlanService wires the compression engine to the task store. provider
// is recorded on every dump. A zero timeout leaves the backend call bounded
// only by the caller's context.
func NewPlanService(
	engine *compression.Engine,
	dumps repository.DumpRepo,
	uow db.UnitOfWork,
	provider string,
	timeout time.Duration,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		engine:   engine,
		dumps:    dumps,
		uow:      uow,
		provider: provider,
		timeout:  timeout,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *planService) Compress(ctx context.Context, text string, c *domain.AICapacity) (res compression.Result) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "compress",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   res.Success,
			Err:       res.Err,
			Fields:    map[string]any{"task_count": len(res.Tasks), "capacity": capacityField(c)},
		})
	}()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.engine.Compress(ctx, text, c)
}

// StreamCompress is not bounded by the service timeout: the stream lives
// as long as the caller reads it.
func (s *planService) StreamCompress(ctx context.Context, text string, c *domain.AICapacity) (io.ReadCloser, error) {
	return s.engine.Stream(ctx, text, c)
}

func (s *planService) BrainDump(ctx context.Context, req app.BrainDumpRequest) (result *app.BrainDumpResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"capacity": capacityField(req.Capacity), "replace": req.Replace}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "brain-dump",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	res := s.Compress(ctx, req.Text, req.Capacity)
	if !res.Success {
		return nil, fmt.Errorf("%w: %w", ErrCompressionFailed, res.Err)
	}

	now := time.Now().UTC()
	dump := &domain.BrainDump{
		ID:        uuid.New().String(),
		RawText:   req.Text,
		Capacity:  req.Capacity,
		TaskCount: len(res.Tasks),
		Provider:  s.provider,
		CreatedAt: now,
	}
	planned := make([]*domain.PlannedTask, len(res.Tasks))
	var openCount int

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txDumps := repository.NewSQLiteDumpRepo(tx)

		if req.Replace {
			if _, err := txTasks.DeleteAll(ctx); err != nil {
				return err
			}
		}
		if err := txDumps.Create(ctx, dump); err != nil {
			return err
		}

		pos, err := txTasks.NextPosition(ctx)
		if err != nil {
			return err
		}
		for i, t := range res.Tasks {
			planned[i] = &domain.PlannedTask{
				Task:      t,
				ID:        uuid.New().String(),
				DumpID:    dump.ID,
				Position:  pos + i,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := txTasks.Create(ctx, planned[i]); err != nil {
				return err
			}
		}

		completed, total, err := txTasks.Counts(ctx)
		if err != nil {
			return err
		}
		openCount = total - completed
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storing brain dump: %w", err)
	}
	fields["task_count"] = len(planned)

	var nudges []domain.Nudge
	if req.Capacity != nil {
		nudges = nudge.Check(nudge.Context{
			TaskCount:          &openCount,
			AttemptedTaskCount: &openCount,
			Capacity:           req.Capacity,
		})
	}
	return &app.BrainDumpResult{Dump: dump, Tasks: planned, Nudges: nudges}, nil
}

func (s *planService) RecentDumps(ctx context.Context, limit int) ([]*domain.BrainDump, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.dumps.ListRecent(ctx, limit)
}

func capacityField(c *domain.AICapacity) string {
	if c == nil {
		return "none"
	}
	return string(*c)
}
