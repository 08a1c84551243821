package service

import (
	"context"
	"time"

	"github.com/alexanderramin/braindump/internal/app"
	"github.com/alexanderramin/braindump/internal/db"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/nudge"
	"github.com/alexanderramin/braindump/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		uow:      uow,
		now:      func() time.Time { return time.Now().UTC() },
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) List(ctx context.Context, includeCompleted bool) ([]*domain.PlannedTask, error) {
	return s.tasks.List(ctx, includeCompleted)
}

func (s *taskService) Get(ctx context.Context, ref string) (*domain.PlannedTask, error) {
	return s.tasks.GetByPrefix(ctx, ref)
}

// Complete marks the task done and returns the celebration nudge for the
// new completion count, if any.
func (s *taskService) Complete(ctx context.Context, ref string) (result *app.CompletionResult, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "complete-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"ref": ref},
		})
	}()

	result = &app.CompletionResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		task, err := txTasks.GetByPrefix(ctx, ref)
		if err != nil {
			return err
		}
		if err := task.Complete(s.now()); err != nil {
			return err
		}
		if err := txTasks.Update(ctx, task); err != nil {
			return err
		}
		completed, total, err := txTasks.Counts(ctx)
		if err != nil {
			return err
		}
		result.Task = task
		result.Nudge = nudge.TaskCompletion(completed, total)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *taskService) Reopen(ctx context.Context, ref string) (*domain.PlannedTask, error) {
	var task *domain.PlannedTask
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		var err error
		task, err = txTasks.GetByPrefix(ctx, ref)
		if err != nil {
			return err
		}
		if err := task.Reopen(s.now()); err != nil {
			return err
		}
		return txTasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Remove(ctx context.Context, ref string) (*domain.PlannedTask, error) {
	var task *domain.PlannedTask
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		var err error
		task, err = txTasks.GetByPrefix(ctx, ref)
		if err != nil {
			return err
		}
		return txTasks.Delete(ctx, task.ID)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Clear(ctx context.Context) (int, error) {
	return s.tasks.DeleteAll(ctx)
}
