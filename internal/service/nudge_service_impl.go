package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/nudge"
	"github.com/alexanderramin/braindump/internal/repository"
)

type nudgeService struct {
	tasks repository.TaskRepo
	day   DayService
}

func NewNudgeService(tasks repository.TaskRepo, day DayService) NudgeService {
	return &nudgeService{tasks: tasks, day: day}
}

// Check builds a nudge context from the store. Completion counts are left
// out: celebrations fire once when a task is completed, not on every poll.
func (s *nudgeService) Check(ctx context.Context, now time.Time, endOfDay bool) ([]domain.Nudge, error) {
	counters, err := s.day.Counters(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading day counters: %w", err)
	}
	tasks, err := s.tasks.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	open := 0
	statuses := make([]nudge.TaskStatus, len(tasks))
	for i, t := range tasks {
		statuses[i] = nudge.TaskStatus{Title: t.Title, Completed: t.Completed}
		if !t.Completed {
			open++
		}
	}

	nctx := nudge.Context{
		Capacity:          counters.Capacity,
		FocusMinutes:      counters.FocusMinutes(now),
		MinutesSinceBreak: counters.MinutesSinceBreak(now),
		IsEndOfDay:        endOfDay,
		Tasks:             statuses,
	}
	if counters.Capacity != nil {
		nctx.TaskCount = &open
	}
	return s.Evaluate(nctx), nil
}

func (s *nudgeService) Evaluate(nctx nudge.Context) []domain.Nudge {
	return nudge.Check(nctx)
}
