package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/repository"
	"github.com/alexanderramin/braindump/internal/scheduler"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type scheduleService struct {
	tasks    repository.TaskRepo
	defaults domain.Preferences
}

// NewScheduleService plans stored tasks with defaults. Requests that carry
// their own preferences override defaults field by field.
func NewScheduleService(tasks repository.TaskRepo, defaults domain.Preferences) ScheduleService {
	return &scheduleService{tasks: tasks, defaults: defaults}
}

func (s *scheduleService) Defaults() domain.Preferences {
	return s.defaults
}

func (s *scheduleService) Plan(ctx context.Context, day time.Time) (*scheduler.Plan, error) {
	open, err := s.tasks.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return s.PlanTasks(day, domain.TasksOf(open), nil)
}

func (s *scheduleService) PlanTasks(day time.Time, tasks []domain.Task, prefs *domain.Preferences) (*scheduler.Plan, error) {
	merged := s.defaults
	if prefs != nil {
		if err := validate.Struct(*prefs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
		}
		merged = s.defaults.Override(*prefs)
	}
	return scheduler.BuildPlan(day, tasks, merged)
}
