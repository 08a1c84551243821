package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/braindump/internal/capacity"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/repository"
)

// Keys of the day counters in the kv table.
const (
	keyFocusStartedAt = "focus_started_at"
	keyLastBreakAt    = "last_break_at"
	keyCapacity       = "capacity"
)

type dayService struct {
	kv repository.KVRepo
}

func NewDayService(kv repository.KVRepo) DayService {
	return &dayService{kv: kv}
}

func (s *dayService) Counters(ctx context.Context) (domain.DayCounters, error) {
	var c domain.DayCounters
	var err error
	if c.FocusStartedAt, err = s.getTime(ctx, keyFocusStartedAt); err != nil {
		return c, err
	}
	if c.LastBreakAt, err = s.getTime(ctx, keyLastBreakAt); err != nil {
		return c, err
	}

	raw, err := s.kv.Get(ctx, keyCapacity)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return c, err
	default:
		parsed, err := capacity.ParseAICapacity(raw)
		if err != nil {
			return c, fmt.Errorf("stored capacity: %w", err)
		}
		c.Capacity = &parsed
	}
	return c, nil
}

// StartFocus begins a focus session. A running session is restarted and
// the break clock is reset with it.
func (s *dayService) StartFocus(ctx context.Context, now time.Time) error {
	if err := s.kv.Delete(ctx, keyLastBreakAt); err != nil {
		return err
	}
	return s.kv.Set(ctx, keyFocusStartedAt, now.UTC().Format(time.RFC3339))
}

func (s *dayService) StopFocus(ctx context.Context) error {
	if err := s.kv.Delete(ctx, keyFocusStartedAt); err != nil {
		return err
	}
	return s.kv.Delete(ctx, keyLastBreakAt)
}

// TakeBreak records a break. Focus time keeps counting from the session
// start; only the break clock resets.
func (s *dayService) TakeBreak(ctx context.Context, now time.Time) error {
	return s.kv.Set(ctx, keyLastBreakAt, now.UTC().Format(time.RFC3339))
}

func (s *dayService) SetCapacity(ctx context.Context, c domain.AICapacity) error {
	if _, err := capacity.ParseAICapacity(string(c)); err != nil {
		return err
	}
	return s.kv.Set(ctx, keyCapacity, string(c))
}

func (s *dayService) getTime(ctx context.Context, key string) (*time.Time, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("stored %s: %w", key, err)
	}
	return &t, nil
}
