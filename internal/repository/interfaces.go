package repository

import (
	"context"

	"github.com/alexanderramin/braindump/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.PlannedTask) error
	GetByID(ctx context.Context, id string) (*domain.PlannedTask, error)
	// GetByPrefix resolves a full id or a unique id prefix.
	GetByPrefix(ctx context.Context, prefix string) (*domain.PlannedTask, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.PlannedTask, error)
	Update(ctx context.Context, t *domain.PlannedTask) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int, error)
	NextPosition(ctx context.Context) (int, error)
	Counts(ctx context.Context) (completed, total int, err error)
}

type DumpRepo interface {
	Create(ctx context.Context, d *domain.BrainDump) error
	GetByID(ctx context.Context, id string) (*domain.BrainDump, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.BrainDump, error)
}

// KVRepo stores small string values such as the day counters.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
