package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/braindump/internal/db"
	"github.com/alexanderramin/braindump/internal/domain"
)

// SQLiteDumpRepo implements DumpRepo using a SQLite database.
type SQLiteDumpRepo struct {
	db db.DBTX
}

// NewSQLiteDumpRepo creates a new SQLiteDumpRepo.
func NewSQLiteDumpRepo(conn db.DBTX) *SQLiteDumpRepo {
	return &SQLiteDumpRepo{db: conn}
}

func (r *SQLiteDumpRepo) Create(ctx context.Context, d *domain.BrainDump) error {
	query := `INSERT INTO brain_dumps (id, raw_text, capacity, task_count, provider, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.RawText,
		optionalText(d.Capacity),
		d.TaskCount,
		d.Provider,
		formatTime(d.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting brain dump: %w", err)
	}
	return nil
}

func (r *SQLiteDumpRepo) GetByID(ctx context.Context, id string) (*domain.BrainDump, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, raw_text, capacity, task_count, provider, created_at FROM brain_dumps WHERE id = ?`, id)
	d, err := scanDump(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("brain dump: %w", ErrNotFound)
	}
	return d, err
}

func (r *SQLiteDumpRepo) ListRecent(ctx context.Context, limit int) ([]*domain.BrainDump, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, raw_text, capacity, task_count, provider, created_at
		FROM brain_dumps ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing brain dumps: %w", err)
	}
	defer rows.Close()

	var dumps []*domain.BrainDump
	for rows.Next() {
		d, err := scanDump(rows)
		if err != nil {
			return nil, err
		}
		dumps = append(dumps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brain dumps: %w", err)
	}
	return dumps, nil
}

func scanDump(s rowScanner) (*domain.BrainDump, error) {
	var d domain.BrainDump
	var capacity sql.NullString
	var createdAt string
	if err := s.Scan(&d.ID, &d.RawText, &capacity, &d.TaskCount, &d.Provider, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning brain dump: %w", err)
	}
	if capacity.Valid {
		c := domain.AICapacity(capacity.String)
		d.Capacity = &c
	}
	var err error
	if d.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing brain dump created_at: %w", err)
	}
	return &d, nil
}
