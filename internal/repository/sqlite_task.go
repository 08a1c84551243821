package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/braindump/internal/db"
	"github.com/alexanderramin/braindump/internal/domain"
)

// ErrAmbiguousPrefix is returned when an id prefix matches more than one task.
var ErrAmbiguousPrefix = errors.New("ambiguous id prefix")

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, dump_id, position, title, duration_minutes, color, reasoning,
	completed, completed_at, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.PlannedTask) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		optionalText(&t.DumpID),
		t.Position,
		t.Title,
		t.DurationMinutes,
		string(t.Color),
		t.Reasoning,
		sqliteBool(t.Completed),
		formatOptionalTime(t.CompletedAt),
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.PlannedTask, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.PlannedTask, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, fmt.Errorf("task: %w", ErrNotFound)
	}
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id LIKE ? ESCAPE '\' ORDER BY position LIMIT 2`,
		escaped+"%")
	if err != nil {
		return nil, fmt.Errorf("resolving task prefix: %w", err)
	}
	defer rows.Close()

	tasks, err := r.scanTasks(rows)
	if err != nil {
		return nil, err
	}
	switch len(tasks) {
	case 0:
		return nil, fmt.Errorf("task %q: %w", prefix, ErrNotFound)
	case 1:
		return tasks[0], nil
	default:
		return nil, fmt.Errorf("task %q: %w", prefix, ErrAmbiguousPrefix)
	}
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.PlannedTask, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeCompleted {
		query += ` WHERE completed = 0`
	}
	query += ` ORDER BY position, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.PlannedTask) error {
	query := `UPDATE tasks SET position = ?, title = ?, duration_minutes = ?, color = ?, reasoning = ?,
		completed = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Position,
		t.Title,
		t.DurationMinutes,
		string(t.Color),
		t.Reasoning,
		sqliteBool(t.Completed),
		formatOptionalTime(t.CompletedAt),
		formatTime(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return expectOneRow(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return expectOneRow(res, "task")
}

func (r *SQLiteTaskRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks`)
	if err != nil {
		return 0, fmt.Errorf("clearing tasks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing tasks: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteTaskRepo) NextPosition(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM tasks`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("reading next task position: %w", err)
	}
	return next, nil
}

func (r *SQLiteTaskRepo) Counts(ctx context.Context) (completed, total int, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(completed), 0), COUNT(*) FROM tasks`).Scan(&completed, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("counting tasks: %w", err)
	}
	return completed, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.PlannedTask, error) {
	t, err := scanTaskRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.PlannedTask, error) {
	var tasks []*domain.PlannedTask
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTaskRow(s rowScanner) (*domain.PlannedTask, error) {
	var t domain.PlannedTask
	var dumpID, completedAt sql.NullString
	var color, createdAt, updatedAt string
	var completed int

	err := s.Scan(
		&t.ID, &dumpID, &t.Position, &t.Title, &t.DurationMinutes, &color, &t.Reasoning,
		&completed, &completedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.DumpID = dumpID.String
	t.Color = domain.Color(color)
	t.Completed = completed != 0
	t.CompletedAt = parseOptionalTime(completedAt)
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", err)
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing task updated_at: %w", err)
	}
	return &t, nil
}

func expectOneRow(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
