package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/domain"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/ports"
)

const (
	dueDateLayout = "2006-01-02"

	// created_at is persisted as fixed-width text so values and query
	// bounds compare identically under both dialects. The fraction is
	// zero-padded to keep lexicographic order chronological.
	createdAtLayout = "2006-01-02 15:04:05.000000"
)

const selectTaskColumns = `
SELECT id, title, description, status, priority, due_date, created_at
FROM tasks
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	DueDate     sql.NullString `db:"due_date"`
	CreatedAt   scanTime       `db:"created_at"`
}

// scanTime accepts the timestamp however the driver hands it back: MySQL
// with parseTime yields time.Time, SQLite yields the stored text.
type scanTime struct {
	value time.Time
}

func (t *scanTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.value = v.UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (t *scanTime) parse(raw string) error {
	for _, layout := range []string{createdAtLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.value = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", raw)
}

var (
	_ ports.TaskRepository      = (*TaskRepository)(nil)
	_ ports.AnalyticsRepository = (*TaskRepository)(nil)
)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := selectTaskColumns
	args := make([]any, 0, 3)

	if filter.Status != nil {
		query += "WHERE status = ?\n"
		args = append(args, string(*filter.Status))
	}
	query += "ORDER BY id LIMIT ? OFFSET ?"

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, fields domain.TaskFields) (domain.Task, error) {
	// created_at is assigned here, never taken from the caller.
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, priority, due_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		fields.Title,
		nullString(fields.Description),
		string(fields.Status),
		string(fields.Priority),
		nullDueDate(fields.DueDate),
		createdAt.Format(createdAtLayout),
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.Get(ctx, id)
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTaskColumns+"WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) Update(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error) {
	// Full replacement of the five mutable fields. id and created_at are
	// never touched.
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, status = ?, priority = ?, due_date = ?
		 WHERE id = ?`,
		fields.Title,
		nullString(fields.Description),
		string(fields.Status),
		string(fields.Priority),
		nullDueDate(fields.DueDate),
		id,
	)
	if err != nil {
		return domain.Task{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Task{}, err
	}
	if affected == 0 {
		// RowsAffected can also be zero for a no-op write on MySQL, so check
		// existence before reporting not found.
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return domain.Task{}, getErr
		}
	}

	return r.Get(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) CountByStatus(ctx context.Context, status domain.TaskStatus) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM tasks WHERE status = ?", string(status))
}

func (r *TaskRepository) CountByPriority(ctx context.Context, priority domain.TaskPriority) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM tasks WHERE priority = ?", string(priority))
}

func (r *TaskRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx,
		"SELECT COUNT(*) FROM tasks WHERE created_at >= ? AND created_at <= ?",
		from.UTC().Format(createdAtLayout), to.UTC().Format(createdAtLayout),
	)
}

func (r *TaskRepository) CountByStatusCreatedBetween(ctx context.Context, status domain.TaskStatus, from, to time.Time) (int64, error) {
	return r.count(ctx,
		"SELECT COUNT(*) FROM tasks WHERE status = ? AND created_at >= ? AND created_at <= ?",
		string(status), from.UTC().Format(createdAtLayout), to.UTC().Format(createdAtLayout),
	)
}

func (r *TaskRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		CreatedAt: row.CreatedAt.value,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value, err := time.Parse(dueDateLayout, row.DueDate.String)
		if err != nil {
			return domain.Task{}, err
		}
		task.DueDate = &value
	}

	return task, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

// Due dates are persisted as YYYY-MM-DD text so both drivers store the same
// representation.
func nullDueDate(value *time.Time) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: value.Format(dueDateLayout), Valid: true}
}
