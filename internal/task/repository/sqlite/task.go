package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"taskmate/internal/model"
	repo "taskmate/internal/task/repository"
)

const taskColumns = `id, text, category, priority, due_date, due_date_ts, completed, created_at`

// CreateTask inserts a new task row and returns the stored record with its
// assigned id. CreatedAt is stamped here when the caller left it zero.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToConnect, err)
	}

	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO tasks (text, category, priority, due_date, due_date_ts, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		opt.Text, opt.Category, opt.Priority, opt.DueDate, opt.DueDateTimestamp,
		opt.Completed, createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	return model.Task{
		ID:               id,
		Text:             opt.Text,
		Category:         opt.Category,
		Priority:         opt.Priority,
		DueDate:          opt.DueDate,
		DueDateTimestamp: opt.DueDateTimestamp,
		Completed:        opt.Completed,
		CreatedAt:        createdAt,
	}, nil
}

// GetAllTasks returns every stored task. Order is unspecified; the usecase
// sorts by creation time.
func (r *implRepository) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAllTasks"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToConnect, err)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM tasks`, taskColumns))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAllTasks"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("GetAllTasks"), scanErr)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, scanErr)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAllTasks"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return tasks, nil
}

// GetOneTask retrieves a single task by id. Returns a zero-value Task
// (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, id int64) (model.Task, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToConnect, err)
	}

	row := db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, taskColumns), id)

	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return t, nil
}

// UpdateTask writes the merged record back. created_at is deliberately
// absent from the SET clause so the creation time stays immutable. There is
// no optimistic-concurrency check: two concurrent updates on the same id
// race as whole-row writes and the last one wins.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToConnect, err)
	}

	_, err = db.ExecContext(ctx, `
		UPDATE tasks
		SET text = ?, category = ?, priority = ?, due_date = ?, due_date_ts = ?, completed = ?
		WHERE id = ?`,
		opt.Text, opt.Category, opt.Priority, opt.DueDate, opt.DueDateTimestamp,
		opt.Completed, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}

	// Re-read so the caller gets the stored row, assigned created_at included.
	return r.GetOneTask(ctx, opt.ID)
}

// DeleteTask removes a task by id. Deleting an id that is already gone is
// treated as success.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToConnect, err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t         model.Task
		createdAt string
	)
	if err := s.Scan(&t.ID, &t.Text, &t.Category, &t.Priority, &t.DueDate,
		&t.DueDateTimestamp, &t.Completed, &createdAt); err != nil {
		return model.Task{}, err
	}

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	t.CreatedAt = parsed
	return t, nil
}
