package repository

import (
	"context"

	"taskmate/internal/model"
)

// Repository defines all data access methods for the task store.
type Repository interface {
	// CreateTask assigns a new id, stamps CreatedAt when unset, writes the
	// record and returns it with the assigned id.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// GetAllTasks returns every stored task; order is unspecified and the
	// caller is responsible for sorting.
	GetAllTasks(ctx context.Context) ([]model.Task, error)

	// GetOneTask returns the task with the given id, or a zero-value Task
	// (ID == 0) when absent — do NOT return an error for not-found.
	GetOneTask(ctx context.Context, id int64) (model.Task, error)

	// UpdateTask writes the merged record for opt.ID and returns the stored
	// row. CreatedAt is never touched. A missing id yields a zero-value Task.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)

	// DeleteTask removes a task by id; deleting an absent id succeeds.
	DeleteTask(ctx context.Context, id int64) error

	// Status reports the connection manager's (error, initialized) pair.
	Status() Status
}

// Status is the store health pair exposed to the UI boundary.
type Status struct {
	Initialized bool
	Err         error
}
