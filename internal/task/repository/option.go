package repository

import "time"

// CreateTaskOptions carries a task draft into the store. CreatedAt is
// stamped by the store when zero.
type CreateTaskOptions struct {
	Text             string
	Category         string
	Priority         string
	DueDate          string
	DueDateTimestamp int64
	Completed        bool
	CreatedAt        time.Time
}

// UpdateTaskOptions is the full merged record to write back. The store
// never rewrites created_at, so the creation time stays immutable even if
// a caller populates it here.
type UpdateTaskOptions struct {
	ID               int64
	Text             string
	Category         string
	Priority         string
	DueDate          string
	DueDateTimestamp int64
	Completed        bool
}
