package model

import "time"

// Task is the stored task record. ID is assigned by the store on creation
// and stable afterward; CreatedAt is stamped once and never changes on
// update. DueDateTimestamp is the authoritative due instant; DueDate is a
// display label derived from the same calendar date and time token.
type Task struct {
	ID               int64
	Text             string
	Category         string // General | Meeting | Review | Development | Communication
	Priority         string // urgent | high | medium | low
	DueDate          string // e.g. "June 2, 2025 at 3pm"
	DueDateTimestamp int64  // epoch milliseconds
	Completed        bool
	CreatedAt        time.Time
}
