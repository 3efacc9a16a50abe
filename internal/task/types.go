package task

import (
	"time"

	"taskmate/internal/model"
	"taskmate/pkg/interpret"
)

// CreateInput is the raw task description, typed or transcribed by an
// external speech collaborator. The interpreter only ever sees plain text.
type CreateInput struct {
	Text string
}

type CreateOutput struct {
	Task         model.Task
	CalendarLink string // deep link to the exported calendar event, may be empty
}

type ListOutput struct {
	Tasks []model.Task
	Total int
}

// UpdateInput carries the edited fields. When Text is non-empty the
// interpreter is re-run and category/priority/due date are recomputed from
// scratch. Completed is a pointer so "not provided" and "set false" are
// distinguishable.
type UpdateInput struct {
	ID        int64
	Text      string
	Completed *bool
}

type UpdateOutput struct {
	Task model.Task
}

type InterpretInput struct {
	Text string
}

type InterpretOutput struct {
	Draft interpret.Draft
}

type CalendarInput struct {
	Year  int
	Month time.Month
}

// CalendarDay is one day's bucket of tasks, keyed by day-of-month.
type CalendarDay struct {
	Day   int
	Tasks []model.Task
}

type CalendarOutput struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

// StatusOutput is the store status pair surfaced at the UI boundary.
// Error is empty when the store is healthy; Initialized distinguishes
// "done trying" from "still connecting".
type StatusOutput struct {
	Initialized bool
	Error       string
}
