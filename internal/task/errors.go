package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput     = errors.New("input text is empty")
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidMonth   = errors.New("calendar month is out of range")
	ErrNothingToApply = errors.New("update carries no fields")
)
