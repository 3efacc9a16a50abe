package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskmate/internal/task"
	"taskmate/pkg/response"
)

var (
	errInvalidID            = errors.New("id must be a positive integer")
	errInvalidCalendarQuery = errors.New("year and month must be integers")
)

// respondError maps domain errors to HTTP responses. Anything unrecognized
// is a store or infrastructure failure and stays behind a generic 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrInvalidMonth),
		errors.Is(err, task.ErrNothingToApply):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
