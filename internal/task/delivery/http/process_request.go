package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskmate/internal/task"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return createReq{}, task.ErrEmptyInput
	}
	return req, nil
}

func (h *handler) processInterpretReq(c *gin.Context) (interpretReq, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return interpretReq{}, task.ErrEmptyInput
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	id, err := h.processIDParam(c)
	if err != nil {
		return updateReq{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return updateReq{}, task.ErrNothingToApply
	}
	req.ID = id
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	now := time.Now()
	req := calendarReq{Year: now.Year(), Month: int(now.Month())}

	if y := c.Query("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return calendarReq{}, errInvalidCalendarQuery
		}
		req.Year = year
	}
	if m := c.Query("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil {
			return calendarReq{}, errInvalidCalendarQuery
		}
		req.Month = month
	}
	return req, nil
}
