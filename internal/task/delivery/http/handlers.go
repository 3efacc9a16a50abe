package http

import (
	"github.com/gin-gonic/gin"

	"taskmate/pkg/response"
)

// Create godoc
// @Summary     Create a task from free-form text
// @Description Interprets the text (priority, category, due date/time) and persists the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Raw task description"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List all tasks
// @Description Returns every stored task, newest first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Re-interprets edited text and/or toggles completion. ID and creation time are preserved.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task by ID. Deleting an absent ID succeeds.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Interpret godoc
// @Summary     Preview interpretation of raw text
// @Description Runs the interpreter without persisting anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Raw task description"
// @Success     200 {object} interpretResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Interpret(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Interpret: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newInterpretResp(output))
}

// Calendar godoc
// @Summary     Month calendar view
// @Description Buckets the month's tasks per calendar day. Defaults to the current month.
// @Tags        Tasks
// @Produce     json
// @Param       year  query int false "Year (default: current)"
// @Param       month query int false "Month 1-12 (default: current)"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Calendar(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Calendar: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCalendarResp(output))
}

// Status godoc
// @Summary     Store status
// @Description Reports the persistence store's (error, is_initialized) pair for the UI banner state.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/tasks/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}
