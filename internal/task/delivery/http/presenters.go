package http

import (
	"time"

	"taskmate/internal/model"
	"taskmate/internal/task"
	"taskmate/pkg/interpret"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text" binding:"required,min=1"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{Text: r.Text}
}

type interpretReq struct {
	Text string `json:"text" binding:"required,min=1"`
}

func (r interpretReq) toInput() task.InterpretInput {
	return task.InterpretInput{Text: r.Text}
}

type updateReq struct {
	ID        int64  `json:"-"` // populated from URI param
	Text      string `json:"text"`
	Completed *bool  `json:"completed"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:        r.ID,
		Text:      r.Text,
		Completed: r.Completed,
	}
}

type calendarReq struct {
	Year  int
	Month int
}

func (r calendarReq) toInput() task.CalendarInput {
	return task.CalendarInput{Year: r.Year, Month: time.Month(r.Month)}
}

// --- Response DTOs ---

type taskResp struct {
	ID               int64  `json:"id"`
	Text             string `json:"text"`
	Category         string `json:"category"`
	Priority         string `json:"priority"`
	DueDate          string `json:"due_date"`
	DueDateTimestamp int64  `json:"due_date_timestamp"`
	Completed        bool   `json:"completed"`
	CreatedAt        string `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:               t.ID,
		Text:             t.Text,
		Category:         t.Category,
		Priority:         t.Priority,
		DueDate:          t.DueDate,
		DueDateTimestamp: t.DueDateTimestamp,
		Completed:        t.Completed,
		CreatedAt:        t.CreatedAt.Format(time.RFC3339Nano),
	}
}

type draftResp struct {
	Text             string `json:"text"`
	Category         string `json:"category"`
	Priority         string `json:"priority"`
	DueDate          string `json:"due_date"`
	DueDateTimestamp int64  `json:"due_date_timestamp"`
	Completed        bool   `json:"completed"`
}

func newDraftResp(d interpret.Draft) draftResp {
	return draftResp{
		Text:             d.Text,
		Category:         d.Category,
		Priority:         d.Priority,
		DueDate:          d.DueDate,
		DueDateTimestamp: d.DueDateTimestamp,
		Completed:        d.Completed,
	}
}

type createResp struct {
	Task         taskResp `json:"task"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task), CalendarLink: out.CalendarLink}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type interpretResp struct {
	Draft draftResp `json:"draft"`
}

func (h *handler) newInterpretResp(out task.InterpretOutput) interpretResp {
	return interpretResp{Draft: newDraftResp(out.Draft)}
}

type calendarDayResp struct {
	Day   int        `json:"day"`
	Tasks []taskResp `json:"tasks"`
}

type calendarResp struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Days  []calendarDayResp `json:"days"`
}

func (h *handler) newCalendarResp(out task.CalendarOutput) calendarResp {
	days := make([]calendarDayResp, len(out.Days))
	for i, d := range out.Days {
		tasks := make([]taskResp, len(d.Tasks))
		for j, t := range d.Tasks {
			tasks[j] = newTaskResp(t)
		}
		days[i] = calendarDayResp{Day: d.Day, Tasks: tasks}
	}
	return calendarResp{Year: out.Year, Month: int(out.Month), Days: days}
}

type statusResp struct {
	IsInitialized bool   `json:"is_initialized"`
	Error         string `json:"error,omitempty"`
}

func (h *handler) newStatusResp(out task.StatusOutput) statusResp {
	return statusResp{IsInitialized: out.Initialized, Error: out.Error}
}
