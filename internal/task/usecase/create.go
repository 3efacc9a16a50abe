package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskmate/internal/model"
	"taskmate/internal/task"
	"taskmate/internal/task/repository"
	"taskmate/pkg/gcalendar"
)

// Create interprets raw text into a task draft, persists it, and optionally
// exports the due instant to an external calendar.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	draft := uc.parser.Parse(input.Text, time.Now())

	uc.l.Infof(ctx, "Create: category=%s priority=%s due=%q", draft.Category, draft.Priority, draft.DueDate)

	stored, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Text:             draft.Text,
		Category:         draft.Category,
		Priority:         draft.Priority,
		DueDate:          draft.DueDate,
		DueDateTimestamp: draft.DueDateTimestamp,
		Completed:        draft.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	// Calendar export is best effort and never fails the task write.
	calendarLink := uc.tryCreateCalendarEvent(ctx, stored)

	return task.CreateOutput{Task: stored, CalendarLink: calendarLink}, nil
}

// tryCreateCalendarEvent exports the task's due instant as a one-hour
// calendar event. Returns the event HTML link, or empty string when the
// calendar is not configured or the export fails.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	startTime := time.UnixMilli(t.DueDateTimestamp)
	endTime := startTime.Add(time.Hour)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Text,
		Description: fmt.Sprintf("Category: %s\nPriority: %s", t.Category, t.Priority),
		StartTime:   startTime,
		EndTime:     endTime,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create: calendar export failed for task %d (non-fatal): %v", t.ID, err)
		return ""
	}
	return event.HtmlLink
}
