package usecase

import (
	"context"
	"sort"
	"time"

	"taskmate/internal/model"
	"taskmate/internal/task"
)

// Calendar buckets the month's tasks per calendar day. Day boundaries use
// the same timezone the interpreter resolves due dates in, so a task lands
// on the day its due label names. The read is a full scan; the month is
// filtered in memory.
func (uc *implUseCase) Calendar(ctx context.Context, input task.CalendarInput) (task.CalendarOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return task.CalendarOutput{}, task.ErrInvalidMonth
	}

	tasks, err := uc.repo.GetAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Calendar GetAllTasks: %v", err)
		return task.CalendarOutput{}, err
	}

	buckets := make(map[int][]model.Task)
	for _, t := range tasks {
		due := time.UnixMilli(t.DueDateTimestamp).In(uc.location)
		if due.Year() != input.Year || due.Month() != input.Month {
			continue
		}
		buckets[due.Day()] = append(buckets[due.Day()], t)
	}

	days := make([]task.CalendarDay, 0, len(buckets))
	for day, dayTasks := range buckets {
		sort.Slice(dayTasks, func(i, j int) bool {
			return dayTasks[i].DueDateTimestamp < dayTasks[j].DueDateTimestamp
		})
		days = append(days, task.CalendarDay{Day: day, Tasks: dayTasks})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	return task.CalendarOutput{Year: input.Year, Month: input.Month, Days: days}, nil
}
