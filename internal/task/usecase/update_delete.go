package usecase

import (
	"context"
	"strings"
	"time"

	"taskmate/internal/task"
	"taskmate/internal/task/repository"
)

// Update merges the edited fields over the stored record. Editing the text
// re-runs the interpreter, so category, priority and due date are always
// recomputed from the new text; fields not derivable from text would be
// overwritten the same way. ID and CreatedAt are preserved. The read-merge-
// write sequence has no optimistic-concurrency check: concurrent updates on
// the same id resolve last-write-wins.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	if strings.TrimSpace(input.Text) == "" && input.Completed == nil {
		return task.UpdateOutput{}, task.ErrNothingToApply
	}

	existing, err := uc.repo.GetOneTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == 0 {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	merged := repository.UpdateTaskOptions{
		ID:               existing.ID,
		Text:             existing.Text,
		Category:         existing.Category,
		Priority:         existing.Priority,
		DueDate:          existing.DueDate,
		DueDateTimestamp: existing.DueDateTimestamp,
		Completed:        existing.Completed,
	}

	if strings.TrimSpace(input.Text) != "" {
		draft := uc.parser.Parse(input.Text, time.Now())
		merged.Text = draft.Text
		merged.Category = draft.Category
		merged.Priority = draft.Priority
		merged.DueDate = draft.DueDate
		merged.DueDateTimestamp = draft.DueDateTimestamp
	}
	if input.Completed != nil {
		merged.Completed = *input.Completed
	}

	updated, err := uc.repo.UpdateTask(ctx, merged)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == 0 {
		// Row vanished between the read and the write.
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a task. The store treats deleting an absent id as success,
// so Delete is idempotent.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
