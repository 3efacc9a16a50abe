package usecase

import (
	"context"
	"sort"

	"taskmate/internal/task"
)

// List returns every stored task, newest first. The store leaves ordering
// to the caller.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	tasks, err := uc.repo.GetAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List GetAllTasks: %v", err)
		return task.ListOutput{}, err
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}
