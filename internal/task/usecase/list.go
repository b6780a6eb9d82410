package usecase

import (
	"context"
	"strings"

	"voice-todo-api/internal/task"
	repo "voice-todo-api/internal/task/repository"
)

// List returns the ordered subset of tasks matching the filter.
// Unrecognized status/bucket values impose no constraint.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:    strings.ToLower(strings.TrimSpace(input.Status)),
		DueBucket: strings.ToLower(strings.TrimSpace(input.DueBucket)),
		Query:     strings.TrimSpace(input.Query),
		Category:  strings.TrimSpace(input.Category),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks: tasks,
		Count: len(tasks),
	}, nil
}
