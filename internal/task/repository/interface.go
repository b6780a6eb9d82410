package repository

import (
	"context"

	"voice-todo-api/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
// Both backends must reproduce the same ordering: due_date ascending with
// tasks lacking a due date last, then created_at descending among ties.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// CompleteByID applies the single conditional update completed=false→true.
	// Returns the number of rows affected (0 when missing or already done).
	CompleteByID(ctx context.Context, id string) (int, error)

	// CompleteByTitle completes the first incomplete case-insensitive title
	// match in the default ordering. Returns rows affected (0 or 1).
	CompleteByTitle(ctx context.Context, title string) (int, error)
}
