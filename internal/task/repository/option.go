package repository

import (
	"time"

	"voice-todo-api/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	Title       string
	Description string
	Category    string
	Priority    model.Priority
	DueDate     *time.Time
}

// ListTasksOptions is the Filter Specification pushed down to the store.
// Empty fields impose no constraint; constraints combine with AND.
type ListTasksOptions struct {
	Status    string // "todo" | "done" | "" (any)
	DueBucket string // "today" | "week" | "overdue" | ""
	Query     string // case-insensitive substring over title/description
	Category  string // case-insensitive exact match
}

// Recognized filter values.
const (
	StatusTodo = "todo"
	StatusDone = "done"

	BucketToday   = "today"
	BucketWeek    = "week"
	BucketOverdue = "overdue"
)
