package task

import (
	"time"

	"voice-todo-api/internal/model"
)

// Draft is a validated, not-yet-persisted task produced by the normalizer
// or by direct payload validation.
type Draft struct {
	Title       string
	Description string
	Category    string
	Priority    model.Priority
	DueDate     *time.Time
}

// CreateInput carries the raw fields of a task payload before validation.
// DueDate is the raw ISO-8601 string; coercion happens in the use case.
type CreateInput struct {
	Title       string
	Description string
	Category    string
	Priority    string
	DueDate     string
}

// CreateOutput is the result of persisting a new task.
type CreateOutput struct {
	Task model.Task
}

// CreateFromVoiceInput carries an audio payload for the transcription pipeline.
type CreateFromVoiceInput struct {
	Audio []byte
	MIME  string
}

// ListInput is the Filter Specification applied to the task collection.
// Empty fields impose no constraint.
type ListInput struct {
	Status    string // "todo" | "done" | "" (any)
	DueBucket string // "today" | "week" | "overdue" | ""
	Query     string // case-insensitive substring over title/description
	Category  string // case-insensitive exact match
}

// ListOutput is the ordered, filtered task collection.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// CompleteInput identifies a task to complete by ID or title.
type CompleteInput struct {
	ID    string
	Title string
}

// CompleteOutput reports how many rows the completion affected (0 or 1).
type CompleteOutput struct {
	Updated int
}

// AskInput carries a free-form question about the task collection.
type AskInput struct {
	Question string
}

// AskOutput is the natural-language answer plus the supporting task subset.
type AskOutput struct {
	Answer string
	Tasks  []model.Task
}
