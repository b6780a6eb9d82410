package usecase

import (
	"fmt"
	"strings"
	"time"

	"voice-todo-api/internal/model"
	"voice-todo-api/internal/task"
)

// dueDateLayouts are the accepted due date formats, tried in order.
// Values without an offset are interpreted as UTC.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// buildDraft validates and coerces a raw task payload into a Draft.
// Title must be non-empty; unrecognized priorities default to med;
// an unparseable due date is a validation error.
func buildDraft(in task.CreateInput) (task.Draft, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return task.Draft{}, fmt.Errorf("%w: title is required", task.ErrInvalidPayload)
	}

	draft := task.Draft{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Priority:    model.ParsePriority(in.Priority),
	}

	if raw := strings.TrimSpace(in.DueDate); raw != "" {
		due, err := parseDueDate(raw)
		if err != nil {
			return task.Draft{}, fmt.Errorf("%w: invalid due date %q", task.ErrInvalidPayload, raw)
		}
		draft.DueDate = &due
	}

	return draft, nil
}

func parseDueDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
