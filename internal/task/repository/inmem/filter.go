package inmem

import (
	"strings"
	"time"

	"voice-todo-api/internal/model"
	repo "voice-todo-api/internal/task/repository"
)

// matchesFilter applies the Filter Specification with AND semantics.
// Empty fields impose no constraint. Bucket windows are anchored to the
// start of the current UTC day.
func matchesFilter(t model.Task, opt repo.ListTasksOptions, now time.Time) bool {
	switch opt.Status {
	case repo.StatusTodo:
		if t.Completed {
			return false
		}
	case repo.StatusDone:
		if !t.Completed {
			return false
		}
	}

	switch opt.DueBucket {
	case repo.BucketToday, repo.BucketWeek, repo.BucketOverdue:
		if t.DueDate == nil {
			return false
		}
		due := t.DueDate.UTC()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		switch opt.DueBucket {
		case repo.BucketToday:
			if due.Before(startOfDay) || !due.Before(startOfDay.AddDate(0, 0, 1)) {
				return false
			}
		case repo.BucketWeek:
			// Rolling 7-day window from start of current day.
			if due.Before(startOfDay) || !due.Before(startOfDay.AddDate(0, 0, 7)) {
				return false
			}
		case repo.BucketOverdue:
			if !due.Before(now) || t.Completed {
				return false
			}
		}
	}

	if opt.Query != "" {
		q := strings.ToLower(opt.Query)
		inTitle := strings.Contains(strings.ToLower(t.Title), q)
		inDescription := t.Description != "" && strings.Contains(strings.ToLower(t.Description), q)
		if !inTitle && !inDescription {
			return false
		}
	}

	if opt.Category != "" && !strings.EqualFold(t.Category, opt.Category) {
		return false
	}

	return true
}
