package postgre

import (
	"fmt"
	"strings"
	"time"

	repo "voice-todo-api/internal/task/repository"
)

// buildListQuery builds the WHERE + ORDER BY clause for ListTasks.
// All non-empty filter fields combine with AND; the ordering is the engine
// total order: due_date ascending with NULLs last, then created_at descending.
func buildListQuery(opt repo.ListTasksOptions, now time.Time) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	switch opt.Status {
	case repo.StatusTodo:
		conditions = append(conditions, "completed = FALSE")
	case repo.StatusDone:
		conditions = append(conditions, "completed = TRUE")
	}

	switch opt.DueBucket {
	case repo.BucketToday, repo.BucketWeek, repo.BucketOverdue:
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		switch opt.DueBucket {
		case repo.BucketToday:
			conditions = append(conditions,
				fmt.Sprintf("due_date IS NOT NULL AND due_date >= $%d AND due_date < $%d", idx, idx+1))
			args = append(args, startOfDay, startOfDay.AddDate(0, 0, 1))
			idx += 2
		case repo.BucketWeek:
			conditions = append(conditions,
				fmt.Sprintf("due_date IS NOT NULL AND due_date >= $%d AND due_date < $%d", idx, idx+1))
			args = append(args, startOfDay, startOfDay.AddDate(0, 0, 7))
			idx += 2
		case repo.BucketOverdue:
			conditions = append(conditions,
				fmt.Sprintf("due_date IS NOT NULL AND due_date < $%d AND completed = FALSE", idx))
			args = append(args, now)
			idx++
		}
	}

	if opt.Query != "" {
		conditions = append(conditions,
			fmt.Sprintf("(LOWER(title) LIKE $%d OR LOWER(description) LIKE $%d)", idx, idx))
		args = append(args, "%"+strings.ToLower(opt.Query)+"%")
		idx++
	}

	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(category) = $%d", idx))
		args = append(args, strings.ToLower(opt.Category))
		idx++
	}

	var sb strings.Builder
	if len(conditions) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
		sb.WriteString(" ")
	}
	sb.WriteString("ORDER BY due_date ASC NULLS LAST, created_at DESC")

	return sb.String(), args
}
