package postgre

import (
	"strings"
	"testing"
	"time"

	repo "voice-todo-api/internal/task/repository"
)

var queryNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestBuildListQuery(t *testing.T) {
	startOfDay := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("No Filters Orders Only", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{}, queryNow)
		if mods != "ORDER BY due_date ASC NULLS LAST, created_at DESC" {
			t.Errorf("unexpected clause: %s", mods)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("Status Todo", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{Status: repo.StatusTodo}, queryNow)
		if !strings.Contains(mods, "WHERE completed = FALSE") {
			t.Errorf("unexpected clause: %s", mods)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("Status Done", func(t *testing.T) {
		mods, _ := buildListQuery(repo.ListTasksOptions{Status: repo.StatusDone}, queryNow)
		if !strings.Contains(mods, "completed = TRUE") {
			t.Errorf("unexpected clause: %s", mods)
		}
	})

	t.Run("Unknown Status Ignored", func(t *testing.T) {
		mods, _ := buildListQuery(repo.ListTasksOptions{Status: "banana"}, queryNow)
		if strings.Contains(mods, "WHERE") {
			t.Errorf("unknown status must impose no constraint: %s", mods)
		}
	})

	t.Run("Bucket Today", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{DueBucket: repo.BucketToday}, queryNow)
		if !strings.Contains(mods, "due_date IS NOT NULL AND due_date >= $1 AND due_date < $2") {
			t.Errorf("unexpected clause: %s", mods)
		}
		if len(args) != 2 || !args[0].(time.Time).Equal(startOfDay) || !args[1].(time.Time).Equal(startOfDay.AddDate(0, 0, 1)) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Bucket Week Rolling Seven Days", func(t *testing.T) {
		_, args := buildListQuery(repo.ListTasksOptions{DueBucket: repo.BucketWeek}, queryNow)
		if len(args) != 2 || !args[1].(time.Time).Equal(startOfDay.AddDate(0, 0, 7)) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Bucket Overdue", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{DueBucket: repo.BucketOverdue}, queryNow)
		if !strings.Contains(mods, "due_date IS NOT NULL AND due_date < $1 AND completed = FALSE") {
			t.Errorf("unexpected clause: %s", mods)
		}
		if len(args) != 1 || !args[0].(time.Time).Equal(queryNow) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Text Query Lowercased Like", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{Query: "MiLk"}, queryNow)
		if !strings.Contains(mods, "(LOWER(title) LIKE $1 OR LOWER(description) LIKE $1)") {
			t.Errorf("unexpected clause: %s", mods)
		}
		if len(args) != 1 || args[0] != "%milk%" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Category Lowercased Exact", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{Category: "Home"}, queryNow)
		if !strings.Contains(mods, "LOWER(category) = $1") {
			t.Errorf("unexpected clause: %s", mods)
		}
		if len(args) != 1 || args[0] != "home" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("All Filters Combine With AND And Sequential Placeholders", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListTasksOptions{
			Status:    repo.StatusTodo,
			DueBucket: repo.BucketToday,
			Query:     "rent",
			Category:  "home",
		}, queryNow)

		want := "WHERE completed = FALSE" +
			" AND due_date IS NOT NULL AND due_date >= $1 AND due_date < $2" +
			" AND (LOWER(title) LIKE $3 OR LOWER(description) LIKE $3)" +
			" AND LOWER(category) = $4" +
			" ORDER BY due_date ASC NULLS LAST, created_at DESC"
		if mods != want {
			t.Errorf("unexpected clause:\n got  %s\n want %s", mods, want)
		}
		if len(args) != 4 {
			t.Errorf("expected 4 args, got %v", args)
		}
		if strings.Contains(mods, " OR completed") {
			t.Errorf("filters must never combine with OR: %s", mods)
		}
	})
}
