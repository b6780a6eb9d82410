package inmem

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"voice-todo-api/internal/model"
	repo "voice-todo-api/internal/task/repository"
)

// CreateTask stores a new task and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	t := model.Task{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		Category:    opt.Category,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks = append(r.tasks, t)
	return t, nil
}

// ListTasks returns the ordered subset matching all constraints in opt.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now().UTC()
	matched := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if matchesFilter(t, opt, now) {
			matched = append(matched, t)
		}
	}

	sortTasks(matched)
	return matched, nil
}

// CompleteByID marks the task completed iff it is currently incomplete.
func (r *implRepository) CompleteByID(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID != id {
			continue
		}
		if r.tasks[i].Completed {
			return 0, nil
		}
		now := r.now().UTC()
		r.tasks[i].Completed = true
		r.tasks[i].CompletedAt = &now
		r.tasks[i].UpdatedAt = now
		return 1, nil
	}
	return 0, nil
}

// CompleteByTitle completes the first incomplete case-insensitive title match
// in the default ordering.
func (r *implRepository) CompleteByTitle(ctx context.Context, title string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidates := make([]model.Task, 0)
	for _, t := range r.tasks {
		if !t.Completed && strings.EqualFold(t.Title, title) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return 0, nil
	}
	sortTasks(candidates)

	for i := range r.tasks {
		if r.tasks[i].ID != candidates[0].ID {
			continue
		}
		now := r.now().UTC()
		r.tasks[i].Completed = true
		r.tasks[i].CompletedAt = &now
		r.tasks[i].UpdatedAt = now
		return 1, nil
	}
	return 0, nil
}

// sortTasks applies the engine ordering: due_date ascending with nil dates
// last, then created_at descending among ties.
func sortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return a.CreatedAt.After(b.CreatedAt)
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case a.DueDate.Equal(*b.DueDate):
			return a.CreatedAt.After(b.CreatedAt)
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})
}
