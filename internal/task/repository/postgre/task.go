package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"voice-todo-api/internal/model"
	repo "voice-todo-api/internal/task/repository"
)

const taskColumns = `id, title, description, category, priority, due_date, completed, completed_at, created_at, updated_at`

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, title, description, category, priority, due_date, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $7)
		RETURNING %s`, taskColumns)

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		opt.Title,
		nullString(opt.Description),
		nullString(opt.Category),
		string(opt.Priority),
		opt.DueDate,
		now,
	)

	task, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// ListTasks returns the ordered subset matching all constraints in opt.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := buildListQuery(opt, time.Now().UTC())
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// CompleteByID applies the single conditional update completed=false→true.
// The WHERE completed = FALSE clause makes concurrent completions race-free:
// exactly one request observes rowsAffected = 1.
func (r *implRepository) CompleteByID(ctx context.Context, id string) (int, error) {
	const query = `
		UPDATE tasks
		SET completed = TRUE, completed_at = $1, updated_at = $1
		WHERE id = $2 AND completed = FALSE`

	res, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteByID"), err)
		return 0, repo.ErrFailedToComplete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("CompleteByID"), err)
		return 0, repo.ErrFailedToComplete
	}
	return int(n), nil
}

// CompleteByTitle completes the first incomplete case-insensitive title match
// in the default ordering.
func (r *implRepository) CompleteByTitle(ctx context.Context, title string) (int, error) {
	const query = `
		SELECT id FROM tasks
		WHERE LOWER(title) = LOWER($1) AND completed = FALSE
		ORDER BY due_date ASC NULLS LAST, created_at DESC
		LIMIT 1`

	var id string
	err := r.db.QueryRowContext(ctx, query, title).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteByTitle"), err)
		return 0, repo.ErrFailedToComplete
	}

	return r.CompleteByID(ctx, id)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		task        model.Task
		description sql.NullString
		category    sql.NullString
		priority    string
		dueDate     sql.NullTime
		completedAt sql.NullTime
	)

	err := s.Scan(
		&task.ID, &task.Title, &description, &category, &priority,
		&dueDate, &task.Completed, &completedAt, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.Description = description.String
	task.Category = category.String
	task.Priority = model.Priority(priority)
	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}
	if completedAt.Valid {
		done := completedAt.Time
		task.CompletedAt = &done
	}
	return task, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
