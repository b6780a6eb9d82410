package usecase

import (
	"context"

	"github.com/google/uuid"

	"voice-todo-api/internal/task"
)

// Complete marks a task completed by ID or by first title match.
// A missing or already-completed target is not an error: Updated reports 0.
func (uc *implUseCase) Complete(ctx context.Context, input task.CompleteInput) (task.CompleteOutput, error) {
	switch {
	case input.ID != "":
		if _, err := uuid.Parse(input.ID); err != nil {
			return task.CompleteOutput{}, task.ErrInvalidID
		}
		n, err := uc.repo.CompleteByID(ctx, input.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Complete CompleteByID: %v", err)
			return task.CompleteOutput{}, err
		}
		return task.CompleteOutput{Updated: n}, nil

	case input.Title != "":
		n, err := uc.repo.CompleteByTitle(ctx, input.Title)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Complete CompleteByTitle: %v", err)
			return task.CompleteOutput{}, err
		}
		return task.CompleteOutput{Updated: n}, nil

	default:
		return task.CompleteOutput{}, task.ErrMissingIDOrTitle
	}
}
