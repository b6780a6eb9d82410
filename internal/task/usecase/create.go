package usecase

import (
	"context"
	"fmt"

	"voice-todo-api/internal/task"
	repo "voice-todo-api/internal/task/repository"
)

// Create validates a task payload and persists it.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	draft, err := buildDraft(input)
	if err != nil {
		return task.CreateOutput{}, err
	}
	return uc.persistDraft(ctx, draft)
}

// CreateFromVoice transcribes audio, normalizes the transcript, and persists
// the resulting draft. Unlike text normalization there is no fallback when
// the STT backend is missing: the audio path fails hard.
func (uc *implUseCase) CreateFromVoice(ctx context.Context, input task.CreateFromVoiceInput) (task.CreateOutput, error) {
	if uc.stt == nil {
		return task.CreateOutput{}, task.ErrTranscriptionUnavailable
	}

	transcript, err := uc.stt.Transcribe(ctx, input.Audio, input.MIME)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromVoice Transcribe: %v", err)
		return task.CreateOutput{}, fmt.Errorf("%w: %v", task.ErrTranscriptionFailed, err)
	}
	uc.l.Infof(ctx, "uc.CreateFromVoice: transcript=%q", transcript)

	draft, err := uc.Normalize(ctx, transcript)
	if err != nil {
		return task.CreateOutput{}, err
	}
	return uc.persistDraft(ctx, draft)
}

func (uc *implUseCase) persistDraft(ctx context.Context, draft task.Draft) (task.CreateOutput, error) {
	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Priority:    draft.Priority,
		DueDate:     draft.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.persistDraft CreateTask: %v", err)
		return task.CreateOutput{}, err
	}
	return task.CreateOutput{Task: created}, nil
}
