package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create validates a task payload and persists it.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// CreateFromVoice transcribes audio, normalizes the transcript into a
	// draft, and persists it.
	CreateFromVoice(ctx context.Context, input CreateFromVoiceInput) (CreateOutput, error)

	// Normalize converts raw natural-language text into a validated draft.
	// When no LLM backend is configured it falls back to a deterministic
	// first-line draft and never fails.
	Normalize(ctx context.Context, text string) (Draft, error)

	// List returns the ordered subset of tasks matching the filter.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Complete marks a task completed by ID or by first title match.
	// Completing a missing or already-completed task reports Updated=0.
	Complete(ctx context.Context, input CompleteInput) (CompleteOutput, error)

	// Ask answers a free-form question about the task collection.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
}
