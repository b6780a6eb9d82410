package usecase

import (
	"voice-todo-api/internal/task/repository"
	"voice-todo-api/pkg/llmprovider"
	pkgLog "voice-todo-api/pkg/log"
	"voice-todo-api/pkg/openai"
)

type implUseCase struct {
	l    pkgLog.Logger
	llm  *llmprovider.Manager // nil when no LLM backend is configured
	stt  openai.ITranscriber  // nil when no STT backend is configured
	repo repository.Repository
}

// New creates a new task UseCase instance.
//
// llm and stt may be nil: a nil llm makes Normalize use the deterministic
// first-line fallback, a nil stt makes CreateFromVoice fail with
// ErrTranscriptionUnavailable (no silent fallback for audio).
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	stt openai.ITranscriber,
	repo repository.Repository,
) *implUseCase {
	return &implUseCase{
		l:    l,
		llm:  llm,
		stt:  stt,
		repo: repo,
	}
}
