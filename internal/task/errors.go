package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrMissingPayload           = errors.New("missing task payload")
	ErrInvalidPayload           = errors.New("invalid task payload")
	ErrNormalizationFailed      = errors.New("failed to normalize task text")
	ErrTranscriptionUnavailable = errors.New("transcription backend not configured")
	ErrTranscriptionFailed      = errors.New("failed to transcribe audio")
	ErrInvalidID                = errors.New("invalid task id")
	ErrMissingIDOrTitle         = errors.New("provide id or title")
	ErrEmptyQuestion            = errors.New("question is empty")
)
