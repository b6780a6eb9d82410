package http

import (
	"errors"

	"voice-todo-api/internal/task"
	pkgErrors "voice-todo-api/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become an opaque 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrMissingPayload):
		return pkgErrors.NewHTTPError(400, "provide an audio file or a task payload")
	case errors.Is(err, task.ErrInvalidID):
		return pkgErrors.NewHTTPError(400, "invalid task id")
	case errors.Is(err, task.ErrMissingIDOrTitle):
		return pkgErrors.NewHTTPError(400, "provide id or title")
	case errors.Is(err, task.ErrEmptyQuestion):
		return pkgErrors.NewHTTPError(400, "question is required")
	case errors.Is(err, task.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(422, err.Error())
	case errors.Is(err, task.ErrNormalizationFailed):
		return pkgErrors.NewHTTPError(422, "could not understand the task text")
	case errors.Is(err, task.ErrTranscriptionUnavailable):
		return pkgErrors.NewHTTPError(422, "voice input is not configured")
	case errors.Is(err, task.ErrTranscriptionFailed):
		return pkgErrors.NewHTTPError(422, "could not transcribe the recording")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
