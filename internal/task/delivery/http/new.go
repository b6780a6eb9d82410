package http

import (
	"voice-todo-api/internal/task"
	"voice-todo-api/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	AddTask(c interface{})
	ListTasks(c interface{})
	Complete(c interface{})
	Ask(c interface{})
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
