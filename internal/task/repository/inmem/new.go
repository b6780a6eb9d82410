package inmem

import (
	"sync"
	"time"

	"voice-todo-api/internal/model"
	"voice-todo-api/internal/task/repository"
	"voice-todo-api/pkg/log"
)

// implRepository is a mutex-guarded in-memory task store. It is the
// reference implementation of the filter/order engine and the default
// backend when no database URL is configured.
type implRepository struct {
	mu    sync.RWMutex
	tasks []model.Task
	l     log.Logger
	now   func() time.Time
}

// New creates a new in-memory Repository for the task domain.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:   l,
		now: time.Now,
	}
}
