package model

import (
	"strings"
	"time"
)

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityMed  Priority = "med"
	PriorityHigh Priority = "high"
)

// ParsePriority coerces a raw string into the Priority enum.
// Absent or unrecognized values default to med.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	case "med", "medium":
		return PriorityMed
	default:
		return PriorityMed
	}
}

// Task represents a persisted task.
type Task struct {
	ID          string
	Title       string
	Description string // empty = no description
	Category    string // empty = no category; matched case-insensitively
	Priority    Priority
	DueDate     *time.Time // nil = no due date
	Completed   bool
	CompletedAt *time.Time // non-nil iff Completed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
