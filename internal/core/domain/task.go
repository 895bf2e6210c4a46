package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is the single persisted entity. Status and Priority are stored
// verbatim: the store accepts values outside the constants above, they
// simply fall outside every analytics bucket.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	CreatedAt   time.Time
}

// TaskFields enumerates the five mutable fields of a task. Create uses it
// for the initial values, Update replaces all five at once.
type TaskFields struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
}

// TaskFilter narrows and pages a task listing. A nil Status matches all
// tasks. Offset and Limit are applied after filtering.
type TaskFilter struct {
	Status *TaskStatus
	Offset int
	Limit  int
}

const DefaultListLimit = 100
