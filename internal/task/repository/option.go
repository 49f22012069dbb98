package repository

import (
	"time"

	"voice-task-management/internal/task"
)

// CreateTaskOptions carries fully-validated fields for insertion. Defaults
// and enum validation happen in the usecase before reaching the repository.
type CreateTaskOptions struct {
	Title       string
	Description string
	Status      task.Status
	Priority    task.Priority
	DueDate     *time.Time
}

// ListTasksOptions filters and orders the task list. Results are always
// ordered by creation time, newest first.
type ListTasksOptions struct {
	Status   string // equality, empty means all
	Priority string // equality, empty means all
	Search   string // case-insensitive substring over title OR description
}

// UpdateTaskOptions carries the complete post-merge field set; the usecase
// resolves partial input against the existing task before calling.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Description string
	Status      task.Status
	Priority    task.Priority
	DueDate     *time.Time
}
