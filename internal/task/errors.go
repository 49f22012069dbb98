package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidStatus   = errors.New("status must be one of: To Do, In Progress, Done")
	ErrInvalidPriority = errors.New("priority must be one of: Low, Medium, High, Urgent")
)
