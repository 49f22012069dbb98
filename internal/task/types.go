package task

import "time"

// Status is the workflow state of a task.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// DefaultStatus is applied when a creation request omits status.
const DefaultStatus = StatusToDo

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// DefaultPriority is applied when a creation request omits priority.
const DefaultPriority = PriorityMedium

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is the persisted entity. ID and CreatedAt are assigned by the store
// and immutable afterwards.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
}

// ListTasksInput filters the task list. Empty fields (or the literal "All")
// mean no filter. Search matches title or description case-insensitively.
type ListTasksInput struct {
	Status   string
	Priority string
	Search   string
}

// UpdateTaskInput is a partial update: nil pointers leave the field
// unchanged. DueDateSet with a nil DueDate clears the due date.
type UpdateTaskInput struct {
	ID          string
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     *time.Time
	DueDateSet  bool
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task Task
}

type ListTasksOutput struct {
	Tasks []Task
}

type DetailTaskOutput struct {
	Task Task
}

type UpdateTaskOutput struct {
	Task Task
}
