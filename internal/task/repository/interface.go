package repository

import (
	"context"

	"voice-task-management/internal/task"
)

// Repository is the task storage boundary. Not-found is reported as a
// zero-value Task (ID == ""), not as an error: repository errors mean the
// store itself failed.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	GetTask(ctx context.Context, id string) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
}
