package usecase

import (
	"context"
	"strings"

	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

// Create validates and persists a new task. The store assigns identity;
// callers never supply an ID.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}

	if input.Status == "" {
		input.Status = task.DefaultStatus
	}
	if input.Priority == "" {
		input.Priority = task.DefaultPriority
	}

	if !input.Status.Valid() {
		return task.CreateTaskOutput{}, task.ErrInvalidStatus
	}
	if !input.Priority.Valid() {
		return task.CreateTaskOutput{}, task.ErrInvalidPriority
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	// Calendar sync is best-effort and never blocks creation.
	uc.tryCreateCalendarEvent(ctx, created)

	return task.CreateTaskOutput{Task: created}, nil
}
