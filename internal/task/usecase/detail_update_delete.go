package usecase

import (
	"context"
	"strings"

	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update applies a partial update to an existing task. Fields left nil keep
// their stored values; not-found is distinct from validation failure.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:          existing.ID,
		Title:       existing.Title,
		Description: existing.Description,
		Status:      existing.Status,
		Priority:    existing.Priority,
		DueDate:     existing.DueDate,
	}

	if input.Title != nil {
		opt.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}
	if input.Status != nil {
		opt.Status = *input.Status
	}
	if input.Priority != nil {
		opt.Priority = *input.Priority
	}
	if input.DueDateSet {
		opt.DueDate = input.DueDate
	}

	if opt.Title == "" {
		return task.UpdateTaskOutput{}, task.ErrEmptyTitle
	}
	if !opt.Status.Valid() {
		return task.UpdateTaskOutput{}, task.ErrInvalidStatus
	}
	if !opt.Priority.Valid() {
		return task.UpdateTaskOutput{}, task.ErrInvalidPriority
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	if !found {
		return task.ErrTaskNotFound
	}
	return nil
}
