package usecase

import (
	"context"

	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

// List returns tasks matching the filter, ordered by creation time
// descending. The literal filter value "All" is treated as no filter.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:   normalizeFilter(input.Status),
		Priority: normalizeFilter(input.Priority),
		Search:   input.Search,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks}, nil
}

func normalizeFilter(v string) string {
	if v == "All" {
		return ""
	}
	return v
}
