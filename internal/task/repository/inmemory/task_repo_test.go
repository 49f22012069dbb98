package inmemory

import (
	"context"
	"testing"
	"time"

	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

func mustCreate(t *testing.T, s *TaskStorage, opt repo.CreateTaskOptions) task.Task {
	t.Helper()
	created, err := s.CreateTask(context.Background(), opt)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	return created
}

func TestCreateAndGet(t *testing.T) {
	s := New()
	due := time.Date(2024, 5, 2, 18, 0, 0, 0, time.UTC)

	created := mustCreate(t, s, repo.CreateTaskOptions{
		Title:    "Buy milk",
		Status:   task.StatusToDo,
		Priority: task.PriorityLow,
		DueDate:  &due,
	})
	if created.ID == "" {
		t.Fatal("created task has no id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}

	got, err := s.GetTask(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if got.Title != "Buy milk" || got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("got = %+v", got)
	}
}

func TestGet_MissingReturnsZeroTask(t *testing.T) {
	s := New()
	got, err := s.GetTask(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if got.ID != "" {
		t.Errorf("got = %+v, want zero task", got)
	}
}

func TestList_FiltersAndOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	mustCreate(t, s, repo.CreateTaskOptions{Title: "Buy milk", Status: task.StatusToDo, Priority: task.PriorityLow})
	mustCreate(t, s, repo.CreateTaskOptions{Title: "Ship release", Status: task.StatusInProgress, Priority: task.PriorityUrgent})
	mustCreate(t, s, repo.CreateTaskOptions{
		Title:       "Call Alex",
		Description: "about milk delivery",
		Status:      task.StatusToDo,
		Priority:    task.PriorityHigh,
	})

	all, err := s.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	byStatus, _ := s.ListTasks(ctx, repo.ListTasksOptions{Status: "In Progress"})
	if len(byStatus) != 1 || byStatus[0].Title != "Ship release" {
		t.Errorf("status filter = %+v", byStatus)
	}

	byPriority, _ := s.ListTasks(ctx, repo.ListTasksOptions{Priority: "High"})
	if len(byPriority) != 1 || byPriority[0].Title != "Call Alex" {
		t.Errorf("priority filter = %+v", byPriority)
	}

	bySearch, _ := s.ListTasks(ctx, repo.ListTasksOptions{Search: "MILK"})
	if len(bySearch) != 2 {
		t.Errorf("search matched %d tasks, want 2 (title and description, any case)", len(bySearch))
	}

	both, _ := s.ListTasks(ctx, repo.ListTasksOptions{Status: "To Do", Search: "milk"})
	if len(both) != 2 {
		t.Errorf("combined filter matched %d, want 2", len(both))
	}
}

func TestUpdate(t *testing.T) {
	s := New()
	ctx := context.Background()
	created := mustCreate(t, s, repo.CreateTaskOptions{Title: "Buy milk", Status: task.StatusToDo, Priority: task.PriorityLow})

	updated, err := s.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:       created.ID,
		Title:    "Buy oat milk",
		Status:   task.StatusDone,
		Priority: task.PriorityLow,
	})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if updated.Title != "Buy oat milk" || updated.Status != task.StatusDone {
		t.Errorf("updated = %+v", updated)
	}
	if updated.DueDate != nil {
		t.Error("due date should be nil after an update that omits it")
	}

	missing, err := s.UpdateTask(ctx, repo.UpdateTaskOptions{ID: "missing", Title: "x"})
	if err != nil {
		t.Fatalf("UpdateTask(missing) error = %v", err)
	}
	if missing.ID != "" {
		t.Errorf("missing = %+v, want zero task", missing)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()
	created := mustCreate(t, s, repo.CreateTaskOptions{Title: "Buy milk", Status: task.StatusToDo, Priority: task.PriorityLow})

	found, err := s.DeleteTask(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("DeleteTask() = %v, %v, want found", found, err)
	}

	found, err = s.DeleteTask(ctx, created.ID)
	if err != nil || found {
		t.Errorf("second DeleteTask() = %v, %v, want not found", found, err)
	}
}
