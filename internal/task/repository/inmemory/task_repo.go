package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

// TaskStorage is an in-memory task Repository. Used by tests and when no
// Mongo URI is configured.
type TaskStorage struct {
	mtx     sync.RWMutex
	storage map[string]task.Task
}

// New creates an empty in-memory task store.
func New() *TaskStorage {
	return &TaskStorage{
		storage: make(map[string]task.Task),
	}
}

func (s *TaskStorage) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	now := time.Now()
	t := task.Task{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.storage[t.ID] = t
	return t, nil
}

func (s *TaskStorage) GetTask(ctx context.Context, id string) (task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.storage[id], nil
}

func (s *TaskStorage) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	search := strings.ToLower(opt.Search)

	var tasks []task.Task
	for _, t := range s.storage {
		if opt.Status != "" && string(t.Status) != opt.Status {
			continue
		}
		if opt.Priority != "" && string(t.Priority) != opt.Priority {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		tasks = append(tasks, t)
	}

	// Newest first; ID breaks ties so ordering is stable.
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})
	return tasks, nil
}

func (s *TaskStorage) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	existing, ok := s.storage[opt.ID]
	if !ok {
		return task.Task{}, nil
	}

	existing.Title = opt.Title
	existing.Description = opt.Description
	existing.Status = opt.Status
	existing.Priority = opt.Priority
	existing.DueDate = opt.DueDate
	existing.UpdatedAt = time.Now()

	s.storage[opt.ID] = existing
	return existing, nil
}

func (s *TaskStorage) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return false, nil
	}
	delete(s.storage, id)
	return true, nil
}
