package task

import "context"

// UseCase defines the business logic interface for the task domain. It is
// the single gateway through which tasks are created, read, updated and
// deleted, by manual entry and by the voice pipeline alike.
type UseCase interface {
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error
}
