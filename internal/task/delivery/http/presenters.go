package http

import (
	"encoding/json"
	"time"

	"voice-task-management/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      task.Status(r.Status),
		Priority:    task.Priority(r.Priority),
		DueDate:     r.DueDate,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Search   string `form:"search"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Status:   r.Status,
		Priority: r.Priority,
		Search:   r.Search,
	}
}

// ---

// optionalTime distinguishes "field absent" from "field null": an explicit
// null (or empty string) clears the due date, absence leaves it alone.
type optionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *optionalTime) UnmarshalJSON(b []byte) error {
	o.Set = true
	s := string(b)
	if s == "null" || s == `""` {
		o.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	o.Value = &t
	return nil
}

type updateReq struct {
	ID          string       `json:"-"` // populated from URI param
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority"`
	DueDate     optionalTime `json:"dueDate"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	input := task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate.Value,
		DueDateSet:  r.DueDate.Set,
	}
	if r.Status != nil {
		s := task.Status(*r.Status)
		input.Status = &s
	}
	if r.Priority != nil {
		p := task.Priority(*r.Priority)
		input.Priority = &p
	}
	return input
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// newListResp renders the bare JSON array the API contract promises.
func newListResp(out task.ListTasksOutput) []taskResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return tasks
}
