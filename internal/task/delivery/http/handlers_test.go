package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/task/repository/inmemory"
	"voice-task-management/internal/task/usecase"
	"voice-task-management/pkg/log"
)

// newTestRouter wires the real usecase over the in-memory store, so these
// tests cover the whole delivery-to-storage path.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	uc := usecase.New(inmemory.New(), log.NewNoop(), nil, "", "UTC")
	h := New(log.NewNoop(), uc)
	RegisterRoutes(r.Group("/api/tasks"), h)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func createTask(t *testing.T, r *gin.Engine, body string) taskResp {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/tasks", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var resp taskResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return resp
}

func TestTasks_CreateAndList(t *testing.T) {
	r := newTestRouter()

	created := createTask(t, r, `{"title":"Buy milk","priority":"High"}`)
	if created.ID == "" {
		t.Fatal("created task has no id")
	}
	if created.Status != "To Do" {
		t.Errorf("status = %q, want default To Do", created.Status)
	}
	if created.Priority != "High" {
		t.Errorf("priority = %q", created.Priority)
	}

	w := doJSON(t, r, http.MethodGet, "/api/tasks", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var tasks []taskResp
	if err := json.Unmarshal(w.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != created.ID {
		t.Errorf("list = %+v, want the created task", tasks)
	}
}

func TestTasks_CreateValidation(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"priority":"High"}`},
		{"invalid status", `{"title":"x","status":"Later"}`},
		{"invalid priority", `{"title":"x","priority":"ASAP"}`},
		{"malformed json", `{"title":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/tasks", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
			var resp struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Message == "" {
				t.Error("error response has no message")
			}
		})
	}
}

func TestTasks_ListFilters(t *testing.T) {
	r := newTestRouter()

	createTask(t, r, `{"title":"Buy milk","priority":"Low"}`)
	createTask(t, r, `{"title":"Ship release","priority":"Urgent","status":"In Progress"}`)
	createTask(t, r, `{"title":"Call Alex","description":"about milk delivery","priority":"High"}`)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"no filter", "", 3},
		{"all literal", "?status=All&priority=All", 3},
		{"by status", "?status=In+Progress", 1},
		{"by priority", "?priority=High", 1},
		{"search title", "?search=milk", 2},
		{"search description", "?search=delivery", 1},
		{"search case-insensitive", "?search=MILK", 2},
		{"no match", "?search=quarterly", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, "/api/tasks"+tt.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			var tasks []taskResp
			if err := json.Unmarshal(w.Body.Bytes(), &tasks); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(tasks) != tt.want {
				t.Errorf("got %d tasks, want %d", len(tasks), tt.want)
			}
		})
	}
}

func TestTasks_Update(t *testing.T) {
	r := newTestRouter()
	created := createTask(t, r, `{"title":"Buy milk","dueDate":"2024-05-02T18:00:00Z"}`)

	w := doJSON(t, r, http.MethodPut, "/api/tasks/"+created.ID, `{"status":"Done"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	var updated taskResp
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if updated.Status != "Done" {
		t.Errorf("status = %q, want Done", updated.Status)
	}
	if updated.Title != "Buy milk" {
		t.Errorf("title = %q, want unchanged", updated.Title)
	}
	if updated.DueDate == nil {
		t.Error("dueDate cleared by an update that did not mention it")
	}
}

func TestTasks_UpdateClearsDueDate(t *testing.T) {
	r := newTestRouter()
	created := createTask(t, r, `{"title":"Buy milk","dueDate":"2024-05-02T18:00:00Z"}`)

	w := doJSON(t, r, http.MethodPut, "/api/tasks/"+created.ID, `{"dueDate":null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	var updated taskResp
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if updated.DueDate != nil {
		t.Errorf("dueDate = %v, want cleared by explicit null", updated.DueDate)
	}
}

func TestTasks_UpdateNotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPut, "/api/tasks/does-not-exist", `{"title":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != "Task not found" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestTasks_Delete(t *testing.T) {
	r := newTestRouter()
	created := createTask(t, r, `{"title":"Buy milk"}`)

	w := doJSON(t, r, http.MethodDelete, "/api/tasks/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != "Task deleted successfully" {
		t.Errorf("message = %q", resp.Message)
	}

	// Gone afterwards.
	w = doJSON(t, r, http.MethodDelete, "/api/tasks/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/tasks", "")
	var tasks []taskResp
	if err := json.Unmarshal(w.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("list after delete = %d tasks, want 0", len(tasks))
	}
}

func TestTasks_VoiceConfirmPayload(t *testing.T) {
	// The confirmation step posts the reviewed candidate through the same
	// create endpoint.
	r := newTestRouter()

	body := fmt.Sprintf(`{"title":%q,"priority":"Medium","status":"To Do","dueDate":"2024-05-02T18:00:00Z"}`, "Call Alex")
	created := createTask(t, r, body)
	if created.DueDate == nil {
		t.Error("dueDate missing on the created task")
	}
}
