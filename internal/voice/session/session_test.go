package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
	"voice-task-management/internal/voice/capture"
	"voice-task-management/pkg/log"
)

type fakeRecognizer struct {
	mtx     sync.Mutex
	results chan capture.Result
	stopped bool
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{}
}

func (f *fakeRecognizer) Supported() bool { return true }

func (f *fakeRecognizer) Start(ctx context.Context) (<-chan capture.Result, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.results = make(chan capture.Result, 8)
	f.stopped = false
	return f.results, nil
}

func (f *fakeRecognizer) Stop() error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if !f.stopped {
		f.stopped = true
		close(f.results)
	}
	return nil
}

func (f *fakeRecognizer) emit(text string, final bool) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.results <- capture.Result{Text: text, Final: final}
}

type fakeParser struct {
	mtx    sync.Mutex
	output voice.ParseOutput
	err    error
	calls  []string
}

func (f *fakeParser) Parse(ctx context.Context, input voice.ParseInput) (voice.ParseOutput, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.calls = append(f.calls, input.Transcript)
	return f.output, f.err
}

func (f *fakeParser) callCount() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return len(f.calls)
}

type fakeTaskUseCase struct {
	mtx       sync.Mutex
	createErr error
	created   []task.CreateTaskInput
}

func (f *fakeTaskUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if f.createErr != nil {
		return task.CreateTaskOutput{}, f.createErr
	}
	f.created = append(f.created, input)
	return task.CreateTaskOutput{Task: task.Task{ID: "t1", Title: input.Title}}, nil
}

func (f *fakeTaskUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return task.ListTasksOutput{}, nil
}

func (f *fakeTaskUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	return task.DetailTaskOutput{}, nil
}

func (f *fakeTaskUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	return task.UpdateTaskOutput{}, nil
}

func (f *fakeTaskUseCase) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeTaskUseCase) setCreateErr(err error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.createErr = err
}

func waitForState(t *testing.T, m *Manager, want State) Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap := m.Snapshot()
		if snap.State == want {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for state %q, last state %q", want, m.Snapshot().State)
	return Snapshot{}
}

func newTestManager(parser voice.UseCase, tasks task.UseCase, onRefresh func()) (*Manager, *fakeRecognizer) {
	rec := newFakeRecognizer()
	cap := capture.NewSession(rec, time.Second)
	return New(log.NewNoop(), cap, parser, tasks, onRefresh), rec
}

func TestManager_FullFlow(t *testing.T) {
	due := time.Date(2024, 5, 2, 18, 0, 0, 0, time.UTC)
	parser := &fakeParser{
		output: voice.ParseOutput{
			RawTranscript: "call Alex tomorrow evening",
			Candidate: voice.Candidate{
				Title:         "Call Alex",
				Priority:      task.PriorityMedium,
				Status:        task.StatusToDo,
				DueDatePhrase: "tomorrow evening",
				DueDate:       &due,
			},
		},
	}
	tasks := &fakeTaskUseCase{}
	refreshed := make(chan struct{}, 1)
	m, rec := newTestManager(parser, tasks, func() { refreshed <- struct{}{} })

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if got := m.Snapshot().State; got != StateRecording {
		t.Fatalf("state after Start = %q, want %q", got, StateRecording)
	}

	rec.emit("call Alex", false)
	rec.emit("call Alex tomorrow evening", true)

	snap := waitForState(t, m, StateReviewing)
	if snap.Transcript != "call Alex tomorrow evening" {
		t.Errorf("transcript = %q, want original utterance", snap.Transcript)
	}
	if snap.Candidate == nil || snap.Candidate.Title != "Call Alex" {
		t.Fatalf("candidate = %+v, want Call Alex", snap.Candidate)
	}

	// Edit the candidate before confirming; the transcript must stay as
	// spoken.
	edited := *snap.Candidate
	edited.Title = "Call Alex about the offsite"
	if err := m.Submit(context.Background(), edited); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if got := m.Snapshot().State; got != StateIdle {
		t.Errorf("state after Submit = %q, want %q", got, StateIdle)
	}
	select {
	case <-refreshed:
	default:
		t.Error("onRefresh was not called after a successful save")
	}
	if len(tasks.created) != 1 || tasks.created[0].Title != "Call Alex about the offsite" {
		t.Errorf("created = %+v, want the edited candidate", tasks.created)
	}
	if tasks.created[0].DueDate == nil || !tasks.created[0].DueDate.Equal(due) {
		t.Errorf("created due date = %v, want %v", tasks.created[0].DueDate, due)
	}
}

func TestManager_StartWhileBusy(t *testing.T) {
	parser := &fakeParser{}
	m, _ := newTestManager(parser, &fakeTaskUseCase{}, nil)

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.Start(context.Background()); !errors.Is(err, ErrSessionBusy) {
		t.Errorf("second Start() error = %v, want ErrSessionBusy", err)
	}
}

func TestManager_EmptyTranscriptReturnsToIdle(t *testing.T) {
	parser := &fakeParser{}
	m, rec := newTestManager(parser, &fakeTaskUseCase{}, nil)

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	rec.emit("   ", false)
	if err := m.StopRecording(); err != nil {
		t.Fatalf("StopRecording() error = %v", err)
	}

	snap := waitForState(t, m, StateIdle)
	if snap.Err != "" {
		t.Errorf("err = %q, want none for a silent session", snap.Err)
	}
	if parser.callCount() != 0 {
		t.Error("parser was called for an empty transcript")
	}
}

func TestManager_ParseFailureReturnsToIdle(t *testing.T) {
	parser := &fakeParser{err: voice.ErrExtractionFailed}
	m, rec := newTestManager(parser, &fakeTaskUseCase{}, nil)

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	rec.emit("do something", true)

	snap := waitForState(t, m, StateIdle)
	if snap.Err != "Failed to process and parse voice input." {
		t.Errorf("err = %q, want the parse failure message", snap.Err)
	}
	if snap.Candidate != nil {
		t.Error("candidate should be discarded after a parse failure")
	}
}

func TestManager_SaveFailurePreservesEdits(t *testing.T) {
	parser := &fakeParser{
		output: voice.ParseOutput{
			RawTranscript: "buy milk",
			Candidate: voice.Candidate{
				Title:    "Buy milk",
				Priority: task.PriorityLow,
				Status:   task.StatusToDo,
			},
		},
	}
	tasks := &fakeTaskUseCase{}
	tasks.setCreateErr(errors.New("connection reset"))
	m, rec := newTestManager(parser, tasks, nil)

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	rec.emit("buy milk", true)
	snap := waitForState(t, m, StateReviewing)

	edited := *snap.Candidate
	edited.Priority = task.PriorityUrgent
	if err := m.Submit(context.Background(), edited); err == nil {
		t.Fatal("Submit() returned nil, want the save error")
	}

	snap = m.Snapshot()
	if snap.State != StateReviewing {
		t.Fatalf("state after failed save = %q, want %q", snap.State, StateReviewing)
	}
	if snap.Candidate == nil || snap.Candidate.Priority != task.PriorityUrgent {
		t.Errorf("candidate = %+v, want the edits preserved", snap.Candidate)
	}
	if snap.Transcript != "buy milk" {
		t.Errorf("transcript = %q, want preserved through the retry", snap.Transcript)
	}
	if snap.Err == "" {
		t.Error("err should surface the save failure")
	}

	// Retry succeeds once the gateway recovers.
	tasks.setCreateErr(nil)
	if err := m.Submit(context.Background(), edited); err != nil {
		t.Fatalf("retry Submit() error = %v", err)
	}
	if got := m.Snapshot().State; got != StateIdle {
		t.Errorf("state after retry = %q, want %q", got, StateIdle)
	}
}

func TestManager_CancelDiscardsEverything(t *testing.T) {
	parser := &fakeParser{
		output: voice.ParseOutput{
			RawTranscript: "buy milk",
			Candidate:     voice.Candidate{Title: "Buy milk", Priority: task.PriorityLow, Status: task.StatusToDo},
		},
	}
	tasks := &fakeTaskUseCase{}
	m, rec := newTestManager(parser, tasks, nil)

	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	rec.emit("buy milk", true)
	waitForState(t, m, StateReviewing)

	m.Cancel()

	snap := m.Snapshot()
	if snap.State != StateIdle || snap.Candidate != nil || snap.Transcript != "" {
		t.Errorf("snapshot after Cancel = %+v, want a clean idle state", snap)
	}
	if err := m.Submit(context.Background(), voice.Candidate{Title: "x"}); !errors.Is(err, ErrNotReviewing) {
		t.Errorf("Submit() after Cancel error = %v, want ErrNotReviewing", err)
	}
	if len(tasks.created) != 0 {
		t.Error("nothing should be persisted after Cancel")
	}

	// The session is reusable after Cancel.
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() after Cancel error = %v", err)
	}
}
