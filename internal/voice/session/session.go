// Package session drives a single voice-to-task session through its
// states: idle → recording → parsing → reviewing, with cancel returning to
// idle from anywhere and a failed save returning to reviewing so the user
// can retry without re-recording.
package session

import (
	"context"
	"errors"
	"sync"

	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
	"voice-task-management/internal/voice/capture"
	"voice-task-management/pkg/log"
)

// State is the session's current stage.
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StateParsing   State = "parsing"
	StateReviewing State = "reviewing"
)

var (
	// ErrSessionBusy gates Start: only one pipeline run may exist at a time.
	ErrSessionBusy = errors.New("a voice session is already in progress")
	// ErrNotReviewing gates Submit outside the review stage.
	ErrNotReviewing = errors.New("no candidate under review")
)

// User-facing messages surfaced through the snapshot.
const (
	msgParseFailed = "Failed to process and parse voice input."
	msgSaveFailed  = "Failed to save task."
)

// Snapshot is an observable copy of the session state. Transcript holds the
// original utterance, unmodified by candidate edits, for the whole review
// stage.
type Snapshot struct {
	State      State
	Transcript string
	Candidate  *voice.Candidate
	Err        string
}

// Manager owns one logical voice session. All state is confined behind its
// mutex; there is never more than one pipeline run in flight.
type Manager struct {
	l       log.Logger
	capture *capture.Session
	parser  voice.UseCase
	tasks   task.UseCase

	// onRefresh, when set, is invoked after every successful save so the
	// task list can be re-fetched.
	onRefresh func()

	mtx        sync.Mutex
	state      State
	epoch      uint64 // bumped on cancel/reset; stale async results are dropped
	transcript string
	candidate  *voice.Candidate
	lastErr    string
}

// New creates a session manager. onRefresh may be nil.
func New(l log.Logger, cap *capture.Session, parser voice.UseCase, tasks task.UseCase, onRefresh func()) *Manager {
	return &Manager{
		l:         l,
		capture:   cap,
		parser:    parser,
		tasks:     tasks,
		onRefresh: onRefresh,
		state:     StateIdle,
	}
}

// Snapshot returns the current observable state. During recording the
// transcript reflects the live interim text.
func (m *Manager) Snapshot() Snapshot {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	snap := Snapshot{
		State:      m.state,
		Transcript: m.transcript,
		Err:        m.lastErr,
	}
	if m.state == StateRecording {
		snap.Transcript = m.capture.Transcript()
	}
	if m.candidate != nil {
		c := *m.candidate
		snap.Candidate = &c
	}
	return snap
}

// Start begins a new capture session. Only valid from idle.
func (m *Manager) Start(ctx context.Context) error {
	m.mtx.Lock()
	if m.state != StateIdle {
		m.mtx.Unlock()
		return ErrSessionBusy
	}
	m.state = StateRecording
	m.transcript = ""
	m.candidate = nil
	m.lastErr = ""
	epoch := m.epoch
	m.mtx.Unlock()

	if err := m.capture.Start(ctx); err != nil {
		m.mtx.Lock()
		if m.epoch == epoch {
			m.state = StateIdle
			m.lastErr = err.Error()
		}
		m.mtx.Unlock()
		return err
	}

	go m.awaitTranscript(ctx, epoch, m.capture.Done())
	return nil
}

// StopRecording explicitly ends the capture session; the recognizer's
// silence detection ends it the same way.
func (m *Manager) StopRecording() error {
	m.mtx.Lock()
	recording := m.state == StateRecording
	m.mtx.Unlock()
	if !recording {
		return nil
	}
	return m.capture.Stop()
}

// Cancel discards the session from any state and returns to idle. A parse
// or save already in flight cannot be aborted; its result is dropped when
// it settles.
func (m *Manager) Cancel() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.state == StateRecording {
		_ = m.capture.Stop()
	}
	m.epoch++
	m.state = StateIdle
	m.transcript = ""
	m.candidate = nil
	m.lastErr = ""
}

// Submit sends the user-edited candidate to the persistence gateway. Only
// valid from reviewing. On failure the session returns to reviewing with
// the edits preserved so the user may retry or cancel.
func (m *Manager) Submit(ctx context.Context, edited voice.Candidate) error {
	m.mtx.Lock()
	if m.state != StateReviewing {
		m.mtx.Unlock()
		return ErrNotReviewing
	}
	m.state = StateParsing
	m.candidate = &edited
	m.lastErr = ""
	epoch := m.epoch
	m.mtx.Unlock()

	_, err := m.tasks.Create(ctx, task.CreateTaskInput{
		Title:    edited.Title,
		Status:   edited.Status,
		Priority: edited.Priority,
		DueDate:  edited.DueDate,
	})

	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.epoch != epoch {
		return err // canceled while in flight; state already reset
	}

	if err != nil {
		m.l.Errorf(ctx, "session: save failed: %v", err)
		m.state = StateReviewing
		m.lastErr = msgSaveFailed
		return err
	}

	m.state = StateIdle
	m.transcript = ""
	m.candidate = nil
	if m.onRefresh != nil {
		m.onRefresh()
	}
	return nil
}

// awaitTranscript waits for the capture session to finalize and moves the
// session to parsing or back to idle.
func (m *Manager) awaitTranscript(ctx context.Context, epoch uint64, done <-chan string) {
	transcript := <-done

	m.mtx.Lock()
	if m.epoch != epoch || m.state != StateRecording {
		m.mtx.Unlock()
		return
	}

	if transcript == "" {
		// Silent session end is not an error.
		m.state = StateIdle
		m.mtx.Unlock()
		return
	}

	m.state = StateParsing
	m.transcript = transcript
	m.mtx.Unlock()

	output, err := m.parser.Parse(ctx, voice.ParseInput{Transcript: transcript})

	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.epoch != epoch || m.state != StateParsing {
		return
	}

	if err != nil {
		m.l.Errorf(ctx, "session: parse failed: %v", err)
		m.state = StateIdle
		m.transcript = ""
		m.lastErr = msgParseFailed
		return
	}

	m.state = StateReviewing
	m.transcript = output.RawTranscript
	m.candidate = &output.Candidate
}
