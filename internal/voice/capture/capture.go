// Package capture wraps a speech-to-text recognizer in the session
// contract the voice pipeline expects: an explicit start, a live interim
// transcript while active, and a single finalized transcript when the
// session ends, whether by an explicit stop, the recognizer detecting
// silence, or the silence timeout firing.
package capture

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	// ErrUnsupported is reported before start when the recognizer has no
	// speech capability; the manual entry path remains available.
	ErrUnsupported = errors.New("speech recognition is not supported")
	// ErrActive is reported when a session is already running.
	ErrActive = errors.New("capture session already active")
)

// Result is one emission from a recognizer: the cumulative transcript so
// far, with Final marking the recognizer's own end-of-speech decision.
type Result struct {
	Text  string
	Final bool
}

// Recognizer is a speech-to-text source. Start returns a channel of
// results that the recognizer closes when the session ends; Stop requests
// an early end.
type Recognizer interface {
	Supported() bool
	Start(ctx context.Context) (<-chan Result, error)
	Stop() error
}

// DefaultSilenceTimeout force-finalizes a session when the recognizer goes
// quiet without reporting a final result.
const DefaultSilenceTimeout = 8 * time.Second

// Session is a single capture session manager. Safe for concurrent use;
// only one session runs at a time.
type Session struct {
	recognizer Recognizer
	silence    time.Duration

	mtx        sync.Mutex
	active     bool
	transcript string
	done       chan string
}

// NewSession creates a session manager over the given recognizer.
// silenceTimeout <= 0 selects DefaultSilenceTimeout.
func NewSession(recognizer Recognizer, silenceTimeout time.Duration) *Session {
	if silenceTimeout <= 0 {
		silenceTimeout = DefaultSilenceTimeout
	}
	return &Session{
		recognizer: recognizer,
		silence:    silenceTimeout,
	}
}

// Start begins a capture session. The finalized transcript (possibly
// empty) is delivered exactly once on Done.
func (s *Session) Start(ctx context.Context) error {
	if !s.recognizer.Supported() {
		return ErrUnsupported
	}

	s.mtx.Lock()
	if s.active {
		s.mtx.Unlock()
		return ErrActive
	}
	s.active = true
	s.transcript = ""
	s.done = make(chan string, 1)
	s.mtx.Unlock()

	results, err := s.recognizer.Start(ctx)
	if err != nil {
		s.mtx.Lock()
		s.active = false
		s.mtx.Unlock()
		return err
	}

	go s.consume(ctx, results)
	return nil
}

// Stop ends the session early. The recognizer closes its result channel in
// response, which finalizes the transcript.
func (s *Session) Stop() error {
	s.mtx.Lock()
	active := s.active
	s.mtx.Unlock()
	if !active {
		return nil
	}
	return s.recognizer.Stop()
}

// Transcript returns the live interim transcript of the active session, or
// the last finalized transcript once it ended.
func (s *Session) Transcript() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.transcript
}

// Active reports whether a session is currently running.
func (s *Session) Active() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.active
}

// Done returns the channel carrying the finalized transcript of the
// current session. Valid after Start.
func (s *Session) Done() <-chan string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.done
}

func (s *Session) consume(ctx context.Context, results <-chan Result) {
	timer := time.NewTimer(s.silence)
	defer timer.Stop()

	for {
		select {
		case r, ok := <-results:
			if !ok {
				s.finalize()
				return
			}

			s.mtx.Lock()
			s.transcript = r.Text
			s.mtx.Unlock()

			if r.Final {
				_ = s.recognizer.Stop()
				s.finalize()
				return
			}

			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(s.silence)

		case <-timer.C:
			// Recognizer went quiet without a final result.
			_ = s.recognizer.Stop()
			s.finalize()
			return

		case <-ctx.Done():
			_ = s.recognizer.Stop()
			s.finalize()
			return
		}
	}
}

func (s *Session) finalize() {
	s.mtx.Lock()
	if !s.active {
		s.mtx.Unlock()
		return
	}
	s.active = false
	final := strings.TrimSpace(s.transcript)
	done := s.done
	s.mtx.Unlock()

	done <- final
}
