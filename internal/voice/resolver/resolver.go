package resolver

import (
	"context"
	"time"

	"voice-task-management/internal/voice"
	"voice-task-management/pkg/datemath"
	"voice-task-management/pkg/log"
)

// DateMathResolver implements voice.Resolver over the datemath parser.
// A phrase the parser cannot interpret degrades to "no date"; date
// resolution must never block task creation.
type DateMathResolver struct {
	parser *datemath.Parser
	l      log.Logger
}

var _ voice.Resolver = (*DateMathResolver)(nil)

// New creates a datemath-backed date phrase resolver.
func New(parser *datemath.Parser, l log.Logger) *DateMathResolver {
	return &DateMathResolver{
		parser: parser,
		l:      l,
	}
}

// Resolve converts a date phrase to an absolute timestamp relative to now.
func (r *DateMathResolver) Resolve(phrase string, now time.Time) (time.Time, bool) {
	if phrase == "" {
		return time.Time{}, false
	}

	t, err := r.parser.Parse(phrase, now)
	if err != nil {
		r.l.Infof(context.Background(), "resolver: could not resolve %q, leaving task undated: %v", phrase, err)
		return time.Time{}, false
	}
	return t, true
}
