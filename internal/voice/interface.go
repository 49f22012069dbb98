package voice

import (
	"context"
	"time"
)

// UseCase defines the business logic interface for the voice domain.
type UseCase interface {
	// Parse turns a finalized transcript into a reviewable candidate.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}

// Extractor sends a transcript to the language model and returns the
// structured fields it identified. Any upstream or decoding failure is a
// single terminal error for the attempt; there are no partial results.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (Extraction, error)
}

// Resolver converts a natural-language date phrase into an absolute
// timestamp relative to now. A phrase it cannot interpret reports ok=false;
// resolution failure is never an error.
type Resolver interface {
	Resolve(phrase string, now time.Time) (t time.Time, ok bool)
}
