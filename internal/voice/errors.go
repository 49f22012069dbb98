package voice

import "errors"

// Domain-specific errors for the voice package.
var (
	ErrEmptyTranscript  = errors.New("transcript is empty")
	ErrExtractionFailed = errors.New("failed to process and parse voice input")
)
