package voice

import (
	"time"

	"voice-task-management/internal/task"
)

// Extraction is the raw structured output of the language model. Priority
// and Status are plain strings here because the model's output is untrusted
// until defaults and validation are applied. An absent DueDatePhrase is the
// sole "no date reference" signal; the model is instructed to omit the
// field rather than send an empty value.
type Extraction struct {
	Title         string `json:"title"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	DueDatePhrase string `json:"dueDatePhrase,omitempty"`
}

// Candidate is a not-yet-persisted task inferred from a transcript. It
// lives only through the review stage: discarded on cancel, converted into
// a task-creation request on confirm. Never stored.
type Candidate struct {
	Title         string
	Priority      task.Priority
	Status        task.Status
	DueDatePhrase string // empty means no date reference was found
	DueDate       *time.Time
}

// ParseInput carries the finalized transcript of a capture session.
type ParseInput struct {
	Transcript string
}

// ParseOutput pairs the candidate with the source transcript so the caller
// can show the original utterance alongside the parsed fields.
type ParseOutput struct {
	RawTranscript string
	Candidate     Candidate
}
