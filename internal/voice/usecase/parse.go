package usecase

import (
	"context"
	"strings"
	"time"

	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
)

// Parse turns a finalized transcript into a reviewable candidate:
// extraction via the language model, defensive defaults, then non-fatal
// date resolution relative to the current wall clock.
func (uc *implUseCase) Parse(ctx context.Context, input voice.ParseInput) (voice.ParseOutput, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return voice.ParseOutput{}, voice.ErrEmptyTranscript
	}

	uc.l.Infof(ctx, "voice.Parse: transcript_length=%d", len(transcript))

	extraction, err := uc.extractor.Extract(ctx, transcript)
	if err != nil {
		uc.l.Errorf(ctx, "voice.Parse extract: %v", err)
		return voice.ParseOutput{}, voice.ErrExtractionFailed
	}

	candidate := uc.buildCandidate(extraction)

	return voice.ParseOutput{
		RawTranscript: transcript,
		Candidate:     candidate,
	}, nil
}

// buildCandidate applies defaults the schema marks required but the model
// may still omit, and resolves the due date phrase when one was found.
func (uc *implUseCase) buildCandidate(extraction voice.Extraction) voice.Candidate {
	candidate := voice.Candidate{
		Title:         extraction.Title,
		Priority:      task.Priority(extraction.Priority),
		Status:        task.Status(extraction.Status),
		DueDatePhrase: extraction.DueDatePhrase,
	}

	if !candidate.Priority.Valid() {
		candidate.Priority = task.DefaultPriority
	}
	if !candidate.Status.Valid() {
		candidate.Status = task.DefaultStatus
	}

	if candidate.DueDatePhrase != "" {
		if due, ok := uc.resolver.Resolve(candidate.DueDatePhrase, time.Now()); ok {
			candidate.DueDate = &due
		}
	}

	return candidate
}
