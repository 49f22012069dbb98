package http

import (
	"time"

	"voice-task-management/internal/voice"
)

// --- Request DTOs ---

type parseReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

func (r parseReq) toInput() voice.ParseInput {
	return voice.ParseInput{Transcript: r.Transcript}
}

// --- Response DTOs ---

// parsedData is the candidate as shown to the review form. dueDate is
// RFC3339 or null; dueDatePhrase is an empty string when no date reference
// was found (wire compatibility for the confirmation form).
type parsedData struct {
	Title         string     `json:"title"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	DueDate       *time.Time `json:"dueDate"`
	DueDatePhrase string     `json:"dueDatePhrase"`
}

type parseResp struct {
	Success       bool        `json:"success"`
	RawTranscript string      `json:"rawTranscript,omitempty"`
	ParsedData    *parsedData `json:"parsedData,omitempty"`
	Message       string      `json:"message,omitempty"`
}

func newParseResp(out voice.ParseOutput) parseResp {
	return parseResp{
		Success:       true,
		RawTranscript: out.RawTranscript,
		ParsedData: &parsedData{
			Title:         out.Candidate.Title,
			Priority:      string(out.Candidate.Priority),
			Status:        string(out.Candidate.Status),
			DueDate:       out.Candidate.DueDate,
			DueDatePhrase: out.Candidate.DueDatePhrase,
		},
	}
}

func newFailureResp(message string) parseResp {
	return parseResp{
		Success: false,
		Message: message,
	}
}
