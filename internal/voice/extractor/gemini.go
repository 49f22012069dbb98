package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"voice-task-management/internal/voice"
	"voice-task-management/pkg/gemini"
	"voice-task-management/pkg/log"
)

// GeminiExtractor implements voice.Extractor over the Gemini API with a
// fixed JSON response schema.
type GeminiExtractor struct {
	client *gemini.Client
	l      log.Logger
}

var _ voice.Extractor = (*GeminiExtractor)(nil)

// NewGemini creates a Gemini-backed transcript extractor.
func NewGemini(client *gemini.Client, l log.Logger) *GeminiExtractor {
	return &GeminiExtractor{
		client: client,
		l:      l,
	}
}

// Extract sends the transcript to Gemini and decodes the structured result.
func (e *GeminiExtractor) Extract(ctx context.Context, transcript string) (voice.Extraction, error) {
	resp, err := e.client.GenerateContent(ctx, gemini.BuildTaskExtractionRequest(transcript))
	if err != nil {
		return voice.Extraction{}, fmt.Errorf("LLM request failed: %w", err)
	}

	responseText := resp.Text()
	if responseText == "" {
		return voice.Extraction{}, fmt.Errorf("empty response from LLM")
	}

	cleanedJSON := sanitizeJSONResponse(responseText)

	var extraction voice.Extraction
	if err := json.Unmarshal([]byte(cleanedJSON), &extraction); err != nil {
		e.l.Errorf(ctx, "extractor: failed to decode LLM response. Raw=%q Cleaned=%q", responseText, cleanedJSON)
		return voice.Extraction{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	if extraction.Title == "" {
		return voice.Extraction{}, fmt.Errorf("LLM response missing title")
	}

	return extraction, nil
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs sometimes add around JSON output, even when a response
// schema is requested.
func sanitizeJSONResponse(text string) string {
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "}]")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
