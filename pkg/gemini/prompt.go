package gemini

// TaskExtractionSystemPrompt is the system instruction sent to Gemini when
// turning a spoken transcript into structured task fields.
const TaskExtractionSystemPrompt = `You are an expert task parsing AI. Your job is to extract task details from a user's spoken transcript. You MUST return a JSON object conforming to the provided schema. If no due date phrase is found, omit the 'dueDatePhrase' field entirely; never return an empty string for it.`

// TaskExtractionSchema is the JSON schema constraining the model's output.
// Shape matches the response schema format of the generateContent API.
var TaskExtractionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{
			"type":        "string",
			"description": "The concise title for the task, derived from the input speech.",
		},
		"priority": map[string]any{
			"type":        "string",
			"enum":        []string{"Low", "Medium", "High", "Urgent"},
			"description": "The priority level inferred from the user's request. Default to 'Medium' if none specified.",
		},
		"status": map[string]any{
			"type":        "string",
			"enum":        []string{"To Do", "In Progress", "Done"},
			"description": "The starting status for the task. Default to 'To Do'.",
		},
		"dueDatePhrase": map[string]any{
			"type":        "string",
			"description": "The exact relative or absolute date/time phrase found in the speech, e.g., 'by tomorrow evening', 'next Monday', or 'in two days'.",
		},
	},
	"required": []string{"title", "priority", "status"},
}

// BuildTaskExtractionRequest builds the full generateContent request for
// extracting a single task from a transcript.
func BuildTaskExtractionRequest(transcript string) GenerateRequest {
	return GenerateRequest{
		SystemInstruction: &Content{
			Parts: []Part{{Text: TaskExtractionSystemPrompt}},
		},
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: `Parse this task: "` + transcript + `"`}},
			},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:      0.2, // low temperature for deterministic JSON output
			MaxOutputTokens:  1024,
			ResponseMimeType: "application/json",
			ResponseSchema:   TaskExtractionSchema,
		},
	}
}
