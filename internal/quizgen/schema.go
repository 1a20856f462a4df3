package quizgen

import "github.com/skilylabs/skily/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "exam-question",
	Description: "A single multiple-choice driving theory question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner, phrased like an official theory exam item",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options, exactly one of which is correct",
			},
			"correct_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short rationale for the correct answer, citing the traffic rule when relevant",
			},
			"image_hint": map[string]any{
				"type":        "string",
				"description": "Textual description of a sign or scene the question refers to. Empty string when not needed.",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
			},
		},
		"required":             []any{"text", "options", "correct_index", "explanation", "image_hint", "difficulty"},
		"additionalProperties": false,
	},
}
