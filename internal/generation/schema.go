package generation

import "github.com/samacademy/cohortgen/internal/llm"

// ScriptSchema defines the JSON schema for lesson script generation.
var ScriptSchema = &llm.Schema{
	Name:        "lesson-script",
	Description: "A lesson narration script split into numbered slides",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"script": map[string]any{
				"type":        "string",
				"description": "The full lesson narration as continuous prose",
			},
			"slides": map[string]any{
				"type":        "array",
				"description": "The narration split into one segment per slide",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"slideNumber": map[string]any{
							"type":        "integer",
							"description": "1-based slide position",
						},
						"script": map[string]any{
							"type":        "string",
							"description": "Narration for this slide (2-4 sentences)",
						},
					},
					"required":             []any{"slideNumber", "script"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"script", "slides"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz question generation.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A set of quiz questions with answer keys",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"MCQ", "True/False", "Short Answer"},
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Answer choices; 4 for MCQ, empty otherwise",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct answer, matching an option for MCQ",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One-sentence explanation of the answer",
						},
					},
					"required":             []any{"question", "type", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
