package tutor

import "github.com/harjot/proton/internal/llm"

// AnswerSchema is the JSON schema for structured answers.
var AnswerSchema = &llm.Schema{
	Name:        "science-answer",
	Description: "A science answer broken into definition, key points, formula and example",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"definition": map[string]any{
				"type":        "string",
				"description": "One or two sentence definition of the concept",
			},
			"points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-5 key points, each a single short sentence",
			},
			"formula": map[string]any{
				"type":        "string",
				"description": `The relevant formula in plain text, or the string "None" when the topic has no formula`,
			},
			"example": map[string]any{
				"type":        "string",
				"description": "A relatable everyday example of the concept",
			},
			"image_description": map[string]any{
				"type":        "string",
				"description": "Optional plain-English description of a diagram that would illustrate the concept",
			},
		},
		"required":             []any{"definition", "points", "formula", "example"},
		"additionalProperties": false,
	},
}
