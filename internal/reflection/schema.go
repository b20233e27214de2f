package reflection

import "deliberate/internal/llm"

// ReviewSchema defines the JSON schema for attempt review responses.
var ReviewSchema = &llm.Schema{
	Name:        "attempt-review",
	Description: "Structured review of a finished problem attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{
				"type":        "string",
				"description": "Two or three sentences on the overall quality of the pattern decision",
			},
			"correct_identifications": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Signals the learner identified that genuinely point at the right approach",
			},
			"missed_signals": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Important signals in the problem the learner did not mention",
			},
			"next_time_advice": map[string]any{
				"type":        "string",
				"description": "One concrete thing to do differently on the next similar problem",
			},
			"pattern_tips": map[string]any{
				"type":        "string",
				"description": "A short recognition heuristic for the correct pattern",
			},
			"confidence_calibration": map[string]any{
				"type":        "string",
				"description": "One sentence on whether the stated confidence matched the outcome",
			},
			"is_correct_pattern": map[string]any{
				"type":        "boolean",
				"description": "Whether the chosen pattern was a reasonable fit for the problem",
			},
		},
		"required": []any{
			"feedback", "correct_identifications", "missed_signals",
			"next_time_advice", "pattern_tips", "confidence_calibration",
			"is_correct_pattern",
		},
		"additionalProperties": false,
	},
}
