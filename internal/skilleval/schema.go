package skilleval

import (
	"encoding/json"

	"github.com/abhisek/scouteye/internal/llm"
)

// ScoreSchema constrains the model to a single integer score when the
// provider supports structured output. The free-text path through ParseScore
// remains the fallback.
var ScoreSchema = &llm.Schema{
	Name:        "skill-score",
	Description: "A single rubric-based skill score",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     MaxScorePerSkill,
				"description": "The rubric score for the observed skill",
			},
		},
		"required":             []any{"score"},
		"additionalProperties": false,
	},
}

type scorePayload struct {
	Score int `json:"score"`
}

// DecodeScore extracts the score from a schema-validated JSON response and
// clamps it into range.
func DecodeScore(content json.RawMessage) (int, error) {
	var p scorePayload
	if err := json.Unmarshal(content, &p); err != nil {
		return 0, err
	}
	return clampScore(p.Score), nil
}
