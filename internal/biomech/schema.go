package biomech

import (
	"encoding/json"

	"github.com/abhisek/scouteye/internal/llm"
)

// MetricsSchema constrains structured output to one string value per
// metric. Values stay strings even for numeric metrics: the model reports
// estimates ("151.3", "5.6%") or the sentinel, and the record keeps them
// verbatim.
var MetricsSchema = buildMetricsSchema()

func buildMetricsSchema() *llm.Schema {
	props := make(map[string]any, len(Metrics))
	required := make([]any, 0, len(Metrics))
	for _, m := range Metrics {
		props[string(m)] = map[string]any{"type": "string"}
		required = append(required, string(m))
	}
	return &llm.Schema{
		Name:        "biomech-metrics",
		Description: "Estimated biomechanical metrics extracted from a movement video",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}

// DecodeRecord builds a Record from a schema-validated JSON response.
// Missing or empty values fall back to the sentinel; categorical Arabic
// values are kept raw, like the text path.
func DecodeRecord(content json.RawMessage) (Record, int, error) {
	var raw map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, 0, err
	}

	rec := NewRecord()
	parsed := 0
	for _, m := range Metrics {
		v, ok := raw[string(m)]
		if !ok || v == "" {
			continue
		}
		rec[m] = v
		parsed++
	}
	return rec, parsed, nil
}
