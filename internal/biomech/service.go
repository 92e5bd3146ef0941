package biomech

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/scouteye/internal/analysis"
	"github.com/abhisek/scouteye/internal/asset"
	"github.com/abhisek/scouteye/internal/llm"
)

const (
	extractTemperature = 0.2
	extractMaxTokens   = 800
)

// Service extracts biomechanical metrics from an uploaded video.
type Service struct {
	inv        *analysis.Invoker
	structured bool
}

// NewService creates a biomechanics extraction service over the invoker.
func NewService(inv *analysis.Invoker) *Service {
	return &Service{inv: inv, structured: true}
}

// SetStructured toggles schema-constrained output.
func (s *Service) SetStructured(v bool) { s.structured = v }

// Extract runs one extraction call against the video. Whatever happens, the
// returned Record covers all 13 metrics: failures and unparseable answers
// leave the affected metrics at the sentinel. The error reports what went
// wrong; an all-sentinel record with a nil error means the model answered
// but nothing matched the expected format.
func (s *Service) Extract(ctx context.Context, a *asset.RemoteAsset) (Record, error) {
	ctx = llm.WithPurpose(ctx, "biomech-extract")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt()},
		},
		MaxTokens:   extractMaxTokens,
		Temperature: extractTemperature,
	}
	if s.structured {
		req.Schema = MetricsSchema
	}

	resp, err := s.inv.Infer(ctx, a, req, analysis.DefaultBiomechTimeout)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyResponse) {
			return NewRecord(), fmt.Errorf("empty biomechanics response: %w", err)
		}
		return NewRecord(), fmt.Errorf("extract biomechanics: %w", err)
	}

	if len(resp.Content) > 0 {
		if rec, _, derr := DecodeRecord(resp.Content); derr == nil {
			return rec, nil
		}
	}

	rec, _ := ParseMetricList(resp.Text)
	return rec, nil
}
