package skilleval

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/scouteye/internal/analysis"
	"github.com/abhisek/scouteye/internal/asset"
	"github.com/abhisek/scouteye/internal/llm"
)

const (
	scoreTemperature = 0.2
	scoreMaxTokens   = 800
)

// Service evaluates skills against an uploaded video.
type Service struct {
	inv *analysis.Invoker

	// structured requests schema-constrained output. When the provider
	// answers with free text anyway, ParseScore still applies.
	structured bool
}

// NewService creates a skill evaluation service over the invoker.
func NewService(inv *analysis.Invoker) *Service {
	return &Service{inv: inv, structured: true}
}

// SetStructured toggles schema-constrained output for providers that do not
// support it.
func (s *Service) SetStructured(v bool) { s.structured = v }

// EvaluateSkill scores one skill from the video. Any failure, including an
// empty model response, yields score 0 alongside the error; the zero is a
// usable default, the error tells the caller what happened.
func (s *Service) EvaluateSkill(ctx context.Context, a *asset.RemoteAsset, skill Skill, group AgeGroup) (int, error) {
	ctx = llm.WithPurpose(ctx, "skill-score")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt(skill, group)},
		},
		MaxTokens:   scoreMaxTokens,
		Temperature: scoreTemperature,
	}
	if s.structured {
		req.Schema = ScoreSchema
	}

	resp, err := s.inv.Infer(ctx, a, req, analysis.DefaultSkillTimeout)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyResponse) {
			return 0, fmt.Errorf("empty response for skill %s: %w", skill, err)
		}
		return 0, fmt.Errorf("score skill %s: %w", skill, err)
	}

	if len(resp.Content) > 0 {
		if score, derr := DecodeScore(resp.Content); derr == nil {
			return score, nil
		}
	}
	return ParseScore(resp.Text), nil
}

// EvaluateAll scores every skill of the age group, one model call per
// skill, and aggregates the results. Individual failures score 0 and the
// run continues; only context cancellation aborts the loop, leaving an
// incomplete summary.
func (s *Service) EvaluateAll(ctx context.Context, a *asset.RemoteAsset, group AgeGroup) (Summary, error) {
	expected := SkillsFor(group)
	if len(expected) == 0 {
		return Summary{Grade: GradeNone}, fmt.Errorf("unknown age group %q", group)
	}

	scores := make(map[Skill]int, len(expected))
	for _, skill := range expected {
		if err := ctx.Err(); err != nil {
			return Aggregate(scores, expected), err
		}

		score, err := s.EvaluateSkill(ctx, a, skill, group)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (scored 0)\n", err)
		}
		scores[skill] = score
	}
	return Aggregate(scores, expected), nil
}

// EvaluateOne scores a single selected skill and wraps it in a summary with
// no grade band, matching the single-skill analysis mode.
func (s *Service) EvaluateOne(ctx context.Context, a *asset.RemoteAsset, skill Skill, group AgeGroup) (Summary, error) {
	score, err := s.EvaluateSkill(ctx, a, skill, group)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (scored 0)\n", err)
	}
	return Summary{
		Scores:   map[Skill]int{skill: score},
		Total:    score,
		MaxScore: MaxScorePerSkill,
		Grade:    GradeNone,
	}, nil
}
