package report

import (
	"strings"
	"testing"

	"github.com/abhisek/scouteye/internal/biomech"
	"github.com/abhisek/scouteye/internal/skilleval"
)

func TestRenderSummary_ShowsScoresAndGrade(t *testing.T) {
	sum := skilleval.Aggregate(map[skilleval.Skill]int{
		skilleval.SkillJumping:        5,
		skilleval.SkillRunningControl: 4,
		skilleval.SkillPassing:        3,
		skilleval.SkillReceiving:      4,
		skilleval.SkillZigzag:         5,
	}, skilleval.SkillsFor(skilleval.AgeGroup8Plus))

	out := RenderSummary(sum, skilleval.AgeGroup8Plus)
	if !strings.Contains(out, "21 / 25") {
		t.Errorf("output missing total:\n%s", out)
	}
	if !strings.Contains(out, string(skilleval.GradeVeryGood)) {
		t.Errorf("output missing grade:\n%s", out)
	}
	if !strings.Contains(out, "التمرير") {
		t.Errorf("output missing skill label:\n%s", out)
	}
}

func TestRenderSummary_SingleSkillHidesGrade(t *testing.T) {
	sum := skilleval.Summary{
		Scores:   map[skilleval.Skill]int{skilleval.SkillPassing: 4},
		Total:    4,
		MaxScore: skilleval.MaxScorePerSkill,
		Grade:    skilleval.GradeNone,
	}

	out := RenderSummary(sum, skilleval.AgeGroup8Plus)
	if strings.Contains(out, "Grade:") {
		t.Errorf("single-skill output should not show a grade:\n%s", out)
	}
	if !strings.Contains(out, "4 / 5") {
		t.Errorf("output missing total:\n%s", out)
	}
}

func TestRenderMetrics_TranslatesValues(t *testing.T) {
	rec := biomech.NewRecord()
	rec[biomech.MetricRightKneeAngleAvg] = "151.3"
	rec[biomech.MetricRiskLevel] = "منخفض"

	out := RenderMetrics(rec)
	if !strings.Contains(out, "151.3") {
		t.Errorf("output missing numeric value:\n%s", out)
	}
	if !strings.Contains(out, "Low") {
		t.Errorf("output missing translated risk level:\n%s", out)
	}
	if !strings.Contains(out, "Not Clear") {
		t.Errorf("output missing sentinel translation:\n%s", out)
	}
	if !strings.Contains(out, "2 of 13") {
		t.Errorf("output missing clear count:\n%s", out)
	}
}
