package skilleval

import "testing"

func TestAggregate_GradeBands(t *testing.T) {
	expected := SkillsFor(AgeGroup8Plus) // 5 skills, max 25

	tests := []struct {
		name   string
		scores []int
		grade  Grade
		total  int
	}{
		{"all fives is excellent", []int{5, 5, 5, 5, 5}, GradeExcellent, 25},
		{"above ninety percent", []int{5, 5, 5, 4, 4}, GradeExcellent, 23}, // 92%
		{"very good band", []int{4, 4, 4, 4, 4}, GradeVeryGood, 20},           // 80%
		{"good band", []int{3, 3, 3, 3, 3}, GradeGood, 15},                    // 60%
		{"fair band", []int{2, 2, 2, 2, 2}, GradeFair, 10},                    // 40%
		{"weak band", []int{1, 1, 1, 1, 1}, GradeWeak, 5},                     // 20%
		{"all zeros is weak", []int{0, 0, 0, 0, 0}, GradeWeak, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := make(map[Skill]int, len(expected))
			for i, sk := range expected {
				scores[sk] = tt.scores[i]
			}
			s := Aggregate(scores, expected)
			if s.Grade != tt.grade {
				t.Errorf("grade = %q, want %q", s.Grade, tt.grade)
			}
			if s.Total != tt.total {
				t.Errorf("total = %d, want %d", s.Total, tt.total)
			}
			if s.MaxScore != 25 {
				t.Errorf("max = %d, want 25", s.MaxScore)
			}
		})
	}
}

func TestAggregate_NinetyPercentBoundaryIsInclusive(t *testing.T) {
	expected := SkillsFor(AgeGroup5To8) // 4 skills, max 20
	scores := map[Skill]int{
		SkillRunningBasic:     5,
		SkillBallFeeling:      5,
		SkillFocusOnTask:      4,
		SkillFirstTouchSimple: 4,
	}

	s := Aggregate(scores, expected) // 18/20 = exactly 90%
	if s.Grade != GradeExcellent {
		t.Errorf("grade = %q, want %q at the 90%% boundary", s.Grade, GradeExcellent)
	}
	if s.Total != 18 || s.MaxScore != 20 {
		t.Errorf("total = %d/%d, want 18/20", s.Total, s.MaxScore)
	}
}

func TestAggregate_Incomplete(t *testing.T) {
	expected := SkillsFor(AgeGroup8Plus)
	scores := map[Skill]int{SkillJumping: 5, SkillPassing: 4}

	s := Aggregate(scores, expected)
	if s.Grade != GradeIncomplete {
		t.Errorf("grade = %q, want %q", s.Grade, GradeIncomplete)
	}
	if s.Total != 9 {
		t.Errorf("total = %d, want 9", s.Total)
	}
	// The maximum covers only the skills actually scored.
	if s.MaxScore != 10 {
		t.Errorf("max = %d, want 10", s.MaxScore)
	}
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil, SkillsFor(AgeGroup5To8))
	if s.Grade != GradeNone {
		t.Errorf("grade = %q, want %q", s.Grade, GradeNone)
	}
	if s.Total != 0 {
		t.Errorf("total = %d, want 0", s.Total)
	}
}

func TestSkillsFor(t *testing.T) {
	if got := len(SkillsFor(AgeGroup5To8)); got != 4 {
		t.Errorf("5-8 skill count = %d, want 4", got)
	}
	if got := len(SkillsFor(AgeGroup8Plus)); got != 5 {
		t.Errorf("8+ skill count = %d, want 5", got)
	}
	if got := SkillsFor("unknown"); got != nil {
		t.Errorf("unknown group = %v, want nil", got)
	}
}

func TestLabelAR_FallsBackToKey(t *testing.T) {
	if got := LabelAR(Skill("Made_Up")); got != "Made_Up" {
		t.Errorf("label = %q, want raw key", got)
	}
	if got := LabelAR(SkillPassing); got != "التمرير" {
		t.Errorf("label = %q, want التمرير", got)
	}
}
