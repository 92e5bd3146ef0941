package skilleval

// Aggregate totals the per-skill scores and assigns a letter grade from the
// percentage of the maximum. expected is the full skill set for the run.
// When scores covers fewer skills than expected, the summary is marked
// incomplete: the total and the maximum reflect only the scored skills, and
// no grade band is assigned.
func Aggregate(scores map[Skill]int, expected []Skill) Summary {
	s := Summary{
		Scores:   scores,
		MaxScore: len(scores) * MaxScorePerSkill,
	}
	for _, v := range scores {
		s.Total += v
	}

	if len(scores) == 0 {
		s.Grade = GradeNone
		return s
	}
	if len(scores) != len(expected) {
		s.Grade = GradeIncomplete
		return s
	}

	pct := 0.0
	if s.MaxScore > 0 {
		pct = float64(s.Total) / float64(s.MaxScore) * 100
	}
	switch {
	case pct >= 90:
		s.Grade = GradeExcellent
	case pct >= 75:
		s.Grade = GradeVeryGood
	case pct >= 55:
		s.Grade = GradeGood
	case pct >= 40:
		s.Grade = GradeFair
	default:
		s.Grade = GradeWeak
	}
	return s
}
