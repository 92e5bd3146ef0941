package skilleval

import (
	"regexp"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+`)

// ParseScore extracts a score from the model's free-text answer: the first
// run of ASCII digits, clamped to [0, MaxScorePerSkill]. Text with no digits
// scores 0; a later digit run never overrides the first.
func ParseScore(text string) int {
	m := digitRun.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// Longer than an int; the clamp answer is the same.
		return MaxScorePerSkill
	}
	return clampScore(n)
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxScorePerSkill {
		return MaxScorePerSkill
	}
	return n
}
