// Package report renders evaluation and biomechanics results for the
// terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/scouteye/internal/biomech"
	"github.com/abhisek/scouteye/internal/skilleval"
)

const barWidth = 20

// RenderSummary renders a skill evaluation as a card with one bar per
// skill, colored by score band, plus the total and grade.
func RenderSummary(sum skilleval.Summary, group skilleval.AgeGroup) string {
	var b strings.Builder

	b.WriteString(Title.Render("Skill Evaluation"))
	b.WriteString("\n")
	b.WriteString(Dim.Render(string(group)))
	b.WriteString("\n\n")

	// Iterate in the age group's canonical order; anything extra in the
	// summary (single-skill runs) follows.
	seen := make(map[skilleval.Skill]bool)
	for _, sk := range skilleval.SkillsFor(group) {
		score, ok := sum.Scores[sk]
		if !ok {
			continue
		}
		seen[sk] = true
		b.WriteString(renderScoreLine(sk, score))
	}
	for sk, score := range sum.Scores {
		if !seen[sk] {
			b.WriteString(renderScoreLine(sk, score))
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %d / %d\n", sum.Total, sum.MaxScore)
	if sum.Grade != skilleval.GradeNone {
		fmt.Fprintf(&b, "Grade: %s\n", sum.Grade)
	}

	return Card.Render(strings.TrimRight(b.String(), "\n"))
}

func renderScoreLine(sk skilleval.Skill, score int) string {
	style := scoreStyle(float64(score))
	filled := score * barWidth / skilleval.MaxScorePerSkill
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("%-24s %s %s\n",
		skilleval.LabelAR(sk),
		style.Render(bar),
		style.Render(fmt.Sprintf("%d/%d", score, skilleval.MaxScorePerSkill)))
}

// RenderMetrics renders a biomechanics record as a two-column table with
// English labels and translated categorical values. Sentinel values are
// dimmed.
func RenderMetrics(rec biomech.Record) string {
	var b strings.Builder

	b.WriteString(Title.Render("Biomechanics"))
	b.WriteString("\n\n")

	for _, m := range biomech.Metrics {
		value := biomech.TranslateValue(rec[m])
		if value == biomech.NotClearEN {
			value = Dim.Render(value)
		}
		fmt.Fprintf(&b, "%-32s %s\n", biomech.LabelsEN[m], value)
	}

	fmt.Fprintf(&b, "\n%d of %d metrics estimated\n", rec.ClearCount(), len(biomech.Metrics))

	return Card.Render(strings.TrimRight(b.String(), "\n"))
}
