package report

import (
	"charm.land/lipgloss/v2"
)

// Score band colors. Green for strong scores, orange for middling, red for
// weak, matching the three bands used in the score chart.
var (
	BandStrong = lipgloss.Color("#2ca02c")
	BandMid    = lipgloss.Color("#ff7f0e")
	BandWeak   = lipgloss.Color("#d62728")

	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	Border  = lipgloss.Color("#334155")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	strongStyle = lipgloss.NewStyle().Foreground(BandStrong).Bold(true)
	midStyle    = lipgloss.NewStyle().Foreground(BandMid).Bold(true)
	weakStyle   = lipgloss.NewStyle().Foreground(BandWeak).Bold(true)
)

// scoreStyle picks the band style for a per-skill score.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 4:
		return strongStyle
	case score >= 2.5:
		return midStyle
	default:
		return weakStyle
	}
}
