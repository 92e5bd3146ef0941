package biomech

import (
	"regexp"
	"strings"
)

// metricLine matches one numbered answer line: number, dot, whitespace,
// label, colon, whitespace, value. The label match is lazy so the first
// colon splits label from value.
var metricLine = regexp.MustCompile(`^\d+\.\s+(.+?):\s+(.+)$`)

// Label lookup tables. Strict matches the full Arabic label; loose drops
// the parenthetical unit, which the model usually omits in its answer.
var (
	strictLabels = buildLabelTable(func(l string) string {
		if i := strings.Index(l, ":"); i >= 0 {
			l = l[:i]
		}
		return strings.TrimSpace(l)
	})
	looseLabels = buildLabelTable(func(l string) string {
		if i := strings.Index(l, "("); i >= 0 {
			l = l[:i]
		}
		return strings.TrimSpace(l)
	})
)

func buildLabelTable(normalize func(string) string) map[string]Metric {
	t := make(map[string]Metric, len(LabelsAR))
	for m, label := range LabelsAR {
		t[normalize(label)] = m
	}
	return t
}

// ParseMetricList parses the model's numbered-list answer into a Record.
// Every metric starts at the sentinel; only lines that match the expected
// shape and name a known label overwrite it. Lines that do not match are
// skipped, so a chatty preamble or trailing note cannot poison the record.
// The second return value is the number of metrics actually parsed.
func ParseMetricList(text string) (Record, int) {
	rec := NewRecord()
	parsed := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		m := metricLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		label := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])

		metric, ok := strictLabels[label]
		if !ok {
			metric, ok = looseLabels[label]
		}
		if !ok {
			continue
		}

		rec[metric] = strings.Trim(value, `'"`)
		parsed++
	}
	return rec, parsed
}
