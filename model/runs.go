package model

import "strings"

// TrimRuns enforces invariant 4 (§3, §8): the first run has no leading
// whitespace, the last has no trailing whitespace, and empty runs are
// dropped. breakLine-only runs (empty text, BreakLine set) are preserved —
// they aren't "empty" in the sense this invariant means.
func TrimRuns(runs []Run) []Run {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.Text == "" && !r.Options.BreakLine {
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return out
	}
	// Trimming to empty can re-expose a now-empty non-breakLine run; drop
	// it and trim the run that becomes the new edge.
	for {
		out[0].Text = strings.TrimLeft(out[0].Text, " \t\n")
		if out[0].Text != "" || out[0].Options.BreakLine || len(out) == 1 {
			break
		}
		out = out[1:]
	}
	for {
		last := len(out) - 1
		out[last].Text = strings.TrimRight(out[last].Text, " \t\n")
		if out[last].Text != "" || out[last].Options.BreakLine || len(out) == 1 {
			break
		}
		out = out[:last]
	}
	return out
}

// CountBreakLines counts runs with BreakLine set, used to check invariant
// 5 (a list with N items carries exactly N-1 terminators).
func CountBreakLines(runs []Run) int {
	n := 0
	for _, r := range runs {
		if r.Options.BreakLine {
			n++
		}
	}
	return n
}
