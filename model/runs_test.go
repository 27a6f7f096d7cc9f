package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimRuns_TrimsLeadingAndTrailingWhitespace(t *testing.T) {
	runs := []Run{{Text: "  hello "}, {Text: " world  "}}
	out := TrimRuns(runs)
	assert.Equal(t, "hello ", out[0].Text)
	assert.Equal(t, " world", out[1].Text)
}

func TestTrimRuns_DropsEmptyNonBreakLineRuns(t *testing.T) {
	runs := []Run{{Text: ""}, {Text: "hello"}}
	out := TrimRuns(runs)
	assert.Len(t, out, 1)
	assert.Equal(t, "hello", out[0].Text)
}

func TestTrimRuns_PreservesBreakLineOnlyRuns(t *testing.T) {
	runs := []Run{
		{Text: "one"},
		{Text: "", Options: RunOptions{BreakLine: true}},
		{Text: "two"},
	}
	out := TrimRuns(runs)
	assert.Len(t, out, 3)
	assert.True(t, out[1].Options.BreakLine)
}

func TestTrimRuns_DropsNowEmptyEdgeRunWhenMultipleRunsRemain(t *testing.T) {
	out := TrimRuns([]Run{{Text: "  "}, {Text: "hello"}})
	assert.Len(t, out, 1)
	assert.Equal(t, "hello", out[0].Text)
}

func TestCountBreakLines(t *testing.T) {
	runs := []Run{
		{Text: "a"},
		{Options: RunOptions{BreakLine: true}},
		{Text: "b"},
		{Options: RunOptions{BreakLine: true}},
		{Text: "c"},
	}
	assert.Equal(t, 2, CountBreakLines(runs))
}
