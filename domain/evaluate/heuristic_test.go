package evaluate

import (
	"strings"
	"testing"
)

func TestEvaluateScoring(t *testing.T) {
	h := NewHeuristic()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"short generic answer", "I would fix it.", 5},
		{"mentions an example", "For example, I once debugged a crash.", 7},
		{"mentions teamwork", "I would ask the team for input.", 6},
		{
			"long answer with example and teamwork",
			strings.Repeat("We discussed the approach in detail. ", 7) + "For example, the team and I profiled the service together.",
			10,
		},
		{
			"over 100 characters without keywords",
			strings.Repeat("I would investigate the logs and metrics carefully. ", 3),
			6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Evaluate(tt.text)
			if got.Score != tt.want {
				t.Errorf("Expected score %d, got %d", tt.want, got.Score)
			}
			if got.Feedback == "" {
				t.Error("Expected non-empty feedback")
			}
		})
	}
}

func TestEvaluateScoreNeverExceedsMax(t *testing.T) {
	h := NewHeuristic()
	text := strings.Repeat("example team collaborate time when ", 20)
	if got := h.Evaluate(text); got.Score > maxScore {
		t.Errorf("Score %d exceeds maximum %d", got.Score, maxScore)
	}
}

func TestEvaluateFeedbackHints(t *testing.T) {
	h := NewHeuristic()

	short := h.Evaluate("ok")
	if !strings.Contains(short.Feedback, "specific examples") {
		t.Errorf("Expected example hint for answer without examples, got %q", short.Feedback)
	}
	if !strings.Contains(short.Feedback, "more detail") {
		t.Errorf("Expected detail hint for short answer, got %q", short.Feedback)
	}

	excellent := h.Evaluate(strings.Repeat("The team worked through it. ", 5) + "For example, we split the migration into stages.")
	if !strings.HasPrefix(excellent.Feedback, "Excellent") {
		t.Errorf("Expected excellent feedback for high score, got %q", excellent.Feedback)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize([]int{5, 7, 9})
	if got.Mean != 7 {
		t.Errorf("Expected mean 7, got %v", got.Mean)
	}
	if got.Min != 5 || got.Max != 9 {
		t.Errorf("Expected min 5 max 9, got %d/%d", got.Min, got.Max)
	}

	if empty := Summarize(nil); empty != (Summary{}) {
		t.Errorf("Expected zero summary for empty input, got %+v", empty)
	}
}
