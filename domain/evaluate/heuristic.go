package evaluate

import (
	"strings"

	"github.com/montanaflynn/stats"

	"skillprep/models"
)

const (
	baselineScore = 5
	maxScore      = 10

	detailThreshold = 100
	depthThreshold  = 200
)

// Heuristic scores free-text answers with a fixed linear rule: a
// baseline plus bonuses for length and for mentioning concrete examples
// and teamwork. It is explicitly a stub evaluator, not a model of
// answer quality.
type Heuristic struct{}

// NewHeuristic returns the keyword-matching evaluator.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Evaluate scores text on a 0-10 scale and attaches feedback.
func (h *Heuristic) Evaluate(text string) models.Evaluation {
	lower := strings.ToLower(text)
	hasExample := strings.Contains(lower, "example") || strings.Contains(lower, "time when")
	mentionsTeamwork := strings.Contains(lower, "team") || strings.Contains(lower, "collaborate")

	score := baselineScore
	if len(text) > detailThreshold {
		score++
	}
	if len(text) > depthThreshold {
		score++
	}
	if hasExample {
		score += 2
	}
	if mentionsTeamwork {
		score++
	}
	if score > maxScore {
		score = maxScore
	}

	feedback := "Good response. "
	if !hasExample {
		feedback += "Try to include specific examples next time. "
	}
	if len(text) < detailThreshold {
		feedback += "Consider providing more detail. "
	}
	if score >= 8 {
		feedback = "Excellent response with good structure and specific examples!"
	}

	return models.Evaluation{Score: score, Feedback: strings.TrimSpace(feedback)}
}

// Summary aggregates a run of answer scores.
type Summary struct {
	Mean float64 `json:"mean"`
	Min  int     `json:"min"`
	Max  int     `json:"max"`
}

// Summarize computes the score summary for a finished run. An empty
// run yields the zero summary.
func Summarize(scores []int) Summary {
	if len(scores) == 0 {
		return Summary{}
	}
	data := make(stats.Float64Data, len(scores))
	for i, s := range scores {
		data[i] = float64(s)
	}
	mean, _ := stats.Mean(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	return Summary{Mean: mean, Min: int(min), Max: int(max)}
}
