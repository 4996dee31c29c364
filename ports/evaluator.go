package ports

import (
	"skillprep/models"
)

// ResponseEvaluator scores a free-text answer. The shipped implementation
// is a keyword heuristic; a real evaluator can be substituted without
// touching the interview flow.
type ResponseEvaluator interface {
	Evaluate(text string) models.Evaluation
}
