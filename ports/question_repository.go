package ports

import (
	"context"

	"skillprep/models"
)

// QuestionRepository defines the interface for question reference data
type QuestionRepository interface {
	// CreateQuestion stores a question and assigns its id
	CreateQuestion(ctx context.Context, q models.Question) (models.Question, error)

	// GetQuestion retrieves a question by id
	GetQuestion(ctx context.Context, id int) (models.Question, error)

	// ListQuestions returns questions matching the optional filters, in
	// insertion order. Empty filter values match everything.
	ListQuestions(ctx context.Context, role, category string) ([]models.Question, error)

	// RandomQuestions returns up to limit questions sampled without
	// replacement from the filtered set. Best-effort: the result may be
	// shorter than limit.
	RandomQuestions(ctx context.Context, role, category string, limit int) ([]models.Question, error)
}
