package memstore

import (
	"context"
	"sync"

	"skillprep/domain/bank"
	"skillprep/internal/errors"
	"skillprep/models"
	"skillprep/ports"
)

// QuestionRepository implements ports.QuestionRepository in memory.
// The order slice preserves insertion order for list results.
type QuestionRepository struct {
	mu        sync.RWMutex
	questions map[int]models.Question
	order     []int
	nextID    int
}

// NewQuestionRepository creates an empty in-memory question repository.
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{
		questions: make(map[int]models.Question),
		nextID:    1,
	}
}

// CreateQuestion stores a question and assigns its id.
func (r *QuestionRepository) CreateQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q.ID = r.nextID
	r.nextID++
	r.questions[q.ID] = q
	r.order = append(r.order, q.ID)
	return q, nil
}

// GetQuestion retrieves a question by id.
func (r *QuestionRepository) GetQuestion(ctx context.Context, id int) (models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.questions[id]
	if !ok {
		return models.Question{}, errors.NotFound("question")
	}
	return q, nil
}

// ListQuestions returns questions matching the optional filters, in
// insertion order. Unknown filter values yield an empty result rather
// than an error.
func (r *QuestionRepository) ListQuestions(ctx context.Context, role, category string) ([]models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.selectLocked(bank.Filter{Role: role, Category: category}), nil
}

// RandomQuestions samples up to limit questions from the filtered set
// without replacement. Best-effort: fewer than limit may come back.
func (r *QuestionRepository) RandomQuestions(ctx context.Context, role, category string, limit int) ([]models.Question, error) {
	r.mu.RLock()
	filtered := r.selectLocked(bank.Filter{Role: role, Category: category})
	r.mu.RUnlock()

	return bank.Sample(filtered, limit), nil
}

func (r *QuestionRepository) selectLocked(f bank.Filter) []models.Question {
	var out []models.Question
	for _, id := range r.order {
		q := r.questions[id]
		if f.Matches(q) {
			out = append(out, q)
		}
	}
	return out
}

var _ ports.QuestionRepository = (*QuestionRepository)(nil)
