package bank

import (
	"math/rand"

	"skillprep/models"
)

// Bank holds the static corpus of practice questions and answers
// filtered and sampled views over it. The zero filter value matches
// everything; unknown role or category values simply yield an empty
// result, validation lives at the HTTP layer.
type Bank struct {
	questions []models.Question
	byID      map[int]models.Question
}

// Filter narrows a corpus query. Empty fields are ignored.
type Filter struct {
	Role       string
	Category   string
	Difficulty string
}

// Matches reports whether q satisfies every set field of the filter.
func (f Filter) Matches(q models.Question) bool {
	if f.Role != "" && q.Role != f.Role {
		return false
	}
	if f.Category != "" && q.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && q.Difficulty != f.Difficulty {
		return false
	}
	return true
}

// New builds a bank from the given corpus, preserving order.
func New(questions []models.Question) *Bank {
	b := &Bank{
		questions: make([]models.Question, len(questions)),
		byID:      make(map[int]models.Question, len(questions)),
	}
	copy(b.questions, questions)
	for _, q := range questions {
		b.byID[q.ID] = q
	}
	return b
}

// NewSeeded builds a bank from the built-in corpus.
func NewSeeded() *Bank {
	return New(Seed())
}

// All returns the corpus in insertion order.
func (b *Bank) All() []models.Question {
	out := make([]models.Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Get returns the question with the given id.
func (b *Bank) Get(id int) (models.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Select returns the questions matching the filter, in insertion order.
func (b *Bank) Select(f Filter) []models.Question {
	var out []models.Question
	for _, q := range b.questions {
		if f.Matches(q) {
			out = append(out, q)
		}
	}
	return out
}

// Random returns up to limit questions drawn without replacement from
// the filtered set. Best-effort: when the filtered set is smaller than
// limit the whole set is returned, possibly empty.
func (b *Bank) Random(f Filter, limit int) []models.Question {
	filtered := b.Select(f)
	return Sample(filtered, limit)
}

// Sample shuffles a copy of qs and truncates it to limit. The shuffle
// is not cryptographically sound; question sampling does not need it
// to be.
func Sample(qs []models.Question, limit int) []models.Question {
	if limit < 0 {
		limit = 0
	}
	shuffled := make([]models.Question, len(qs))
	copy(shuffled, qs)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if limit > len(shuffled) {
		limit = len(shuffled)
	}
	return shuffled[:limit]
}
