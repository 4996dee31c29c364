package memstore

import (
	"context"
	"sync"
	"time"

	"skillprep/models"
	"skillprep/ports"
)

// ProgressRepository implements ports.ProgressRepository in memory.
// Rows are keyed by the (userID, role, category) struct key, so at most
// one row exists per triple.
type ProgressRepository struct {
	mu       sync.RWMutex
	progress map[models.ProgressKey]models.UserProgress
	nextID   int
}

// NewProgressRepository creates an empty in-memory progress repository.
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{
		progress: make(map[models.ProgressKey]models.UserProgress),
		nextID:   1,
	}
}

// ListUserProgress returns all progress rows for a user.
func (r *ProgressRepository) ListUserProgress(ctx context.Context, userID int) ([]models.UserProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.UserProgress
	for _, row := range r.progress {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

// UpsertProgress shallow-merges the update into the row for the
// (userID, role, category) key, creating it with zeroed counters if
// absent, and refreshes LastPracticed. Concurrent updates to the same
// key race with last-write-wins semantics; there is no
// compare-and-swap.
func (r *ProgressRepository) UpsertProgress(ctx context.Context, userID int, upd models.ProgressUpdate) (models.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := models.ProgressKey{UserID: userID, Role: upd.Role, Category: upd.Category}
	row, ok := r.progress[key]
	if !ok {
		row = models.UserProgress{
			ID:       r.nextID,
			UserID:   userID,
			Role:     upd.Role,
			Category: upd.Category,
		}
		r.nextID++
	}

	if upd.QuestionsCompleted != nil {
		row.QuestionsCompleted = *upd.QuestionsCompleted
	}
	if upd.TotalPracticeTime != nil {
		row.TotalPracticeTime = *upd.TotalPracticeTime
	}
	if upd.AverageScore != nil {
		row.AverageScore = *upd.AverageScore
	}
	now := time.Now()
	row.LastPracticed = &now

	r.progress[key] = row
	return row, nil
}

var _ ports.ProgressRepository = (*ProgressRepository)(nil)
