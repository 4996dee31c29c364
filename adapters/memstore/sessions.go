package memstore

import (
	"context"
	"sync"
	"time"

	"skillprep/internal/errors"
	"skillprep/models"
	"skillprep/ports"
)

// SessionRepository implements ports.SessionRepository in memory.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[int]models.PracticeSession
	nextID   int
}

// NewSessionRepository creates an empty in-memory session repository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[int]models.PracticeSession),
		nextID:   1,
	}
}

// CreateSession stores a new session. Sessions start active, with zero
// completed questions and no completion timestamp.
func (r *SessionRepository) CreateSession(ctx context.Context, in models.InsertPracticeSession) (models.PracticeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := models.PracticeSession{
		ID:             r.nextID,
		UserID:         in.UserID,
		Role:           in.Role,
		Category:       in.Category,
		Duration:       in.Duration,
		TotalQuestions: in.TotalQuestions,
		StartedAt:      time.Now(),
		CompletedAt:    nil,
		IsActive:       true,
	}
	r.nextID++
	r.sessions[session.ID] = session
	return session, nil
}

// GetSession retrieves a session by id.
func (r *SessionRepository) GetSession(ctx context.Context, id int) (models.PracticeSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return models.PracticeSession{}, errors.NotFound("session")
	}
	return session, nil
}

// UpdateSession applies the non-nil patch fields. Role and category are
// not patchable.
func (r *SessionRepository) UpdateSession(ctx context.Context, id int, patch models.SessionPatch) (models.PracticeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return models.PracticeSession{}, errors.NotFound("session")
	}

	if patch.QuestionsCompleted != nil {
		session.QuestionsCompleted = *patch.QuestionsCompleted
	}
	if patch.CompletedAt != nil {
		completedAt := *patch.CompletedAt
		session.CompletedAt = &completedAt
	}
	if patch.IsActive != nil {
		session.IsActive = *patch.IsActive
	}

	r.sessions[id] = session
	return session, nil
}

// ListActiveSessions returns the user's active sessions.
func (r *SessionRepository) ListActiveSessions(ctx context.Context, userID int) ([]models.PracticeSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.PracticeSession
	for _, session := range r.sessions {
		if session.UserID == userID && session.IsActive {
			out = append(out, session)
		}
	}
	return out, nil
}

// ListUserSessions returns every session belonging to a user, used by
// stats and report building.
func (r *SessionRepository) ListUserSessions(ctx context.Context, userID int) ([]models.PracticeSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.PracticeSession
	for _, session := range r.sessions {
		if session.UserID == userID {
			out = append(out, session)
		}
	}
	return out, nil
}

var _ ports.SessionRepository = (*SessionRepository)(nil)
