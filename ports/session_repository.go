package ports

import (
	"context"

	"skillprep/models"
)

// SessionRepository defines the interface for practice session operations
type SessionRepository interface {
	// CreateSession stores a new session, active with zero completions
	CreateSession(ctx context.Context, in models.InsertPracticeSession) (models.PracticeSession, error)

	// GetSession retrieves a session by id
	GetSession(ctx context.Context, id int) (models.PracticeSession, error)

	// UpdateSession applies the non-nil patch fields and returns the
	// updated session
	UpdateSession(ctx context.Context, id int, patch models.SessionPatch) (models.PracticeSession, error)

	// ListActiveSessions returns the user's active sessions
	ListActiveSessions(ctx context.Context, userID int) ([]models.PracticeSession, error)

	// ListUserSessions returns every session belonging to the user
	ListUserSessions(ctx context.Context, userID int) ([]models.PracticeSession, error)
}

// ResponseRepository defines the interface for question response operations
type ResponseRepository interface {
	// CreateResponse stores an answered (or skipped) question
	CreateResponse(ctx context.Context, in models.InsertQuestionResponse) (models.QuestionResponse, error)

	// UpdateResponse applies the non-nil patch fields and returns the
	// updated response
	UpdateResponse(ctx context.Context, id int, patch models.ResponsePatch) (models.QuestionResponse, error)

	// ListSessionResponses returns all responses recorded for a session
	ListSessionResponses(ctx context.Context, sessionID int) ([]models.QuestionResponse, error)
}
