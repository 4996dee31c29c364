package memstore

import (
	"context"
	"sync"
	"time"

	"skillprep/internal/errors"
	"skillprep/models"
	"skillprep/ports"
)

// ResponseRepository implements ports.ResponseRepository in memory.
// Responses are never deleted.
type ResponseRepository struct {
	mu        sync.RWMutex
	responses map[int]models.QuestionResponse
	nextID    int
}

// NewResponseRepository creates an empty in-memory response repository.
func NewResponseRepository() *ResponseRepository {
	return &ResponseRepository{
		responses: make(map[int]models.QuestionResponse),
		nextID:    1,
	}
}

// CreateResponse stores an answered (or skipped) question.
func (r *ResponseRepository) CreateResponse(ctx context.Context, in models.InsertQuestionResponse) (models.QuestionResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	response := models.QuestionResponse{
		ID:         r.nextID,
		SessionID:  in.SessionID,
		QuestionID: in.QuestionID,
		Response:   in.Response,
		TimeSpent:  in.TimeSpent,
		IsFlagged:  false,
		AnsweredAt: time.Now(),
	}
	r.nextID++
	r.responses[response.ID] = response
	return response, nil
}

// UpdateResponse applies the non-nil patch fields.
func (r *ResponseRepository) UpdateResponse(ctx context.Context, id int, patch models.ResponsePatch) (models.QuestionResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	response, ok := r.responses[id]
	if !ok {
		return models.QuestionResponse{}, errors.NotFound("response")
	}

	if patch.Response != nil {
		response.Response = *patch.Response
	}
	if patch.IsFlagged != nil {
		response.IsFlagged = *patch.IsFlagged
	}

	r.responses[id] = response
	return response, nil
}

// ListSessionResponses returns all responses recorded for a session.
func (r *ResponseRepository) ListSessionResponses(ctx context.Context, sessionID int) ([]models.QuestionResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.QuestionResponse
	for _, response := range r.responses {
		if response.SessionID == sessionID {
			out = append(out, response)
		}
	}
	return out, nil
}

// listAll snapshots every stored response, for stats aggregation.
func (r *ResponseRepository) listAll() []models.QuestionResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.QuestionResponse, 0, len(r.responses))
	for _, response := range r.responses {
		out = append(out, response)
	}
	return out
}

var _ ports.ResponseRepository = (*ResponseRepository)(nil)
