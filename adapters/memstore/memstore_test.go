package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillprep/domain/bank"
	apperrors "skillprep/internal/errors"
	"skillprep/models"
)

func seedQuestions(t *testing.T, repo *QuestionRepository) {
	t.Helper()
	ctx := context.Background()
	for _, q := range bank.Seed() {
		_, err := repo.CreateQuestion(ctx, q)
		require.NoError(t, err)
	}
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, models.InsertUser{
		Username: "alexchen",
		Password: "password",
		Name:     "Alex Chen",
		Email:    "alex.chen@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, models.RoleSoftwareDeveloper, user.CurrentRole)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	byName, err := repo.GetUserByUsername(ctx, "alexchen")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = repo.GetUser(ctx, 99)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
}

func TestQuestionRepositoryListAndRandom(t *testing.T) {
	repo := NewQuestionRepository()
	seedQuestions(t, repo)
	ctx := context.Background()

	all, err := repo.ListQuestions(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, len(bank.Seed()))

	// Insertion order is preserved.
	for i, q := range all {
		assert.Equal(t, i+1, q.ID)
	}

	filtered, err := repo.ListQuestions(ctx, models.RoleSoftwareDeveloper, models.CategoryCollaboration)
	require.NoError(t, err)
	for _, q := range filtered {
		assert.Equal(t, models.RoleSoftwareDeveloper, q.Role)
		assert.Equal(t, models.CategoryCollaboration, q.Category)
	}

	sampled, err := repo.RandomQuestions(ctx, models.RoleSoftwareDeveloper, models.CategoryCollaboration, 10)
	require.NoError(t, err)
	assert.Len(t, sampled, len(filtered))

	none, err := repo.RandomQuestions(ctx, "astronaut", "navigation", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	session, err := repo.CreateSession(ctx, models.InsertPracticeSession{
		UserID:         1,
		Role:           models.RoleSoftwareDeveloper,
		Category:       models.CategoryCommunication,
		Duration:       45,
		TotalQuestions: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, session.ID)
	assert.True(t, session.IsActive)
	assert.Zero(t, session.QuestionsCompleted)
	assert.Nil(t, session.CompletedAt)

	fetched, err := repo.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session, fetched)

	completed := 5
	inactive := false
	now := time.Now()
	updated, err := repo.UpdateSession(ctx, session.ID, models.SessionPatch{
		QuestionsCompleted: &completed,
		CompletedAt:        &now,
		IsActive:           &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.QuestionsCompleted)
	assert.False(t, updated.IsActive)
	require.NotNil(t, updated.CompletedAt)
	// Untouched fields survive the patch.
	assert.Equal(t, models.RoleSoftwareDeveloper, updated.Role)
	assert.Equal(t, models.CategoryCommunication, updated.Category)
	assert.Equal(t, 45, updated.Duration)

	_, err = repo.UpdateSession(ctx, 99, models.SessionPatch{})
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
}

func TestListActiveSessions(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	first, err := repo.CreateSession(ctx, models.InsertPracticeSession{UserID: 1, Role: models.RoleTechLead, Category: models.CategoryLeadership, Duration: 30, TotalQuestions: 3})
	require.NoError(t, err)
	_, err = repo.CreateSession(ctx, models.InsertPracticeSession{UserID: 2, Role: models.RoleTechLead, Category: models.CategoryLeadership, Duration: 30, TotalQuestions: 3})
	require.NoError(t, err)

	inactive := false
	_, err = repo.UpdateSession(ctx, first.ID, models.SessionPatch{IsActive: &inactive})
	require.NoError(t, err)

	active, err := repo.ListActiveSessions(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.ListUserSessions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestResponseRepository(t *testing.T) {
	repo := NewResponseRepository()
	ctx := context.Background()

	response, err := repo.CreateResponse(ctx, models.InsertQuestionResponse{
		SessionID:  1,
		QuestionID: 2,
		Response:   "I would escalate with context.",
		TimeSpent:  120,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, response.ID)
	assert.False(t, response.IsFlagged)
	assert.False(t, response.AnsweredAt.IsZero())

	flagged := true
	updated, err := repo.UpdateResponse(ctx, response.ID, models.ResponsePatch{IsFlagged: &flagged})
	require.NoError(t, err)
	assert.True(t, updated.IsFlagged)
	assert.Equal(t, response.Response, updated.Response)

	bySession, err := repo.ListSessionResponses(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bySession, 1)

	empty, err := repo.ListSessionResponses(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = repo.UpdateResponse(ctx, 99, models.ResponsePatch{})
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
}

func TestUpsertProgressSingleRowPerKey(t *testing.T) {
	repo := NewProgressRepository()
	ctx := context.Background()

	three := 3
	first, err := repo.UpsertProgress(ctx, 1, models.ProgressUpdate{
		Role:               models.RoleTechLead,
		Category:           models.CategoryLeadership,
		QuestionsCompleted: &three,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, first.QuestionsCompleted)
	require.NotNil(t, first.LastPracticed)

	seven := 7
	ninety := 90
	second, err := repo.UpsertProgress(ctx, 1, models.ProgressUpdate{
		Role:               models.RoleTechLead,
		Category:           models.CategoryLeadership,
		QuestionsCompleted: &seven,
		TotalPracticeTime:  &ninety,
	})
	require.NoError(t, err)

	// Same row, second write wins.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 7, second.QuestionsCompleted)
	assert.Equal(t, 90, second.TotalPracticeTime)

	rows, err := repo.ListUserProgress(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// A different category opens a second row.
	_, err = repo.UpsertProgress(ctx, 1, models.ProgressUpdate{Role: models.RoleTechLead, Category: models.CategoryCommunication})
	require.NoError(t, err)
	rows, err = repo.ListUserProgress(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestUserStats(t *testing.T) {
	sessions := NewSessionRepository()
	responses := NewResponseRepository()
	progress := NewProgressRepository()
	stats := NewStatsService(sessions, responses, progress)
	ctx := context.Background()

	empty, err := stats.UserStats(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, empty.QuestionsCompleted)
	assert.Zero(t, empty.CurrentStreak)

	session, err := sessions.CreateSession(ctx, models.InsertPracticeSession{UserID: 1, Role: models.RoleTechLead, Category: models.CategoryLeadership, Duration: 45, TotalQuestions: 5})
	require.NoError(t, err)
	other, err := sessions.CreateSession(ctx, models.InsertPracticeSession{UserID: 2, Role: models.RoleTechLead, Category: models.CategoryLeadership, Duration: 45, TotalQuestions: 5})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = responses.CreateResponse(ctx, models.InsertQuestionResponse{SessionID: session.ID, QuestionID: i + 1, Response: "answer", TimeSpent: 60})
		require.NoError(t, err)
	}
	// Another user's response must not count.
	_, err = responses.CreateResponse(ctx, models.InsertQuestionResponse{SessionID: other.ID, QuestionID: 1, Response: "answer", TimeSpent: 60})
	require.NoError(t, err)

	two := 2
	minutes := 150
	_, err = progress.UpsertProgress(ctx, 1, models.ProgressUpdate{Role: models.RoleTechLead, Category: models.CategoryLeadership, QuestionsCompleted: &two, TotalPracticeTime: &minutes})
	require.NoError(t, err)

	got, err := stats.UserStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, got.QuestionsCompleted)
	assert.Equal(t, 2, got.PracticeHours)
	assert.Equal(t, 1, got.SkillsImproved)
	assert.Equal(t, 1, got.CurrentStreak)
}

func TestStreakDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) models.QuestionResponse {
		return models.QuestionResponse{AnsweredAt: now.AddDate(0, 0, -offset)}
	}

	tests := []struct {
		name      string
		responses []models.QuestionResponse
		want      int
	}{
		{"no responses", nil, 0},
		{"today only", []models.QuestionResponse{day(0)}, 1},
		{"three consecutive days ending today", []models.QuestionResponse{day(0), day(1), day(2)}, 3},
		{"streak ended yesterday still counts", []models.QuestionResponse{day(1), day(2)}, 2},
		{"gap breaks the streak", []models.QuestionResponse{day(0), day(2), day(3)}, 1},
		{"stale practice", []models.QuestionResponse{day(5), day(6)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, streakDays(tt.responses, now))
		})
	}
}
