package memstore

import (
	"context"
	"time"

	"skillprep/models"
	"skillprep/ports"
)

// StatsService implements ports.StatsProvider by scanning the user's
// responses and progress rows. Every call is a full scan; the store is
// small enough that this is the whole design.
type StatsService struct {
	sessions  *SessionRepository
	responses *ResponseRepository
	progress  *ProgressRepository
}

// NewStatsService wires the stats scanner over the three repositories
// it aggregates from.
func NewStatsService(sessions *SessionRepository, responses *ResponseRepository, progress *ProgressRepository) *StatsService {
	return &StatsService{sessions: sessions, responses: responses, progress: progress}
}

// UserStats derives the dashboard counters: total responses across the
// user's sessions, whole practice hours, categories with at least one
// completed question, and the practice streak in days.
func (s *StatsService) UserStats(ctx context.Context, userID int) (models.UserStats, error) {
	sessions, err := s.sessions.ListUserSessions(ctx, userID)
	if err != nil {
		return models.UserStats{}, err
	}
	userSessions := make(map[int]bool)
	for _, session := range sessions {
		userSessions[session.ID] = true
	}

	var answered []models.QuestionResponse
	for _, response := range s.responses.listAll() {
		if userSessions[response.SessionID] {
			answered = append(answered, response)
		}
	}

	progress, err := s.progress.ListUserProgress(ctx, userID)
	if err != nil {
		return models.UserStats{}, err
	}

	totalPracticeTime := 0
	skillsImproved := 0
	for _, row := range progress {
		totalPracticeTime += row.TotalPracticeTime
		if row.QuestionsCompleted > 0 {
			skillsImproved++
		}
	}

	return models.UserStats{
		QuestionsCompleted: len(answered),
		PracticeHours:      totalPracticeTime / 60,
		SkillsImproved:     skillsImproved,
		CurrentStreak:      streakDays(answered, time.Now()),
	}, nil
}

// streakDays counts consecutive calendar days with at least one
// response, walking backwards from today. A streak that ended
// yesterday still counts; one that ended earlier is over.
func streakDays(responses []models.QuestionResponse, now time.Time) int {
	practiced := make(map[string]bool, len(responses))
	for _, response := range responses {
		practiced[response.AnsweredAt.Format("2006-01-02")] = true
	}

	day := now
	if !practiced[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
		if !practiced[day.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for practiced[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

var _ ports.StatsProvider = (*StatsService)(nil)
