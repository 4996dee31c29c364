package ports

import (
	"context"

	"skillprep/models"
)

// ProgressRepository defines the interface for per-user aggregate counters
type ProgressRepository interface {
	// ListUserProgress returns all progress rows for a user
	ListUserProgress(ctx context.Context, userID int) ([]models.UserProgress, error)

	// UpsertProgress merges the update into the row identified by
	// (userID, role, category), creating it with zeroed counters if
	// absent, and refreshes LastPracticed. Last write wins.
	UpsertProgress(ctx context.Context, userID int, upd models.ProgressUpdate) (models.UserProgress, error)
}

// StatsProvider derives aggregate counters for a user by scanning the
// user's responses and progress rows.
type StatsProvider interface {
	UserStats(ctx context.Context, userID int) (models.UserStats, error)
}
