package excel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillprep/internal/config"
	"skillprep/models"
)

func testWriter() *ReportWriter {
	return NewReportWriter(config.ReportConfig{
		SheetSessions: "Sessions",
		SheetProgress: "Progress",
	})
}

func TestBuildEmptyHistory(t *testing.T) {
	w := testWriter()

	f, err := w.Build(models.User{ID: 1, Username: "alexchen"}, nil, nil)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Sessions")
	assert.Contains(t, f.GetSheetList(), "Progress")

	first, err := f.GetCellValue("Sessions", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Session ID", first)

	// Header row only, no data.
	rows, err := f.GetRows("Sessions")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBuildWritesHistory(t *testing.T) {
	w := testWriter()

	started := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	completed := started.Add(45 * time.Minute)
	sessions := []models.PracticeSession{{
		ID:                 7,
		UserID:             1,
		Role:               models.RoleSoftwareDeveloper,
		Category:           models.CategoryCommunication,
		Duration:           45,
		QuestionsCompleted: 5,
		TotalQuestions:     5,
		StartedAt:          started,
		CompletedAt:        &completed,
		IsActive:           false,
	}}
	progress := []models.UserProgress{{
		ID:                 1,
		UserID:             1,
		Role:               models.RoleSoftwareDeveloper,
		Category:           models.CategoryCommunication,
		QuestionsCompleted: 5,
		TotalPracticeTime:  45,
		AverageScore:       82,
	}}

	f, err := w.Build(models.User{ID: 1, Username: "alexchen"}, sessions, progress)
	require.NoError(t, err)
	defer f.Close()

	id, err := f.GetCellValue("Sessions", "A2")
	require.NoError(t, err)
	assert.Equal(t, "7", id)

	role, err := f.GetCellValue("Sessions", "B2")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSoftwareDeveloper, role)

	completedAt, err := f.GetCellValue("Sessions", "H2")
	require.NoError(t, err)
	assert.Equal(t, completed.Format(time.RFC3339), completedAt)

	score, err := f.GetCellValue("Progress", "E2")
	require.NoError(t, err)
	assert.Equal(t, "82", score)

	// LastPracticed was never set; the cell stays empty.
	last, err := f.GetCellValue("Progress", "F2")
	require.NoError(t, err)
	assert.Empty(t, last)
}

func TestFilename(t *testing.T) {
	w := testWriter()
	got := w.Filename(models.User{Username: "alexchen"})
	assert.Equal(t, "practice-report-alexchen.xlsx", got)
}
