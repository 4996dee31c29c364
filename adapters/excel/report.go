// Package excel builds downloadable practice reports as .xlsx
// workbooks.
package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"skillprep/internal/config"
	"skillprep/models"
)

var sessionHeaders = []string{"Session ID", "Role", "Category", "Duration (min)", "Questions Completed", "Total Questions", "Started At", "Completed At", "Active"}

var progressHeaders = []string{"Role", "Category", "Questions Completed", "Practice Time (min)", "Average Score (%)", "Last Practiced"}

// ReportWriter renders a user's practice history into a workbook with
// one sheet of sessions and one of per-category progress.
type ReportWriter struct {
	cfg config.ReportConfig
}

// NewReportWriter creates a report writer using the configured sheet
// names.
func NewReportWriter(cfg config.ReportConfig) *ReportWriter {
	return &ReportWriter{cfg: cfg}
}

// Build assembles the workbook. A user with no history still gets a
// valid workbook with header rows only.
func (w *ReportWriter) Build(user models.User, sessions []models.PracticeSession, progress []models.UserProgress) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", w.cfg.SheetSessions); err != nil {
		return nil, fmt.Errorf("failed to name sessions sheet: %w", err)
	}
	if _, err := f.NewSheet(w.cfg.SheetProgress); err != nil {
		return nil, fmt.Errorf("failed to create progress sheet: %w", err)
	}

	if err := writeRow(f, w.cfg.SheetSessions, 1, toCells(sessionHeaders)); err != nil {
		return nil, err
	}
	for i, session := range sessions {
		row := []interface{}{
			session.ID,
			session.Role,
			session.Category,
			session.Duration,
			session.QuestionsCompleted,
			session.TotalQuestions,
			session.StartedAt.Format(time.RFC3339),
			formatOptionalTime(session.CompletedAt),
			session.IsActive,
		}
		if err := writeRow(f, w.cfg.SheetSessions, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, w.cfg.SheetProgress, 1, toCells(progressHeaders)); err != nil {
		return nil, err
	}
	for i, row := range progress {
		cells := []interface{}{
			row.Role,
			row.Category,
			row.QuestionsCompleted,
			row.TotalPracticeTime,
			row.AverageScore,
			formatOptionalTime(row.LastPracticed),
		}
		if err := writeRow(f, w.cfg.SheetProgress, i+2, cells); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Filename returns the suggested download name for a user's report.
func (w *ReportWriter) Filename(user models.User) string {
	return fmt.Sprintf("practice-report-%s.xlsx", user.Username)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

func toCells(headers []string) []interface{} {
	out := make([]interface{}, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
