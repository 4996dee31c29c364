package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillprep/models"
)

func (s *Server) handleListProgress(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}

	progress, err := s.deps.ProgressRepo.ListUserProgress(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err, "Failed to fetch user progress")
		return
	}
	if progress == nil {
		progress = []models.UserProgress{}
	}
	c.JSON(http.StatusOK, progress)
}

func (s *Server) handleUpdateProgress(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}

	var upd models.ProgressUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid progress data"})
		return
	}

	if errs := upd.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role and category are required", "errors": errs})
		return
	}

	progress, err := s.deps.ProgressRepo.UpsertProgress(c.Request.Context(), userID, upd)
	if err != nil {
		s.fail(c, err, "Failed to update user progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (s *Server) handleUserStats(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}

	stats, err := s.deps.Stats.UserStats(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err, "Failed to fetch user stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// handleUserReport streams the user's practice history as an .xlsx
// workbook.
func (s *Server) handleUserReport(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	user, err := s.deps.UserRepo.GetUser(ctx, userID)
	if err != nil {
		s.fail(c, err, "Failed to fetch user")
		return
	}

	sessions, err := s.deps.SessionRepo.ListUserSessions(ctx, userID)
	if err != nil {
		s.fail(c, err, "Failed to fetch sessions")
		return
	}
	progress, err := s.deps.ProgressRepo.ListUserProgress(ctx, userID)
	if err != nil {
		s.fail(c, err, "Failed to fetch user progress")
		return
	}

	report, err := s.deps.ReportWriter.Build(user, sessions, progress)
	if err != nil {
		s.fail(c, err, "Failed to build report")
		return
	}
	defer report.Close()

	c.Header("Content-Disposition", "attachment; filename="+s.deps.ReportWriter.Filename(user))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := report.Write(c.Writer); err != nil {
		s.log.Error("Failed to stream report: %v", err)
	}
}
