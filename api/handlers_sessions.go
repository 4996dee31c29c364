package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillprep/models"
)

func (s *Server) handleCreateSession(c *gin.Context) {
	var in models.InsertPracticeSession
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid session data"})
		return
	}
	in.UserID = s.deps.DefaultUserID

	if errs := in.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid session data", "errors": errs})
		return
	}

	session, err := s.deps.SessionRepo.CreateSession(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err, "Failed to create practice session")
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *Server) handleGetSession(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	session, err := s.deps.SessionRepo.GetSession(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, "Failed to fetch session")
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleUpdateSession(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	var patch models.SessionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid session data"})
		return
	}

	session, err := s.deps.SessionRepo.UpdateSession(c.Request.Context(), id, patch)
	if err != nil {
		s.fail(c, err, "Failed to update session")
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleActiveSessions(c *gin.Context) {
	userID, ok := pathInt(c, "userId")
	if !ok {
		return
	}

	sessions, err := s.deps.SessionRepo.ListActiveSessions(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err, "Failed to fetch active sessions")
		return
	}
	if sessions == nil {
		sessions = []models.PracticeSession{}
	}
	c.JSON(http.StatusOK, sessions)
}
