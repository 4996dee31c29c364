package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type startInterviewRequest struct {
	Level string `json:"level"`
}

type interviewMessageRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleStartInterview(c *gin.Context) {
	var req startInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid interview data"})
		return
	}

	iv, err := s.deps.Interviews.Start(c.Request.Context(), req.Level)
	if err != nil {
		s.fail(c, err, "Failed to start interview")
		return
	}
	c.JSON(http.StatusCreated, iv)
}

func (s *Server) handleGetInterview(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	iv, err := s.deps.Interviews.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, "Failed to fetch interview")
		return
	}
	c.JSON(http.StatusOK, iv)
}

func (s *Server) handleInterviewMessage(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	var req interviewMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message data"})
		return
	}

	result, err := s.deps.Interviews.Answer(c.Request.Context(), id, req.Content)
	if err != nil {
		s.fail(c, err, "Failed to record answer")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleCompleteInterview(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	iv, err := s.deps.Interviews.Complete(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, "Failed to complete interview")
		return
	}
	c.JSON(http.StatusOK, iv)
}
