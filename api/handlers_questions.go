package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillprep/models"
)

const defaultRandomLimit = 20

// handleCurrentUser serves the seeded demo user. There is no session
// or auth layer; the current user is fixed.
func (s *Server) handleCurrentUser(c *gin.Context) {
	user, err := s.deps.UserRepo.GetUser(c.Request.Context(), s.deps.DefaultUserID)
	if err != nil {
		s.fail(c, err, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleListQuestions(c *gin.Context) {
	role := c.Query("role")
	category := c.Query("category")

	questions, err := s.deps.QuestionRepo.ListQuestions(c.Request.Context(), role, category)
	if err != nil {
		s.fail(c, err, "Failed to fetch questions")
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, questions)
}

func (s *Server) handleRandomQuestions(c *gin.Context) {
	role := c.Query("role")
	category := c.Query("category")
	if role == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role and category are required"})
		return
	}

	limit := defaultRandomLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid limit"})
			return
		}
		limit = parsed
	}

	questions, err := s.deps.QuestionRepo.RandomQuestions(c.Request.Context(), role, category, limit)
	if err != nil {
		s.fail(c, err, "Failed to fetch random questions")
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, questions)
}

func (s *Server) handleGetQuestion(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	question, err := s.deps.QuestionRepo.GetQuestion(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, "Failed to fetch question")
		return
	}
	c.JSON(http.StatusOK, question)
}
