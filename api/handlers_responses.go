package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillprep/models"
)

func (s *Server) handleCreateResponse(c *gin.Context) {
	var in models.InsertQuestionResponse
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid response data"})
		return
	}

	if errs := in.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid response data", "errors": errs})
		return
	}

	response, err := s.deps.ResponseRepo.CreateResponse(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err, "Failed to submit response")
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (s *Server) handleUpdateResponse(c *gin.Context) {
	id, ok := pathInt(c, "id")
	if !ok {
		return
	}

	var patch models.ResponsePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid response data"})
		return
	}

	response, err := s.deps.ResponseRepo.UpdateResponse(c.Request.Context(), id, patch)
	if err != nil {
		s.fail(c, err, "Failed to update response")
		return
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) handleSessionResponses(c *gin.Context) {
	sessionID, ok := pathInt(c, "id")
	if !ok {
		return
	}

	responses, err := s.deps.ResponseRepo.ListSessionResponses(c.Request.Context(), sessionID)
	if err != nil {
		s.fail(c, err, "Failed to fetch session responses")
		return
	}
	if responses == nil {
		responses = []models.QuestionResponse{}
	}
	c.JSON(http.StatusOK, responses)
}
