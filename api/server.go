// Package api exposes the storage layer, question bank and interview
// engine as a JSON REST surface.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skillprep/internal"
	"skillprep/internal/container"
	apperrors "skillprep/internal/errors"
)

// Server is the JSON API server.
type Server struct {
	router *gin.Engine
	deps   *container.Container
	log    *internal.Logger
}

// NewServer creates the API server and registers all routes.
func NewServer(deps *container.Container) *Server {
	gin.SetMode(deps.Config.Server.GinMode)

	s := &Server{
		router: gin.New(),
		deps:   deps,
		log:    internal.DefaultLogger,
	}

	s.router.Use(gin.Recovery())
	s.router.Use(s.requestID())
	s.router.Use(s.requestLog())

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	api.GET("/user", s.handleCurrentUser)

	api.GET("/questions", s.handleListQuestions)
	api.GET("/questions/random", s.handleRandomQuestions)
	api.GET("/questions/:id", s.handleGetQuestion)

	api.POST("/sessions", s.handleCreateSession)
	api.GET("/sessions/:id", s.handleGetSession)
	api.PATCH("/sessions/:id", s.handleUpdateSession)
	api.GET("/sessions/:id/responses", s.handleSessionResponses)

	api.POST("/responses", s.handleCreateResponse)
	api.PATCH("/responses/:id", s.handleUpdateResponse)

	api.GET("/users/:userId/sessions/active", s.handleActiveSessions)
	api.GET("/users/:userId/progress", s.handleListProgress)
	api.PATCH("/users/:userId/progress", s.handleUpdateProgress)
	api.GET("/users/:userId/stats", s.handleUserStats)
	api.GET("/users/:userId/report", s.handleUserReport)

	api.POST("/interviews", s.handleStartInterview)
	api.GET("/interviews/:id", s.handleGetInterview)
	api.POST("/interviews/:id/messages", s.handleInterviewMessage)
	api.POST("/interviews/:id/complete", s.handleCompleteInterview)
}

// Start runs the server on the given address, blocking until it stops.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestID tags every request with a correlation id.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// requestLog logs one line per request with status and latency.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("%s %s -> %d (%s) rid=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.GetString("requestID"),
		)
	}
}

// pathInt parses a numeric path parameter. Non-numeric ids are invalid
// input, not a missing resource.
func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return v, true
}

// fail maps an application error onto the HTTP taxonomy: not-found to
// 404, invalid input and conflicts to 400, everything else to a generic
// 500.
func (s *Server) fail(c *gin.Context, err error, fallback string) {
	if apperrors.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	switch apperrors.GetCode(err) {
	case apperrors.CodeInvalidInput, apperrors.CodeValidationError, apperrors.CodeConflict:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		s.log.Error("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
