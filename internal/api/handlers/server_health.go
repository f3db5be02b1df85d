package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness handles GET /health/live.
func (s *Server) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /health/ready. Ready means the database answers.
func (s *Server) Readiness(c *gin.Context) {
	if _, err := s.client.User.Query().Limit(1).Count(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
