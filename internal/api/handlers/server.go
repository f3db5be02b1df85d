// Package handlers implements the HTTP API for FJP IRMS.
//
// Handlers push domain failures through c.Error so the error middleware
// renders the uniform response envelope.
package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"irms.fjp.io/irms/ent"
	"irms.fjp.io/irms/internal/api/middleware"
	"irms.fjp.io/irms/internal/history"
	"irms.fjp.io/irms/internal/service"
	"irms.fjp.io/irms/internal/storage"
)

// Server implements all API handlers.
type Server struct {
	client  *ent.Client
	jwtCfg  middleware.JWTConfig
	history *history.Recorder
	reports *service.ReportService
	cvs     *storage.CVStore
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient *ent.Client
	JWTCfg    middleware.JWTConfig
	History   *history.Recorder
	Reports   *service.ReportService
	CVs       *storage.CVStore
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:  deps.EntClient,
		jwtCfg:  deps.JWTCfg,
		history: deps.History,
		reports: deps.Reports,
		cvs:     deps.CVs,
	}
}

// actorFromCtx extracts the authenticated user ID from the request context.
func actorFromCtx(c *gin.Context) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}

const passwordHashCost = 12

// HashPassword hashes a password using bcrypt (also used by the seed command).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateUserID creates a new user ID.
func GenerateUserID() string {
	id, _ := uuid.NewV7()
	return id.String()
}

// GenerateResourceID creates a new resource ID.
func GenerateResourceID() string {
	id, _ := uuid.NewV7()
	return fmt.Sprintf("res-%s", id.String())
}
