package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"irms.fjp.io/irms/ent"
	"irms.fjp.io/irms/ent/historyentry"
	entuser "irms.fjp.io/irms/ent/user"
	"irms.fjp.io/irms/internal/api/middleware"
	"irms.fjp.io/irms/internal/pkg/logger"

	apperrors "irms.fjp.io/irms/internal/pkg/errors"
)

const minPasswordLength = 6

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Username and password are required"))
		return
	}

	user, err := s.client.User.Query().
		Where(entuser.UsernameEQ(strings.TrimSpace(req.Username))).
		Where(entuser.StatusEQ(entuser.StatusActive)).
		Only(ctx)
	if err != nil {
		logger.Warn("login failed: invalid credentials")
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "Invalid username or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("login failed: invalid credentials")
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "Invalid username or password"))
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, user.ID, user.Username, string(user.Role))
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		_ = c.Error(err)
		return
	}

	if err := s.client.User.UpdateOneID(user.ID).SetLastLoginAt(time.Now()).Exec(ctx); err != nil {
		logger.Warn("failed to update last_login_at", zap.Error(err), zap.String("user_id", user.ID))
	}

	if s.history != nil {
		_ = s.history.RecordAuth(ctx, user.ID, historyentry.ActionLOGIN)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     token,
		"expiresAt": expiresAt,
		"user":      userToAPI(user),
	})
}

// Logout handles POST /auth/logout. Tokens are stateless; the endpoint
// exists to record the action.
func (s *Server) Logout(c *gin.Context) {
	actor := actorFromCtx(c)
	if s.history != nil {
		_ = s.history.RecordAuth(c.Request.Context(), actor, historyentry.ActionLOGOUT)
	}
	respondMessage(c, http.StatusOK, "Logged out")
}

// GetCurrentUser handles GET /auth/me.
func (s *Server) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeUnauthorized, "Not authenticated"))
		return
	}

	user, err := s.client.User.Get(c.Request.Context(), userID)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeUserNotFound, "User not found"))
			return
		}
		logger.Error("failed to load current user", zap.Error(err), zap.String("user_id", userID))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusOK, userToAPI(user))
}

// UpdatePassword handles PUT /auth/password.
func (s *Server) UpdatePassword(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeUnauthorized, "Not authenticated"))
		return
	}

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Current and new passwords are required"))
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		_ = c.Error(apperrors.ErrValidationFailed([]apperrors.FieldError{{
			Field:   "newPassword",
			Code:    "TOO_SHORT",
			Message: "Password must be at least 6 characters",
		}}))
		return
	}

	user, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeUserNotFound, "User not found"))
			return
		}
		logger.Error("failed to load user for password change", zap.Error(err), zap.String("user_id", userID))
		_ = c.Error(err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "Current password is incorrect"))
		return
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		logger.Error("failed to hash new password", zap.Error(err), zap.String("user_id", userID))
		_ = c.Error(err)
		return
	}

	if err := s.client.User.UpdateOneID(userID).SetPasswordHash(hash).Exec(ctx); err != nil {
		logger.Error("failed to update password", zap.Error(err), zap.String("user_id", userID))
		_ = c.Error(err)
		return
	}
	respondMessage(c, http.StatusOK, "Password updated")
}
