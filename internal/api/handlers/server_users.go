package handlers

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"irms.fjp.io/irms/ent"
	entuser "irms.fjp.io/irms/ent/user"
	"irms.fjp.io/irms/internal/pkg/logger"

	apperrors "irms.fjp.io/irms/internal/pkg/errors"
)

const minUsernameLength = 3

type userCreateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userUpdateRequest struct {
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

func validateUserCreate(req userCreateRequest) []apperrors.FieldError {
	var errs []apperrors.FieldError

	if len(strings.TrimSpace(req.Username)) < minUsernameLength {
		errs = append(errs, apperrors.FieldError{
			Field:   "username",
			Code:    "TOO_SHORT",
			Message: "Username must be at least 3 characters",
		})
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		errs = append(errs, apperrors.FieldError{
			Field:   "email",
			Code:    "INVALID_VALUE",
			Message: "Email address is invalid",
		})
	}
	if len(req.Password) < minPasswordLength {
		errs = append(errs, apperrors.FieldError{
			Field:   "password",
			Code:    "TOO_SHORT",
			Message: "Password must be at least 6 characters",
		})
	}
	if req.Role != "" {
		if err := entuser.RoleValidator(entuser.Role(req.Role)); err != nil {
			errs = append(errs, apperrors.FieldError{
				Field:   "role",
				Code:    "INVALID_VALUE",
				Message: "Role must be one of Admin, RA, Manager, Viewer",
			})
		}
	}
	return errs
}

// ListUsers handles GET /users.
func (s *Server) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	query := s.client.User.Query()

	if role := c.Query("role"); role != "" {
		if err := entuser.RoleValidator(entuser.Role(role)); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Unknown role"))
			return
		}
		query = query.Where(entuser.RoleEQ(entuser.Role(role)))
	}
	if status := c.Query("status"); status != "" {
		if err := entuser.StatusValidator(entuser.Status(status)); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Unknown status"))
			return
		}
		query = query.Where(entuser.StatusEQ(entuser.Status(status)))
	}

	page, perPage, offset := parsePagination(c, 10)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count users", zap.Error(err))
		_ = c.Error(err)
		return
	}

	rows, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(entuser.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list users", zap.Error(err), zap.Int("page", page))
		_ = c.Error(err)
		return
	}

	items := make([]APIUser, 0, len(rows))
	for _, u := range rows {
		items = append(items, userToAPI(u))
	}
	respondList(c, items, total, page, perPage)
}

// GetUser handles GET /users/:id.
func (s *Server) GetUser(c *gin.Context) {
	u, err := s.client.User.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeUserNotFound, "User not found"))
			return
		}
		logger.Error("failed to get user", zap.Error(err), zap.String("user_id", c.Param("id")))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusOK, userToAPI(u))
}

// CreateUser handles POST /users.
func (s *Server) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req userCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Invalid request body"))
		return
	}
	if fieldErrs := validateUserCreate(req); len(fieldErrs) > 0 {
		_ = c.Error(apperrors.ErrValidationFailed(fieldErrs))
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		logger.Error("failed to hash user password", zap.Error(err), zap.String("username", req.Username))
		_ = c.Error(err)
		return
	}

	create := s.client.User.Create().
		SetID(GenerateUserID()).
		SetUsername(strings.TrimSpace(req.Username)).
		SetEmail(strings.TrimSpace(req.Email)).
		SetPasswordHash(hash)
	if req.Role != "" {
		create = create.SetRole(entuser.Role(req.Role))
	}

	u, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			_ = c.Error(apperrors.Conflict(apperrors.CodeUsernameEmailExists, "Username or email already in use"))
			return
		}
		logger.Error("failed to create user", zap.Error(err), zap.String("username", req.Username))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusCreated, userToAPI(u))
}

// UpdateUser handles PUT /users/:id.
func (s *Server) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Invalid request body"))
		return
	}

	existing, err := s.client.User.Get(ctx, c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeUserNotFound, "User not found"))
			return
		}
		logger.Error("failed to get user for update", zap.Error(err), zap.String("user_id", c.Param("id")))
		_ = c.Error(err)
		return
	}

	update := existing.Update()
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			_ = c.Error(apperrors.ErrValidationFailed([]apperrors.FieldError{{
				Field:   "email",
				Code:    "INVALID_VALUE",
				Message: "Email address is invalid",
			}}))
			return
		}
		update = update.SetEmail(email)
	}
	if req.Role != nil {
		if err := entuser.RoleValidator(entuser.Role(*req.Role)); err != nil {
			_ = c.Error(apperrors.ErrValidationFailed([]apperrors.FieldError{{
				Field:   "role",
				Code:    "INVALID_VALUE",
				Message: "Role must be one of Admin, RA, Manager, Viewer",
			}}))
			return
		}
		update = update.SetRole(entuser.Role(*req.Role))
	}
	if req.Password != nil {
		if len(*req.Password) < minPasswordLength {
			_ = c.Error(apperrors.ErrValidationFailed([]apperrors.FieldError{{
				Field:   "password",
				Code:    "TOO_SHORT",
				Message: "Password must be at least 6 characters",
			}}))
			return
		}
		hash, err := HashPassword(*req.Password)
		if err != nil {
			logger.Error("failed to hash updated password", zap.Error(err), zap.String("user_id", existing.ID))
			_ = c.Error(err)
			return
		}
		update = update.SetPasswordHash(hash)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			_ = c.Error(apperrors.Conflict(apperrors.CodeUsernameEmailExists, "Username or email already in use"))
			return
		}
		logger.Error("failed to update user", zap.Error(err), zap.String("user_id", existing.ID))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusOK, userToAPI(updated))
}

// DeleteUser handles DELETE /users/:id. Accounts cannot delete themselves.
func (s *Server) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Param("id") == actorFromCtx(c) {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "You cannot delete your own account"))
		return
	}

	err := s.client.User.DeleteOneID(c.Param("id")).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeUserNotFound, "User not found"))
			return
		}
		logger.Error("failed to delete user", zap.Error(err), zap.String("user_id", c.Param("id")))
		_ = c.Error(err)
		return
	}
	respondMessage(c, http.StatusOK, "User deleted")
}

// ToggleUserStatus handles PUT /users/:id/toggle-status.
func (s *Server) ToggleUserStatus(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Param("id") == actorFromCtx(c) {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "You cannot deactivate your own account"))
		return
	}

	existing, err := s.client.User.Get(ctx, c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeUserNotFound, "User not found"))
			return
		}
		logger.Error("failed to get user for status toggle", zap.Error(err), zap.String("user_id", c.Param("id")))
		_ = c.Error(err)
		return
	}

	next := entuser.StatusActive
	if existing.Status == entuser.StatusActive {
		next = entuser.StatusInactive
	}

	updated, err := existing.Update().SetStatus(next).Save(ctx)
	if err != nil {
		logger.Error("failed to toggle user status", zap.Error(err), zap.String("user_id", existing.ID))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusOK, userToAPI(updated))
}
