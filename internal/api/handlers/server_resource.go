package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"

	"irms.fjp.io/irms/ent"
	"irms.fjp.io/irms/ent/historyentry"
	"irms.fjp.io/irms/ent/predicate"
	"irms.fjp.io/irms/ent/resource"
	"irms.fjp.io/irms/internal/pkg/logger"
	"irms.fjp.io/irms/internal/service"
	"irms.fjp.io/irms/internal/storage"

	apperrors "irms.fjp.io/irms/internal/pkg/errors"
)

type resourceCreateRequest struct {
	EmployeeCode string    `json:"employeeCode"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Department   string    `json:"department"`
	JobTitle     string    `json:"jobTitle"`
	Skills       []string  `json:"skills"`
	Experience   string    `json:"experience"`
	Rate         float64   `json:"rate"`
	Status       string    `json:"status"`
	IdleFrom     time.Time `json:"idleFrom"`
	Notes        string    `json:"notes"`
}

type resourceUpdateRequest struct {
	Name       *string    `json:"name"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	Department *string    `json:"department"`
	JobTitle   *string    `json:"jobTitle"`
	Skills     *[]string  `json:"skills"`
	Experience *string    `json:"experience"`
	Rate       *float64   `json:"rate"`
	Status     *string    `json:"status"`
	IdleFrom   *time.Time `json:"idleFrom"`
	Notes      *string    `json:"notes"`
}

// ListResources handles GET /resources.
func (s *Server) ListResources(c *gin.Context) {
	ctx := c.Request.Context()

	query := s.client.Resource.Query()

	if search := c.Query("search"); search != "" {
		query = query.Where(resource.Or(
			resource.EmployeeCodeContainsFold(search),
			resource.NameContainsFold(search),
			resource.EmailContainsFold(search),
		))
	}
	if dept := c.Query("department"); dept != "" {
		if err := resource.DepartmentValidator(resource.Department(dept)); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Unknown department"))
			return
		}
		query = query.Where(resource.DepartmentEQ(resource.Department(dept)))
	}
	if status := c.Query("status"); status != "" {
		if err := resource.StatusValidator(resource.Status(status)); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Unknown status"))
			return
		}
		query = query.Where(resource.StatusEQ(resource.Status(status)))
	}
	if skills := c.QueryArray("skill"); len(skills) > 0 {
		query = query.Where(resource.Or(skillPredicates(skills)...))
	}
	if urgent := c.Query("urgent"); urgent != "" {
		query = query.Where(resource.IsUrgent(urgent == "true"))
	}

	page, perPage, offset := parsePagination(c, 10)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count resources", zap.Error(err))
		_ = c.Error(err)
		return
	}

	rows, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(resource.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list resources", zap.Error(err), zap.Int("page", page))
		_ = c.Error(err)
		return
	}

	items := make([]APIResource, 0, len(rows))
	for _, r := range rows {
		items = append(items, resourceToAPI(r))
	}
	respondList(c, items, total, page, perPage)
}

// skillPredicates matches resources whose skill set contains any of the
// given skills.
func skillPredicates(skills []string) []predicate.Resource {
	preds := make([]predicate.Resource, 0, len(skills))
	for _, skill := range skills {
		skill := skill
		preds = append(preds, predicate.Resource(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(resource.FieldSkills, skill))
		}))
	}
	return preds
}

// GetResource handles GET /resources/:id.
func (s *Server) GetResource(c *gin.Context) {
	r, err := s.client.Resource.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.ErrResourceNotFound())
			return
		}
		logger.Error("failed to get resource", zap.Error(err), zap.String("resource_id", c.Param("id")))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusOK, resourceToAPI(r))
}

// CreateResource handles POST /resources.
func (s *Server) CreateResource(c *gin.Context) {
	ctx := c.Request.Context()
	actor := actorFromCtx(c)

	var req resourceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Invalid request body"))
		return
	}

	in := service.ResourceInput{
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		JobTitle:     req.JobTitle,
		Skills:       req.Skills,
		Experience:   req.Experience,
		Rate:         req.Rate,
		Status:       req.Status,
		IdleFrom:     req.IdleFrom,
		Notes:        req.Notes,
	}
	if fieldErrs := in.Validate(); len(fieldErrs) > 0 {
		_ = c.Error(apperrors.ErrValidationFailed(fieldErrs))
		return
	}

	months, urgent := service.DeriveIdle(in.IdleFrom, time.Now())

	create := s.client.Resource.Create().
		SetID(GenerateResourceID()).
		SetEmployeeCode(in.EmployeeCode).
		SetName(in.Name).
		SetEmail(in.Email).
		SetDepartment(resource.Department(in.Department)).
		SetJobTitle(in.JobTitle).
		SetSkills(in.Skills).
		SetExperience(in.Experience).
		SetRate(in.Rate).
		SetIdleFrom(in.IdleFrom).
		SetIdleDuration(months).
		SetIsUrgent(urgent).
		SetCreatedBy(actor)
	if in.Phone != "" {
		create = create.SetPhone(in.Phone)
	}
	if in.Status != "" {
		create = create.SetStatus(resource.Status(in.Status))
	}
	if in.Notes != "" {
		create = create.SetNotes(in.Notes)
	}

	r, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			_ = c.Error(apperrors.ErrEmployeeCodeExists(in.EmployeeCode))
			return
		}
		logger.Error("failed to create resource", zap.Error(err), zap.String("employee_code", in.EmployeeCode))
		_ = c.Error(err)
		return
	}

	if s.history != nil {
		_ = s.history.RecordResourceAction(ctx, actor, historyentry.ActionCREATE,
			r.ID, r.Name, service.CreateSummary(r.Name, r.EmployeeCode))
	}

	respondItem(c, http.StatusCreated, resourceToAPI(r))
}

// UpdateResource handles PUT /resources/:id. The update is partial and
// idle fields are re-derived on every save.
func (s *Server) UpdateResource(c *gin.Context) {
	ctx := c.Request.Context()
	actor := actorFromCtx(c)

	var req resourceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Invalid request body"))
		return
	}

	patch := service.ResourcePatch{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		JobTitle:   req.JobTitle,
		Skills:     req.Skills,
		Experience: req.Experience,
		Rate:       req.Rate,
		Status:     req.Status,
		IdleFrom:   req.IdleFrom,
		Notes:      req.Notes,
	}
	if fieldErrs := patch.Validate(); len(fieldErrs) > 0 {
		_ = c.Error(apperrors.ErrValidationFailed(fieldErrs))
		return
	}

	existing, err := s.client.Resource.Get(ctx, c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.ErrResourceNotFound())
			return
		}
		logger.Error("failed to get resource for update", zap.Error(err), zap.String("resource_id", c.Param("id")))
		_ = c.Error(err)
		return
	}
	oldStatus := string(existing.Status)

	update := existing.Update().SetUpdatedBy(actor)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Email != nil {
		update = update.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		update = update.SetPhone(*req.Phone)
	}
	if req.Department != nil {
		update = update.SetDepartment(resource.Department(*req.Department))
	}
	if req.JobTitle != nil {
		update = update.SetJobTitle(*req.JobTitle)
	}
	if req.Skills != nil {
		update = update.SetSkills(*req.Skills)
	}
	if req.Experience != nil {
		update = update.SetExperience(*req.Experience)
	}
	if req.Rate != nil {
		update = update.SetRate(*req.Rate)
	}
	if req.Status != nil {
		update = update.SetStatus(resource.Status(*req.Status))
	}
	if req.Notes != nil {
		update = update.SetNotes(*req.Notes)
	}

	idleFrom := existing.IdleFrom
	if req.IdleFrom != nil {
		idleFrom = *req.IdleFrom
		update = update.SetIdleFrom(idleFrom)
	}
	months, urgent := service.DeriveIdle(idleFrom, time.Now())
	update = update.SetIdleDuration(months).SetIsUrgent(urgent)

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			_ = c.Error(apperrors.ErrEmployeeCodeExists(existing.EmployeeCode))
			return
		}
		logger.Error("failed to update resource", zap.Error(err), zap.String("resource_id", existing.ID))
		_ = c.Error(err)
		return
	}

	if s.history != nil {
		_ = s.history.RecordResourceAction(ctx, actor, historyentry.ActionUPDATE,
			updated.ID, updated.Name, service.UpdateSummary(oldStatus, string(updated.Status)))
	}

	respondItem(c, http.StatusOK, resourceToAPI(updated))
}

// DeleteResource handles DELETE /resources/:id. The delete is hard; the
// history entry keeps the resource id and name as a snapshot.
func (s *Server) DeleteResource(c *gin.Context) {
	ctx := c.Request.Context()
	actor := actorFromCtx(c)

	r, err := s.client.Resource.Get(ctx, c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.ErrResourceNotFound())
			return
		}
		logger.Error("failed to get resource for delete", zap.Error(err), zap.String("resource_id", c.Param("id")))
		_ = c.Error(err)
		return
	}

	if err := s.client.Resource.DeleteOne(r).Exec(ctx); err != nil {
		logger.Error("failed to delete resource", zap.Error(err), zap.String("resource_id", r.ID))
		_ = c.Error(err)
		return
	}

	if r.CvPath != "" && s.cvs != nil {
		if err := s.cvs.Remove(r.CvPath); err != nil {
			logger.Warn("failed to remove CV file", zap.Error(err), zap.String("resource_id", r.ID))
		}
	}

	if s.history != nil {
		_ = s.history.RecordResourceAction(ctx, actor, historyentry.ActionDELETE,
			r.ID, r.Name, service.DeleteSummary(r.Name, r.EmployeeCode))
	}

	respondMessage(c, http.StatusOK, "Resource deleted")
}

// UploadCV handles POST /resources/:id/cv.
func (s *Server) UploadCV(c *gin.Context) {
	ctx := c.Request.Context()
	actor := actorFromCtx(c)

	r, err := s.client.Resource.Get(ctx, c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.ErrResourceNotFound())
			return
		}
		logger.Error("failed to get resource for cv upload", zap.Error(err), zap.String("resource_id", c.Param("id")))
		_ = c.Error(err)
		return
	}

	fileHeader, err := c.FormFile("cv")
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Missing cv file"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Unreadable cv file"))
		return
	}
	defer f.Close()

	refPath, err := s.cvs.Save(r.ID, fileHeader.Filename, fileHeader.Size, f)
	if err != nil {
		switch err {
		case storage.ErrUnsupportedType, storage.ErrTooLarge:
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, err.Error()))
		default:
			logger.Error("failed to store cv", zap.Error(err), zap.String("resource_id", r.ID))
			_ = c.Error(err)
		}
		return
	}

	oldPath := r.CvPath
	updated, err := r.Update().SetCvPath(refPath).SetUpdatedBy(actor).Save(ctx)
	if err != nil {
		logger.Error("failed to save cv path", zap.Error(err), zap.String("resource_id", r.ID))
		_ = c.Error(err)
		return
	}
	if oldPath != "" && oldPath != refPath {
		if err := s.cvs.Remove(oldPath); err != nil {
			logger.Warn("failed to remove replaced CV file", zap.Error(err), zap.String("resource_id", r.ID))
		}
	}

	if s.history != nil {
		_ = s.history.RecordResourceAction(ctx, actor, historyentry.ActionCV_UPLOAD,
			updated.ID, updated.Name, service.CVUploadSummary(updated.Name))
	}

	respondItem(c, http.StatusOK, resourceToAPI(updated))
}
