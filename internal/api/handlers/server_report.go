package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"irms.fjp.io/irms/internal/pkg/logger"
	"irms.fjp.io/irms/internal/service"

	apperrors "irms.fjp.io/irms/internal/pkg/errors"
)

// exportFormats lists the formats the export endpoint accepts.
var exportFormats = map[string]struct{}{
	"xlsx": {},
	"csv":  {},
	"pdf":  {},
}

// exportReportTypes lists the report types that can be exported.
var exportReportTypes = map[string]struct{}{
	"overview":   {},
	"department": {},
	"skills":     {},
	"trends":     {},
}

// GetOverviewReport handles GET /reports/overview.
func (s *Server) GetOverviewReport(c *gin.Context) {
	stats, err := s.reports.Overview(c.Request.Context())
	if err != nil {
		logger.Error("failed to build overview report", zap.Error(err))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusOK, stats)
}

// GetDepartmentReport handles GET /reports/department.
func (s *Server) GetDepartmentReport(c *gin.Context) {
	stats, err := s.reports.ByDepartment(c.Request.Context())
	if err != nil {
		logger.Error("failed to build department report", zap.Error(err))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusOK, stats)
}

// GetSkillsReport handles GET /reports/skills.
func (s *Server) GetSkillsReport(c *gin.Context) {
	stats, err := s.reports.TopSkills(c.Request.Context())
	if err != nil {
		logger.Error("failed to build skills report", zap.Error(err))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusOK, stats)
}

// GetTrendsReport handles GET /reports/trends.
func (s *Server) GetTrendsReport(c *gin.Context) {
	stats, err := s.reports.Trends(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("failed to build trends report", zap.Error(err))
		_ = c.Error(err)
		return
	}
	respondItem(c, http.StatusOK, stats)
}

type exportRequest struct {
	ReportType string `json:"reportType"`
	Format     string `json:"format"`
}

// ExportReport handles POST /reports/export. Generation is asynchronous
// on the client side; the endpoint records the export and returns a
// download location.
func (s *Server) ExportReport(c *gin.Context) {
	ctx := c.Request.Context()
	actor := actorFromCtx(c)

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Invalid request body"))
		return
	}
	if _, ok := exportReportTypes[req.ReportType]; !ok {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Unknown report type"))
		return
	}
	if _, ok := exportFormats[req.Format]; !ok {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequest, "Unknown export format"))
		return
	}

	if s.history != nil {
		_ = s.history.RecordExport(ctx, actor,
			service.ExportSummary(req.ReportType, req.Format),
			map[string]interface{}{
				"reportType": req.ReportType,
				"format":     req.Format,
			})
	}

	downloadURL := fmt.Sprintf("/exports/report-%d.%s", time.Now().UnixMilli(), req.Format)
	respondItem(c, http.StatusOK, gin.H{
		"reportType":  req.ReportType,
		"format":      req.Format,
		"downloadUrl": downloadURL,
	})
}
