package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/service"
	"github.com/seojacky/account-teacher/pkg/response"
)

// ReportHandler serves multi-user listings, statistics and bulk exports.
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// ListUsers pages the users visible to the caller.
// GET /api/v1/reports/users?page=1&page_size=50&faculty_id=&department_id=
func (h *ReportHandler) ListUsers(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeValidation, "Невірні параметри запиту")
		return
	}

	page, err := h.reportSvc.ListUsers(c.Request.Context(), p, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, page)
}

// Statistics returns aggregate counts.
// GET /api/v1/reports/statistics
func (h *ReportHandler) Statistics(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	stats, err := h.reportSvc.Statistics(c.Request.Context(), p)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, stats)
}

// Export downloads all visible records as CSV or XLSX.
// GET /api/v1/reports/export?format=csv&encoding=utf8&faculty_id=&department_id=
func (h *ReportHandler) Export(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.ReportExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeValidation, "Невірні параметри експорту")
		return
	}

	file, err := h.reportSvc.ExportAll(c.Request.Context(), p, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Attachment(c, file.ContentType, file.Filename, file.Body)
}
