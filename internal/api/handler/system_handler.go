package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/service"
	"github.com/seojacky/account-teacher/pkg/response"
)

// Pinger is a dependency checked by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the audit log and health probes.
type SystemHandler struct {
	sysSvc service.SystemService
	deps   map[string]Pinger
}

// NewSystemHandler creates a SystemHandler. deps are pinged by Ready.
func NewSystemHandler(sysSvc service.SystemService, deps map[string]Pinger) *SystemHandler {
	return &SystemHandler{sysSvc: sysSvc, deps: deps}
}

// AuditLogs GET /api/v1/system/logs?page=1&page_size=50
func (h *SystemHandler) AuditLogs(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeValidation, "Невірні параметри запиту")
		return
	}
	page, err := h.sysSvc.AuditLogs(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, page)
}

// Health GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready GET /health/ready
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.deps))
	status := http.StatusOK
	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not_ready"
	}
	c.JSON(status, gin.H{"status": state, "checks": checks})
}
