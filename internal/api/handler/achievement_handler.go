package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/service"
	"github.com/seojacky/account-teacher/pkg/response"
)

// AchievementHandler serves the per-user achievement record.
type AchievementHandler struct {
	achSvc service.AchievementService
}

// NewAchievementHandler creates an AchievementHandler.
func NewAchievementHandler(achSvc service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achSvc: achSvc}
}

// Get returns the record of a user.
// GET /api/v1/achievements/:user_id
func (h *AchievementHandler) Get(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	result, err := h.achSvc.Get(c.Request.Context(), p, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}

// Upsert replaces the record of a user.
// PUT /api/v1/achievements/:user_id
func (h *AchievementHandler) Upsert(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	var req dto.UpsertAchievementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, codeTooLarge, "Розмір запиту перевищує допустимий")
			return
		}
		response.BadRequest(c, codeValidation, "Невірний формат запиту")
		return
	}
	slots, err := req.Slots()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	result, err := h.achSvc.Upsert(auditContext(c), p, userID, slots)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}

// Export downloads the record as CSV.
// GET /api/v1/achievements/:user_id/export?encoding=utf8bom&include_empty=false
func (h *AchievementHandler) Export(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeValidation, "Невірні параметри експорту")
		return
	}

	file, err := h.achSvc.ExportCSV(c.Request.Context(), p, userID, service.ExportOptions{
		Encoding:     req.Encoding,
		IncludeEmpty: req.IncludeEmpty,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Attachment(c, file.ContentType, file.Filename, file.Body)
}

// Import replaces the record from an uploaded CSV file.
// POST /api/v1/achievements/:user_id/import (multipart, field "file")
func (h *AchievementHandler) Import(c *gin.Context) {
	p, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, codeTooLarge, "Файл завеликий")
			return
		}
		response.BadRequest(c, codeValidation, "Файл не завантажено")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, codeValidation, "Не вдалося прочитати файл")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, codeValidation, "Не вдалося прочитати файл")
		return
	}

	result, err := h.achSvc.ImportCSV(auditContext(c), p, userID, data)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}
