package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/service"
	"github.com/seojacky/account-teacher/pkg/response"
)

// DirectoryHandler lists faculties and departments.
type DirectoryHandler struct {
	dirSvc service.DirectoryService
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(dirSvc service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{dirSvc: dirSvc}
}

// ListFaculties GET /api/v1/directory/faculties
func (h *DirectoryHandler) ListFaculties(c *gin.Context) {
	list, err := h.dirSvc.ListFaculties(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, list)
}

// ListDepartments GET /api/v1/directory/departments?faculty_id=
func (h *DirectoryHandler) ListDepartments(c *gin.Context) {
	var req dto.DepartmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeValidation, "Невірний ідентифікатор факультету")
		return
	}
	list, err := h.dirSvc.ListDepartments(c.Request.Context(), req.FacultyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, list)
}
