package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/service"
	"github.com/seojacky/account-teacher/pkg/response"
)

// AuthHandler serves login, logout and the current profile.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login authenticates by employee id and password.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeValidation, "Вкажіть табельний номер і пароль")
		return
	}

	result, err := h.authSvc.Login(auditContext(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}

// Logout revokes the current access token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	jti, expiresAt := tokenInfo(c)

	if err := h.authSvc.Logout(auditContext(c), userID, jti, expiresAt); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}

// Me returns the caller's profile.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	me, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, me)
}
