package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/internal/access"
	"github.com/seojacky/account-teacher/internal/api/middleware"
	"github.com/seojacky/account-teacher/internal/service"
	"github.com/seojacky/account-teacher/pkg/response"
)

// MustGetPrincipal rebuilds the caller's principal from the values JWTAuth injected.
// When they are missing it writes a 401 and returns false; the caller should return.
func MustGetPrincipal(c *gin.Context) (access.Principal, bool) {
	id, ok := MustGetUserID(c)
	if !ok {
		return access.Principal{}, false
	}
	role, _ := c.Get(middleware.CtxRole)
	roleName, ok := role.(string)
	if !ok || roleName == "" {
		response.Unauthorized(c, codeUnauthenticated, "Не автентифіковано")
		return access.Principal{}, false
	}
	return access.Principal{
		ID:           id,
		Role:         access.Role(roleName),
		FacultyID:    optionalID(c, middleware.CtxFacultyID),
		DepartmentID: optionalID(c, middleware.CtxDepartmentID),
	}, true
}

// MustGetUserID extracts the authenticated user id.
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, codeUnauthenticated, "Не автентифіковано")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		response.Unauthorized(c, codeUnauthenticated, "Не автентифіковано")
		return 0, false
	}
	return id, true
}

func optionalID(c *gin.Context, key string) *int64 {
	v, ok := c.Get(key)
	if !ok {
		return nil
	}
	id, _ := v.(*int64)
	return id
}

// tokenInfo returns the jti and expiry of the current access token.
func tokenInfo(c *gin.Context) (string, time.Time) {
	jti := c.GetString(middleware.CtxTokenJTI)
	exp, _ := c.Get(middleware.CtxTokenExp)
	expiresAt, _ := exp.(time.Time)
	return jti, expiresAt
}

// parseUserIDParam reads the :user_id path parameter, writing a 400 on failure.
func parseUserIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, codeValidation, "Невірний ідентифікатор користувача")
		return 0, false
	}
	return id, true
}

// auditContext is the request context carrying the caller address for audit entries.
func auditContext(c *gin.Context) context.Context {
	return service.WithClientInfo(c.Request.Context(), c.ClientIP(), c.Request.UserAgent())
}
