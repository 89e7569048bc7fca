package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/pkg/jwt"
	"github.com/seojacky/account-teacher/pkg/redis"
	"github.com/seojacky/account-teacher/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxUserID       = "user_id"
	CtxRole         = "role"
	CtxFacultyID    = "faculty_id"
	CtxDepartmentID = "department_id"
	CtxTokenJTI     = "token_jti"
	CtxTokenExp     = "token_exp"
)

// JWTAuth verifies the Bearer access token and injects the principal into the context.
// Revoked tokens are rejected; with rdb == nil or Redis failing the revocation check is skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "Відсутній заголовок авторизації")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "Невірний формат заголовка авторизації")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Токен недійсний або прострочений")
			c.Abort()
			return
		}

		if rdb != nil && claims.ID != "" {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "Сесію завершено")
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxFacultyID, claims.FacultyID)
		c.Set(CtxDepartmentID, claims.DepartmentID)
		c.Set(CtxTokenJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(CtxTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RoleAuth allows the request only for the listed roles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(CtxRole)
		if !ok {
			response.Unauthorized(c, 10002, "Не автентифіковано")
			c.Abort()
			return
		}

		userRole, _ := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "Доступ заборонено")
		c.Abort()
	}
}
