package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/pkg/response"
)

// BodyLimit caps the request body at maxBytes.
// Declared oversize bodies are rejected up front; chunked bodies fail on read inside the handler.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Розмір запиту перевищує допустимий")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
