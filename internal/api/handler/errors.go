package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seojacky/account-teacher/internal/service"
	apperrors "github.com/seojacky/account-teacher/pkg/errors"
	"github.com/seojacky/account-teacher/pkg/response"
)

// Error codes of the response envelope.
const (
	codeValidation      = 10001
	codeUnauthenticated = 10002
	codeForbidden       = 10003
	codeTooLarge        = 10005
	codeBadCredentials  = 11001
	codeNotFound        = 12001
	codeStoreDown       = 50001
)

// handleServiceError translates an error kind into the HTTP reply.
func handleServiceError(c *gin.Context, err error) {
	reason := apperrors.ReasonOf(err)

	switch apperrors.KindOf(err) {
	case apperrors.ErrValidation:
		response.BadRequest(c, codeValidation, reason)
	case apperrors.ErrForbidden:
		response.Forbidden(c, codeForbidden, reason)
	case apperrors.ErrNotFound:
		response.NotFound(c, codeNotFound, reason)
	case apperrors.ErrStoreUnavailable:
		_ = c.Error(err)
		response.ServiceUnavailable(c, codeStoreDown, reason)
	default:
		if errors.Is(err, service.ErrUnauthenticated) {
			response.Unauthorized(c, codeBadCredentials, reason)
			return
		}
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// isBodyTooLarge reports whether reading the request body hit BodyLimit.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
