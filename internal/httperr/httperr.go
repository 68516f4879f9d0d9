package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteDomain maps a DomainError onto the HTTP surface. Unknown errors
// become opaque 500s; domain messages pass through untouched.
func WriteDomain(c *gin.Context, err error) {
	var de DomainError
	if !errors.As(err, &de) {
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch de.Kind {
	case KindNotFound:
		Write(c, http.StatusNotFound, "not_found", de.Message)
	case KindBusinessRule:
		Write(c, http.StatusUnprocessableEntity, "business_rule_violation", de.Message)
	case KindSchedulingConflict:
		Write(c, http.StatusConflict, "scheduling_conflict", de.Message)
	case KindAccessDenied:
		Write(c, http.StatusForbidden, "access_denied", de.Message)
	case KindLockContention:
		Write(c, http.StatusLocked, "lock_contention", de.Message)
	default:
		Internal(c, "internal_error", "Unexpected error.")
	}
}
