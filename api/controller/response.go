package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/domain"
)

// ErrorResponse writes the uniform error envelope.
func ErrorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"status":  "error",
		"code":    code,
		"message": message,
	})
}

// SuccessResponse writes the payload under key, attaching pagination metadata
// when the handler has any.
func SuccessResponse(c *gin.Context, status int, key string, data interface{}, pagination *domain.Pagination) {
	body := gin.H{
		"status": "success",
		key:      data,
	}
	if pagination != nil {
		body["pagination"] = pagination
	}
	c.JSON(status, body)
}

// DomainErrorResponse maps a usecase error onto its HTTP shape. Anything not
// carrying a known sentinel is reported as an internal error without leaking
// the underlying message.
func DomainErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	case errors.Is(err, domain.ErrForbidden):
		ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrConflict):
		ErrorResponse(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrUpstream):
		ErrorResponse(c, http.StatusBadGateway, "UPSTREAM_ERROR", "media storage is unavailable")
	default:
		ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong")
	}
}
