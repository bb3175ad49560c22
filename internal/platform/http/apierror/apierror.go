// Package apierror maps domain errors to HTTP responses.
package apierror

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_backend/internal/platform/validation"
	"course_backend/internal/shared/domainerr"
)

// Response is the JSON body of every error response.
type Response struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageInternal is returned for any error without a domain kind.
const MessageInternal = "internal server error"

var statuses = map[error]int{
	domainerr.ErrValidation:         http.StatusBadRequest,
	domainerr.ErrInvalidCredentials: http.StatusBadRequest,
	domainerr.ErrInvalidTypeFile:    http.StatusBadRequest,
	domainerr.ErrUnauthorized:       http.StatusForbidden,
	domainerr.ErrResourceNotFound:   http.StatusNotFound,
	domainerr.ErrDuplicatedSlug:     http.StatusConflict,
	domainerr.ErrUserAlreadyExists:  http.StatusConflict,
}

// Status returns the HTTP status for err and the message safe to show the client.
// Validation errors keep their detail; other kinds expose only the kind.
func Status(err error) (int, string) {
	kind := domainerr.Kind(err)
	if kind == nil {
		return http.StatusInternalServerError, MessageInternal
	}
	status, ok := statuses[kind]
	if !ok {
		return http.StatusInternalServerError, MessageInternal
	}
	if kind == domainerr.ErrValidation {
		return status, err.Error()
	}
	return status, kind.Error()
}

// Write aborts the request with the response for err.
// Errors without a domain kind are logged and hidden behind a generic message.
func Write(c *gin.Context, err error) {
	status, msg := Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("unhandled error", "error", err, "method", c.Request.Method, "path", c.FullPath())
	} else {
		slog.Warn("request rejected", "error", err, "status", status, "remote_addr", c.ClientIP())
	}
	c.AbortWithStatusJSON(status, Response{Error: msg})
}

// BindError aborts with 400 for a payload that failed gin binding, listing the offending fields.
func BindError(c *gin.Context, err error) {
	slog.Warn("request validation failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Error:   "invalid request",
		Details: validation.ToDetails(err),
	})
}
