// Package api binds the core services to an HTTP surface. Handlers stay
// thin: all domain rules live in the service layer.
package api

import (
	"chat-core/auth"
	cerrors "chat-core/errors"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain's request-rejection errors onto HTTP codes.
// Anything unexpected is a 500; rejection errors surface verbatim.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, auth.ErrMissingIdentity):
		status = http.StatusUnauthorized
	case errors.Is(err, cerrors.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, cerrors.ErrConversationNotFound),
		errors.Is(err, cerrors.ErrMessageNotFound):
		status = http.StatusNotFound
	case errors.Is(err, cerrors.ErrInvalidParticipants),
		errors.Is(err, cerrors.ErrInvalidDirectMessage):
		status = http.StatusBadRequest
	case errors.Is(err, cerrors.ErrMessageImmutable),
		errors.Is(err, cerrors.ErrStaleReadPosition):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
