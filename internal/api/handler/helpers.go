package handler

import (
	"errors"
	"net/http"

	"gigflow/backend/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// mapError translates domain errors into an HTTP status and client message.
// Every handler funnels its failures through here so the taxonomy stays in
// one place.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrBadID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrTokenMissing),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrBadLogin):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, apperrors.ErrNotOwner),
		errors.Is(err, apperrors.ErrOwnBidDenied):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, apperrors.ErrGigNotFound),
		errors.Is(err, apperrors.ErrBidNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrGigAssigned),
		errors.Is(err, apperrors.ErrDuplicateBid),
		errors.Is(err, apperrors.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// abortWithError writes the mapped error response and stops the handler.
func abortWithError(c *gin.Context, err error) {
	status, message := mapError(err)
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

// validID reports whether the path or body parameter is a well-formed
// entity id. Malformed ids are rejected before any store access.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
