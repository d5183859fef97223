package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bluebus/internal/domain"
	"bluebus/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps wizard/domain errors to HTTP responses. All
// of them are recoverable at the caller; the session is unchanged.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsInvalidQuery(err):
		respondError(c, http.StatusBadRequest, "invalid_query", err.Error())
	case domain.IsUnknownSeat(err):
		respondError(c, http.StatusBadRequest, "unknown_seat", err.Error())
	case errors.Is(err, domain.ErrNoSeatsSelected):
		respondError(c, http.StatusBadRequest, "no_seats_selected", err.Error())
	case domain.IsIncompleteDetails(err):
		respondError(c, http.StatusBadRequest, "incomplete_details", err.Error())
	case errors.Is(err, domain.ErrInvalidDimension):
		respondError(c, http.StatusBadRequest, "invalid_dimension", err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		respondError(c, http.StatusUnauthorized, "unauthenticated", err.Error())
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	case domain.IsPersistence(err):
		respondError(c, http.StatusInternalServerError, "persistence_error", "booking was not recorded, please retry")
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
