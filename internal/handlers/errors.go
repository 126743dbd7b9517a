package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/correspondence_app/internal/apperrors"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/SscSPs/correspondence_app/internal/dto"
	"github.com/SscSPs/correspondence_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch apperrors.Kind(err) {
	case apperrors.ErrValidation, apperrors.ErrMissingClassification:
		return http.StatusBadRequest
	case apperrors.ErrForbidden:
		return http.StatusForbidden
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrInvalidTransition, apperrors.ErrDuplicate:
		return http.StatusConflict
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes err as a JSON error body. Unclassified errors are logged and hidden behind fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}

// actorFromContext returns the authenticated user id or writes 401.
func actorFromContext(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// viewResponse derives the response view of l for viewerID.
func viewResponse(l domain.Letter, viewerID string) dto.LetterViewResponse {
	return dto.ToLetterViewResponse(domain.NewLetterView(l, viewerID))
}
