package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/roommate-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/roommate-backend/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// currentUserID reads the ID set by the auth middleware and answers 401
// itself when it is missing.
func currentUserID(c *gin.Context) (string, bool) {
	uid := c.GetString(middleware.UserIDKey)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return "", false
	}
	return uid, true
}

// writeError maps domain errors to HTTP statuses. Anything unknown is a
// 500 with the fallback message; the cause is attached for the logger.
func writeError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrNotRequestRecipient):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrRequestNotPending):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrIncompleteProfile),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrCannotRequestSelf):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status, message = http.StatusUnauthorized, err.Error()
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, ErrorResponse{Error: message})
}
