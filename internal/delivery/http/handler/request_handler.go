package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/usecase/request"
)

type RequestHandler struct {
	requestUseCase *request.RequestUseCase
}

func NewRequestHandler(requestUseCase *request.RequestUseCase) *RequestHandler {
	return &RequestHandler{
		requestUseCase: requestUseCase,
	}
}

// SendRequest is the body of POST /requests
type SendRequest struct {
	ToUID string `json:"toUid" binding:"required"`
}

// RespondRequest is the body of POST /requests/:request_id/respond
type RespondRequest struct {
	Status domain.RequestStatus `json:"status" binding:"required,oneof=accepted declined"`
}

// Send handles POST /requests
// @Summary Send a roommate request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SendRequest true "Recipient"
// @Success 200 {object} request.SendResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /requests [post]
func (h *RequestHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.requestUseCase.Send(c.Request.Context(), userID, req.ToUID)
	if err != nil {
		writeError(c, err, "failed to send request")
		return
	}

	status := http.StatusOK
	if result.Status == request.SendSent {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// Respond handles POST /requests/:request_id/respond
// @Summary Accept or decline a roommate request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request_id path string true "Request ID"
// @Param request body RespondRequest true "Answer"
// @Success 200 {object} domain.RoommateRequest
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /requests/{request_id}/respond [post]
func (h *RequestHandler) Respond(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status must be accepted or declined"})
		return
	}

	updated, err := h.requestUseCase.Respond(c.Request.Context(), c.Param("request_id"), userID, req.Status)
	if err != nil {
		writeError(c, err, "failed to respond to request")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Relationship handles GET /requests/with/:user_id
func (h *RequestHandler) Relationship(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rel, err := h.requestUseCase.Relationship(c.Request.Context(), userID, c.Param("user_id"))
	if err != nil {
		writeError(c, err, "failed to load relationship")
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": rel})
}

// Pending handles GET /requests/pending
func (h *RequestHandler) Pending(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.requestUseCase.Pending(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "failed to load pending requests")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending": entries})
}

// Incoming handles GET /requests/incoming
func (h *RequestHandler) Incoming(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	requests, err := h.requestUseCase.Incoming(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "failed to load incoming requests")
		return
	}
	if requests == nil {
		requests = []*domain.RoommateRequest{}
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// Matches handles GET /matches
// @Summary List accepted roommates
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string][]request.MatchEntry
// @Router /matches [get]
func (h *RequestHandler) Matches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.requestUseCase.Matches(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "failed to load matches")
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
