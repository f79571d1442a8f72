package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Description Get current user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateMyProfile handles PUT /profile/me
// @Summary Save my profile
// @Description Create or replace the current user's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.SaveProfileRequest true "Profile data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	saved, err := h.profileUseCase.SaveProfile(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// DeleteMyProfile handles DELETE /profile/me
func (h *ProfileHandler) DeleteMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.profileUseCase.DeleteProfile(c.Request.Context(), userID); err != nil {
		writeError(c, err, "failed to delete profile")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "profile deleted"})
}

// CompleteOnboarding handles POST /profile/complete-onboarding
// @Summary Complete onboarding
// @Description Make the saved profile visible in discover
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/complete-onboarding [post]
func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.CompleteOnboarding(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "failed to complete onboarding")
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetProfileByUserID handles GET /profile/:user_id
// @Summary Get profile by user ID
// @Description Public view of another user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /profile/{user_id} [get]
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	p, err := h.profileUseCase.GetProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, p)
}

// LeaseOptions handles GET /lease-options
func (h *ProfileHandler) LeaseOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"options": append([]domain.LeaseDuration{domain.LeaseAny}, domain.LeaseDurations...),
	})
}
