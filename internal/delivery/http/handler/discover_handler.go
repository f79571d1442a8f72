package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/matching"
	"github.com/gdugdh24/roommate-backend/internal/usecase/discover"
)

type DiscoverHandler struct {
	discoverUseCase *discover.DiscoverUseCase
}

func NewDiscoverHandler(discoverUseCase *discover.DiscoverUseCase) *DiscoverHandler {
	return &DiscoverHandler{
		discoverUseCase: discoverUseCase,
	}
}

// Discover handles GET /discover
// @Summary Browse roommate candidates
// @Description Filter, score and sort every onboarded profile for the current user
// @Tags discover
// @Security BearerAuth
// @Produce json
// @Param q query string false "Free text over name, program and bio"
// @Param min_age query int false "Minimum age"
// @Param max_age query int false "Maximum age"
// @Param lease query string false "Lease duration or 'any'"
// @Param sort query string false "default|match|name|age-asc|age-desc|hobbies"
// @Param show_score query bool false "Attach match scores"
// @Success 200 {object} discover.DiscoverResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discover [get]
func (h *DiscoverHandler) Discover(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	q, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.discoverUseCase.Discover(c.Request.Context(), userID, q)
	if err != nil {
		writeError(c, err, "failed to load candidates")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Compatibility handles GET /discover/:user_id/compatibility
// @Summary Compatibility breakdown
// @Description Score the candidate against the current user and list every penalty
// @Tags discover
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "Candidate user ID"
// @Success 200 {object} discover.CompatibilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /discover/{user_id}/compatibility [get]
func (h *DiscoverHandler) Compatibility(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.discoverUseCase.Compatibility(c.Request.Context(), userID, c.Param("user_id"))
	if err != nil {
		writeError(c, err, "failed to compute compatibility")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseQuery(c *gin.Context) (matching.QuerySpec, error) {
	q := matching.QuerySpec{
		Text:  c.Query("q"),
		Lease: domain.LeaseDuration(strings.TrimSpace(c.Query("lease"))),
		Sort:  matching.ParseSortKey(c.Query("sort")),
	}

	var err error
	if q.MinAge, err = optionalInt(c, "min_age"); err != nil {
		return q, err
	}
	if q.MaxAge, err = optionalInt(c, "max_age"); err != nil {
		return q, err
	}
	if raw := c.Query("show_score"); raw != "" {
		if q.IncludeScore, err = strconv.ParseBool(raw); err != nil {
			return q, fmt.Errorf("%w: show_score must be a boolean", domain.ErrInvalidInput)
		}
	}
	if q.Lease != "" && q.Lease != domain.LeaseAny && !q.Lease.Valid() {
		return q, fmt.Errorf("%w: unknown lease %q", domain.ErrInvalidInput, q.Lease)
	}

	if tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language")); err == nil && len(tags) > 0 {
		q.Locale = tags[0]
	}
	return q, nil
}

func optionalInt(c *gin.Context, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
	}
	return &v, nil
}
