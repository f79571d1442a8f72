package discover

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/matching"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

type DiscoverUseCase struct {
	profileRepo repository.ProfileRepository
	cache       repository.CandidateCache
	log         *zap.Logger
}

func NewDiscoverUseCase(
	profileRepo repository.ProfileRepository,
	cache repository.CandidateCache,
	log *zap.Logger,
) *DiscoverUseCase {
	return &DiscoverUseCase{
		profileRepo: profileRepo,
		cache:       cache,
		log:         log,
	}
}

// DiscoverResponse is one page of the discover screen.
type DiscoverResponse struct {
	Results []matching.Result `json:"results"`
	Total   int               `json:"total"`
	Sort    matching.SortKey  `json:"sort"`
}

// CompatibilityResponse is the detail view of one candidate.
type CompatibilityResponse struct {
	Profile       *domain.Profile    `json:"profile"`
	Compatibility matching.Breakdown `json:"compatibility"`
	SharedHobbies int                `json:"shared_hobbies"`
}

// Discover runs the candidate query for viewerID.
func (uc *DiscoverUseCase) Discover(ctx context.Context, viewerID string, q matching.QuerySpec) (*DiscoverResponse, error) {
	viewer, err := uc.viewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	pool, err := uc.candidatePool(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]*domain.Profile, 0, len(pool))
	for _, p := range pool {
		if p.ID == viewerID || !p.IsComplete() {
			continue
		}
		candidates = append(candidates, p.Public())
	}

	results := matching.Run(candidates, viewer, q)

	uc.log.Debug("discover",
		zap.String("viewer", viewerID),
		zap.String("sort", string(q.Sort)),
		zap.Int("pool", len(candidates)),
		zap.Int("results", len(results)),
	)

	return &DiscoverResponse{
		Results: results,
		Total:   len(results),
		Sort:    q.Sort,
	}, nil
}

// Compatibility explains the score between the viewer and one candidate.
// Only profiles Discover could list are accepted.
func (uc *DiscoverUseCase) Compatibility(ctx context.Context, viewerID, candidateID string) (*CompatibilityResponse, error) {
	if viewerID == candidateID {
		return nil, fmt.Errorf("%w: cannot score a profile against itself", domain.ErrInvalidInput)
	}

	viewer, err := uc.viewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	candidate, err := uc.profileRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if !candidate.Onboarded || !candidate.IsComplete() {
		return nil, domain.ErrProfileNotFound
	}

	return &CompatibilityResponse{
		Profile:       candidate.Public(),
		Compatibility: matching.Explain(viewer, candidate),
		SharedHobbies: matching.SharedHobbies(viewer, candidate),
	}, nil
}

// viewer loads the viewer profile, falling back to neutral defaults for
// users who have not finished onboarding.
func (uc *DiscoverUseCase) viewer(ctx context.Context, viewerID string) (*domain.Profile, error) {
	viewer, err := uc.profileRepo.GetByID(ctx, viewerID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.DefaultProfile(viewerID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get viewer profile: %w", err)
	}
	return viewer, nil
}

// candidatePool returns every onboarded profile. The snapshot comes from
// the cache when possible; cache failures only cost a database read.
func (uc *DiscoverUseCase) candidatePool(ctx context.Context) ([]*domain.Profile, error) {
	pool, ok, err := uc.cache.Get(ctx)
	if err != nil {
		uc.log.Warn("candidate cache read failed", zap.Error(err))
	}
	if ok {
		return pool, nil
	}

	pool, err = uc.profileRepo.ListCandidates(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	if err := uc.cache.Set(ctx, pool); err != nil {
		uc.log.Warn("candidate cache write failed", zap.Error(err))
	}
	return pool, nil
}
