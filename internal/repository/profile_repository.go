package repository

import (
	"context"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error)
	// ListCandidates returns every onboarded profile with a first name,
	// except excludeID, oldest first.
	ListCandidates(ctx context.Context, excludeID string) ([]*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	UpdateOnboardingStatus(ctx context.Context, id string, onboarded bool) error
	Delete(ctx context.Context, id string) error
}

// CandidateCache keeps the complete candidate pool between requests.
// Entries are whole snapshots; a miss returns ok == false.
type CandidateCache interface {
	Get(ctx context.Context) (profiles []*domain.Profile, ok bool, err error)
	Set(ctx context.Context, profiles []*domain.Profile) error
	Invalidate(ctx context.Context) error
}
