package repository

import (
	"context"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

type RequestRepository interface {
	// Save inserts the request or replaces the one with the same ID.
	Save(ctx context.Context, req *domain.RoommateRequest) error
	GetByID(ctx context.Context, id string) (*domain.RoommateRequest, error)
	// GetBetween looks in both directions. An accepted request wins over a
	// pending one, which wins over a declined one; ties go to uid1->uid2.
	GetBetween(ctx context.Context, uid1, uid2 string) (*domain.RoommateRequest, error)
	ListSent(ctx context.Context, uid string, status domain.RequestStatus) ([]*domain.RoommateRequest, error)
	ListReceived(ctx context.Context, uid string, status domain.RequestStatus) ([]*domain.RoommateRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	UpdateAIFields(ctx context.Context, id string, explanation string, icebreakers []string) error
}
