package fakes

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

type RequestRepo struct {
	mu       sync.Mutex
	requests map[string]*domain.RoommateRequest
	order    []string

	Err error
}

var _ repository.RequestRepository = (*RequestRepo)(nil)

func NewRequestRepo() *RequestRepo {
	return &RequestRepo{requests: make(map[string]*domain.RoommateRequest)}
}

func (r *RequestRepo) Save(_ context.Context, req *domain.RoommateRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	now := time.Now()
	if _, ok := r.requests[req.ID]; !ok {
		r.order = append(r.order, req.ID)
	}
	req.CreatedAt = now
	req.UpdatedAt = now
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *RequestRepo) GetByID(_ context.Context, id string) (*domain.RoommateRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *RequestRepo) GetBetween(ctx context.Context, uid1, uid2 string) (*domain.RoommateRequest, error) {
	var best *domain.RoommateRequest
	for _, id := range []string{domain.RequestID(uid1, uid2), domain.RequestID(uid2, uid1)} {
		req, err := r.GetByID(ctx, id)
		if errors.Is(err, domain.ErrRequestNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if best == nil || statusRank(req.Status) < statusRank(best.Status) {
			best = req
		}
	}
	if best == nil {
		return nil, domain.ErrRequestNotFound
	}
	return best, nil
}

// statusRank mirrors the ordering used by the postgres GetBetween.
func statusRank(s domain.RequestStatus) int {
	switch s {
	case domain.RequestAccepted:
		return 0
	case domain.RequestPending:
		return 1
	default:
		return 2
	}
}

func (r *RequestRepo) ListSent(_ context.Context, uid string, status domain.RequestStatus) ([]*domain.RoommateRequest, error) {
	return r.list(func(req *domain.RoommateRequest) bool {
		return req.FromUID == uid && req.Status == status
	})
}

func (r *RequestRepo) ListReceived(_ context.Context, uid string, status domain.RequestStatus) ([]*domain.RoommateRequest, error) {
	return r.list(func(req *domain.RoommateRequest) bool {
		return req.ToUID == uid && req.Status == status
	})
}

func (r *RequestRepo) list(keep func(*domain.RoommateRequest) bool) ([]*domain.RoommateRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*domain.RoommateRequest
	for i := len(r.order) - 1; i >= 0; i-- {
		req := r.requests[r.order[i]]
		if keep(req) {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *RequestRepo) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	req, ok := r.requests[id]
	if !ok {
		return domain.ErrRequestNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	return nil
}

func (r *RequestRepo) UpdateAIFields(_ context.Context, id string, explanation string, icebreakers []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	req, ok := r.requests[id]
	if !ok {
		return domain.ErrRequestNotFound
	}
	req.Explanation = &explanation
	req.Icebreakers = icebreakers
	return nil
}
