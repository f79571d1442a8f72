package fakes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

// ProfileRepo is a goroutine-safe in-memory ProfileRepository. Insertion
// order stands in for created_at.
type ProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
	order    []string

	// Err, when set, is returned by every method.
	Err error
	// ListCalls counts ListCandidates invocations.
	ListCalls int
}

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

func NewProfileRepo(profiles ...*domain.Profile) *ProfileRepo {
	r := &ProfileRepo{profiles: make(map[string]*domain.Profile)}
	for _, p := range profiles {
		_ = r.Upsert(context.Background(), p)
	}
	return r
}

func (r *ProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProfileRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*domain.Profile
	for _, id := range r.order {
		if p := r.profiles[id]; want[id] && p.FirstName != "" {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ProfileRepo) ListCandidates(_ context.Context, excludeID string) ([]*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*domain.Profile
	for _, id := range r.order {
		p := r.profiles[id]
		if id == excludeID || !p.Onboarded || p.FirstName == "" {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ProfileRepo) Upsert(_ context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	now := time.Now()
	if existing, ok := r.profiles[p.ID]; ok {
		p.CreatedAt = existing.CreatedAt
		p.Onboarded = p.Onboarded || existing.Onboarded
	} else {
		p.CreatedAt = now
		r.order = append(r.order, p.ID)
	}
	p.UpdatedAt = now
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *ProfileRepo) UpdateOnboardingStatus(_ context.Context, id string, onboarded bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	p, ok := r.profiles[id]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.Onboarded = onboarded
	return nil
}

func (r *ProfileRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.profiles[id]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.profiles, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// CandidateCache is an in-memory CandidateCache with hit/miss counters.
type CandidateCache struct {
	mu       sync.Mutex
	profiles []*domain.Profile
	ok       bool

	Hits          int
	Misses        int
	Invalidations int
	// GetErr and SetErr simulate a failing backend.
	GetErr error
	SetErr error
}

var _ repository.CandidateCache = (*CandidateCache)(nil)

func (c *CandidateCache) Get(context.Context) ([]*domain.Profile, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		c.Misses++
		return nil, false, c.GetErr
	}
	if !c.ok {
		c.Misses++
		return nil, false, nil
	}
	c.Hits++
	return c.profiles, true, nil
}

func (c *CandidateCache) Set(_ context.Context, profiles []*domain.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	c.profiles = profiles
	c.ok = true
	return nil
}

func (c *CandidateCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profiles = nil
	c.ok = false
	c.Invalidations++
	return nil
}

// SortedIDs returns profile IDs in ascending order, handy for assertions
// where order does not matter.
func SortedIDs(profiles []*domain.Profile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID)
	}
	sort.Strings(out)
	return out
}
