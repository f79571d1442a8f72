package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

const candidatePoolKey = "roommate:candidates:v1"

type candidateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCandidateCache stores the candidate pool as one JSON document in Redis.
func NewCandidateCache(client *redis.Client, ttl time.Duration) repository.CandidateCache {
	return &candidateCache{client: client, ttl: ttl}
}

func (c *candidateCache) Get(ctx context.Context) ([]*domain.Profile, bool, error) {
	raw, err := c.client.Get(ctx, candidatePoolKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read candidate pool: %w", err)
	}

	var profiles []*domain.Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		return nil, false, nil
	}
	return profiles, true, nil
}

func (c *candidateCache) Set(ctx context.Context, profiles []*domain.Profile) error {
	raw, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to encode candidate pool: %w", err)
	}
	if err := c.client.Set(ctx, candidatePoolKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write candidate pool: %w", err)
	}
	return nil
}

func (c *candidateCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, candidatePoolKey).Err()
}

// NopCandidateCache never hits. It is used when Redis is not configured.
type NopCandidateCache struct{}

func (NopCandidateCache) Get(context.Context) ([]*domain.Profile, bool, error) {
	return nil, false, nil
}

func (NopCandidateCache) Set(context.Context, []*domain.Profile) error { return nil }

func (NopCandidateCache) Invalidate(context.Context) error { return nil }
