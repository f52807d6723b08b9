// Package cache implements the summary cache over Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// summaryTTL bounds staleness if an invalidation is ever missed; normal
// freshness comes from mutations invalidating the key. It also reaps
// payload keys orphaned by a generation bump.
const summaryTTL = 10 * time.Minute

// redisSummaryCache implements the adapter.SummaryCache interface. Payloads
// live under a generation-suffixed key; Invalidate increments the generation
// counter, so a Set carrying a pre-mutation generation writes to a key no
// subsequent Get will read.
type redisSummaryCache struct {
	client *redis.Client
}

// NewRedisSummaryCache creates a new Redis-backed summary cache.
func NewRedisSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &redisSummaryCache{client: client}
}

func summaryKey(userID uuid.UUID, generation int64) string {
	return fmt.Sprintf("summary:%s:%d", userID, generation)
}

func generationKey(userID uuid.UUID) string {
	return fmt.Sprintf("summary:gen:%s", userID)
}

// Get returns the cached payload for the user's current generation, or
// (nil, gen, nil) on a miss.
func (c *redisSummaryCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, int64, error) {
	generation, err := c.generation(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	payload, err := c.client.Get(ctx, summaryKey(userID, generation)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, generation, nil
		}
		return nil, 0, err
	}
	return payload, generation, nil
}

// Set stores the payload under the given generation.
func (c *redisSummaryCache) Set(ctx context.Context, userID uuid.UUID, payload []byte, generation int64) error {
	return c.client.Set(ctx, summaryKey(userID, generation), payload, summaryTTL).Err()
}

// Invalidate advances the user's generation. The previous payload key is
// left to expire with its TTL.
func (c *redisSummaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Incr(ctx, generationKey(userID)).Err()
}

func (c *redisSummaryCache) generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return generation, nil
}
