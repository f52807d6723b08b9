// Package cache implements the summary cache over Redis.
package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func openTestCache(t *testing.T) *redisSummaryCache {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return &redisSummaryCache{client: client}
}

func TestSummaryCacheRoundTrip(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	userID := uuid.New()
	payload := []byte(`{"remaining_balance":380}`)

	t.Run("a miss returns nil without error", func(t *testing.T) {
		got, gen, err := c.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil on miss, got %q", got)
		}
		if gen != 0 {
			t.Errorf("expected generation 0 for a fresh user, got %d", gen)
		}
	})

	t.Run("set then get returns the payload", func(t *testing.T) {
		if err := c.Set(ctx, userID, payload, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _, err := c.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != string(payload) {
			t.Errorf("expected %q, got %q", payload, got)
		}
	})

	t.Run("entries are keyed per user", func(t *testing.T) {
		got, _, err := c.Get(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected a miss for another user, got %q", got)
		}
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		if err := c.Invalidate(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, gen, err := c.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil after invalidation, got %q", got)
		}
		if gen != 1 {
			t.Errorf("expected generation 1 after one invalidation, got %d", gen)
		}
	})

	t.Run("invalidating a missing entry is a no-op", func(t *testing.T) {
		if err := c.Invalidate(ctx, uuid.New()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestSummaryCacheStaleGenerationWriteIsInvisible(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	userID := uuid.New()

	// A reader captures generation 0, then a mutation invalidates before the
	// reader writes back.
	_, gen, err := c.Get(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Invalidate(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Set(ctx, userID, []byte(`{"remaining_balance":500}`), gen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _, err := c.Get(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected the stale write to be invisible, got %q", got)
	}

	// A write carrying the current generation is served normally.
	fresh := []byte(`{"remaining_balance":900}`)
	if err := c.Set(ctx, userID, fresh, gen+1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _, err = c.Get(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(fresh) {
		t.Errorf("expected %q, got %q", fresh, got)
	}
}
