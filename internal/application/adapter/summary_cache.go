// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SummaryCache caches the serialized derived-metrics summary per user.
// Correctness depends on every fund-flow and plan-lifecycle mutation
// invalidating the entry; a cold cache only costs a recompute.
//
// Entries are versioned by a per-user generation that Invalidate advances.
// A reader captures the generation with Get and hands it back to Set, so a
// summary computed before a mutation can never overwrite the invalidation:
// its write lands on the old generation, which no reader consults anymore.
type SummaryCache interface {
	// Get returns the cached payload for the user, or (nil, gen, nil) on a
	// miss. The returned generation must be passed to the matching Set.
	Get(ctx context.Context, userID uuid.UUID) ([]byte, int64, error)

	// Set stores the payload under the given generation. A stale generation
	// makes the write invisible to readers.
	Set(ctx context.Context, userID uuid.UUID, payload []byte, generation int64) error

	// Invalidate advances the user's generation, orphaning any cached entry.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
