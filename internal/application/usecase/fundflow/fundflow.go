// Package fundflow contains the fund-flow use cases: every operation that
// moves value between the spendable, saved, budgeted, and sinking-fund pools.
// Multi-entity mutations run as one atomic unit against the ledger store,
// re-reading authoritative values inside the transaction rather than trusting
// caller-computed state.
package fundflow

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// invalidateSummary drops the cached derived-metrics summary after a
// mutation. Cache failures are logged, never surfaced; the cache is a
// read-side optimization only.
func invalidateSummary(ctx context.Context, cache adapter.SummaryCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("summary cache invalidation failed", "error", err, "user_id", userID)
	}
}
