// Package budgetplan contains the budget plan lifecycle use cases.
package budgetplan

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

// invalidateSummary drops the cached derived-metrics summary after a plan
// mutation. Cache failures are logged, never surfaced.
func invalidateSummary(ctx context.Context, cache adapter.SummaryCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("summary cache invalidation failed", "error", err, "user_id", userID)
	}
}
