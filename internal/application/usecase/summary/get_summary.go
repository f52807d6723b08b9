// Package summary computes derived ledger metrics.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
)

// Summary is the full set of derived metrics for one user at one instant.
type Summary struct {
	Allowance             decimal.Decimal
	TotalSpent            decimal.Decimal
	TotalSavingsBudget    decimal.Decimal
	TotalSinkingAllocated decimal.Decimal
	RemainingBalance      decimal.Decimal
	PlanningBalance       decimal.Decimal
	PlanLocked            bool
	DailyAverage          decimal.Decimal
	// SurvivalDays is +Inf when the effective spend rate is zero.
	SurvivalDays float64
}

// summaryPayload is the cache serialization of a Summary. SurvivalDays is a
// pointer so an unbounded runway round-trips as null instead of +Inf, which
// JSON cannot carry.
type summaryPayload struct {
	Allowance             decimal.Decimal `json:"allowance"`
	TotalSpent            decimal.Decimal `json:"total_spent"`
	TotalSavingsBudget    decimal.Decimal `json:"total_savings_budget"`
	TotalSinkingAllocated decimal.Decimal `json:"total_sinking_allocated"`
	RemainingBalance      decimal.Decimal `json:"remaining_balance"`
	PlanningBalance       decimal.Decimal `json:"planning_balance"`
	PlanLocked            bool            `json:"plan_locked"`
	DailyAverage          decimal.Decimal `json:"daily_average"`
	SurvivalDays          *float64        `json:"survival_days"`
}

// GetSummaryInput represents the input for summary retrieval.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the output of summary retrieval.
type GetSummaryOutput struct {
	Summary *Summary
}

// GetSummaryUseCase recomputes the derived metrics from a fresh snapshot,
// served read-through an optional per-user cache.
type GetSummaryUseCase struct {
	store   adapter.LedgerStore
	catalog *entity.Catalog
	cache   adapter.SummaryCache
	now     func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance. The cache
// may be nil, in which case every read recomputes.
func NewGetSummaryUseCase(store adapter.LedgerStore, catalog *entity.Catalog, cache adapter.SummaryCache) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		store:   store,
		catalog: catalog,
		cache:   cache,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Execute computes (or serves from cache) the derived-metrics summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	// The generation is captured before the snapshot read so a mutation
	// committing in between orphans the write-back below instead of letting
	// a pre-mutation summary overwrite the invalidation.
	var generation int64
	cacheReadable := false
	if uc.cache != nil {
		payload, gen, err := uc.cache.Get(ctx, input.UserID)
		if err != nil {
			// A broken cache must not take summaries down with it.
			slog.Warn("summary cache read failed", "error", err, "user_id", input.UserID)
		} else {
			generation = gen
			cacheReadable = true
			if payload != nil {
				var cached summaryPayload
				if err := json.Unmarshal(payload, &cached); err == nil {
					return &GetSummaryOutput{Summary: cached.toSummary()}, nil
				}
			}
		}
	}

	snapshot, err := uc.store.GetSnapshot(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	now := uc.now()
	s := &Summary{
		Allowance:             snapshot.Settings.Allowance,
		TotalSpent:            TotalSpent(snapshot, uc.catalog),
		TotalSavingsBudget:    TotalSavingsBudget(snapshot),
		TotalSinkingAllocated: TotalSinkingAllocated(snapshot),
		RemainingBalance:      RemainingBalance(snapshot, uc.catalog),
		PlanningBalance:       PlanningBalance(snapshot, uc.catalog),
		PlanLocked:            snapshot.Settings.PlanLocked(),
		DailyAverage:          DailyAverage(snapshot, uc.catalog, now),
		SurvivalDays:          SurvivalDays(snapshot, uc.catalog, now),
	}

	if uc.cache != nil && cacheReadable {
		if payload, err := json.Marshal(s.payload()); err == nil {
			if err := uc.cache.Set(ctx, input.UserID, payload, generation); err != nil {
				slog.Warn("summary cache write failed", "error", err, "user_id", input.UserID)
			}
		}
	}

	return &GetSummaryOutput{Summary: s}, nil
}

func (s *Summary) payload() summaryPayload {
	p := summaryPayload{
		Allowance:             s.Allowance,
		TotalSpent:            s.TotalSpent,
		TotalSavingsBudget:    s.TotalSavingsBudget,
		TotalSinkingAllocated: s.TotalSinkingAllocated,
		RemainingBalance:      s.RemainingBalance,
		PlanningBalance:       s.PlanningBalance,
		PlanLocked:            s.PlanLocked,
		DailyAverage:          s.DailyAverage,
	}
	if !math.IsInf(s.SurvivalDays, 1) {
		days := s.SurvivalDays
		p.SurvivalDays = &days
	}
	return p
}

func (p *summaryPayload) toSummary() *Summary {
	s := &Summary{
		Allowance:             p.Allowance,
		TotalSpent:            p.TotalSpent,
		TotalSavingsBudget:    p.TotalSavingsBudget,
		TotalSinkingAllocated: p.TotalSinkingAllocated,
		RemainingBalance:      p.RemainingBalance,
		PlanningBalance:       p.PlanningBalance,
		PlanLocked:            p.PlanLocked,
		DailyAverage:          p.DailyAverage,
		SurvivalDays:          math.Inf(1),
	}
	if p.SurvivalDays != nil {
		s.SurvivalDays = *p.SurvivalDays
	}
	return s
}
