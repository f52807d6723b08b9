// Package summary computes derived ledger metrics.
package summary

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-ledger/backend/internal/application/adapter"
	"github.com/budget-ledger/backend/internal/domain/entity"
	"github.com/budget-ledger/backend/internal/integration/persistence"
	"github.com/budget-ledger/backend/internal/integration/persistence/model"
)

// memoryCache is an in-process adapter.SummaryCache recording its traffic.
// It mirrors the Redis implementation: payloads are keyed by generation and
// Invalidate advances the generation, orphaning earlier writes.
type memoryCache struct {
	entries map[string][]byte
	gens    map[uuid.UUID]int64
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: map[string][]byte{},
		gens:    map[uuid.UUID]int64{},
	}
}

func (c *memoryCache) key(userID uuid.UUID, generation int64) string {
	return fmt.Sprintf("%s:%d", userID, generation)
}

func (c *memoryCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, int64, error) {
	generation := c.gens[userID]
	return c.entries[c.key(userID, generation)], generation, nil
}

func (c *memoryCache) Set(ctx context.Context, userID uuid.UUID, payload []byte, generation int64) error {
	c.entries[c.key(userID, generation)] = payload
	c.sets++
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	c.gens[userID]++
	return nil
}

func openTestStore(t *testing.T) adapter.LedgerStore {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.SettingsModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.CategoryBudgetModel{},
		&model.SinkingFundModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return persistence.NewLedgerRepository(db)
}

func seedAllowance(t *testing.T, store adapter.LedgerStore, userID uuid.UUID, amount string) {
	t.Helper()
	ctx := context.Background()

	settings, err := store.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings.Allowance = dec(amount)
	if err := store.UpdateSettings(ctx, settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetSummaryReadThrough(t *testing.T) {
	store := openTestStore(t)
	cache := newMemoryCache()
	userID := uuid.New()
	ctx := context.Background()

	seedAllowance(t, store, userID, "500.00")
	uc := NewGetSummaryUseCase(store, entity.SeedCatalog(), cache)

	first, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Summary.RemainingBalance.Equal(dec("500.00")) {
		t.Errorf("expected remaining 500.00, got %s", first.Summary.RemainingBalance)
	}
	if cache.sets != 1 {
		t.Errorf("expected one cache write, got %d", cache.sets)
	}

	// The second read must come from the cache: mutate the store behind its
	// back and expect the stale value.
	seedAllowance(t, store, userID, "900.00")

	second, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Summary.RemainingBalance.Equal(dec("500.00")) {
		t.Errorf("expected the cached 500.00, got %s", second.Summary.RemainingBalance)
	}
	if cache.sets != 1 {
		t.Errorf("expected no extra cache write on a hit, got %d", cache.sets)
	}

	// After invalidation the fresh value is recomputed.
	if err := cache.Invalidate(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !third.Summary.RemainingBalance.Equal(dec("900.00")) {
		t.Errorf("expected the fresh 900.00, got %s", third.Summary.RemainingBalance)
	}
}

// snapshotHookStore lets a test interleave work between the snapshot read
// and the cache write-back.
type snapshotHookStore struct {
	adapter.LedgerStore
	afterSnapshot func()
}

func (s *snapshotHookStore) GetSnapshot(ctx context.Context, userID uuid.UUID) (*entity.Snapshot, error) {
	snapshot, err := s.LedgerStore.GetSnapshot(ctx, userID)
	if err == nil && s.afterSnapshot != nil {
		s.afterSnapshot()
	}
	return snapshot, err
}

func TestGetSummaryWriteBackLosesToInvalidation(t *testing.T) {
	store := openTestStore(t)
	cache := newMemoryCache()
	userID := uuid.New()
	ctx := context.Background()

	seedAllowance(t, store, userID, "500.00")

	// A mutation commits and invalidates between the snapshot read and the
	// cache write-back. The pre-mutation summary must not be served from the
	// cache afterwards.
	hooked := &snapshotHookStore{
		LedgerStore: store,
		afterSnapshot: func() {
			seedAllowance(t, store, userID, "900.00")
			if err := cache.Invalidate(ctx, userID); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		},
	}

	uc := NewGetSummaryUseCase(hooked, entity.SeedCatalog(), cache)

	first, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Summary.RemainingBalance.Equal(dec("500.00")) {
		t.Errorf("expected the pre-mutation 500.00, got %s", first.Summary.RemainingBalance)
	}

	hooked.afterSnapshot = nil
	second, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Summary.RemainingBalance.Equal(dec("900.00")) {
		t.Errorf("expected the post-mutation 900.00, got %s", second.Summary.RemainingBalance)
	}
}

func TestGetSummaryWithoutCache(t *testing.T) {
	store := openTestStore(t)
	userID := uuid.New()
	ctx := context.Background()

	seedAllowance(t, store, userID, "250.00")
	uc := NewGetSummaryUseCase(store, entity.SeedCatalog(), nil)

	out, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Summary.Allowance.Equal(dec("250.00")) {
		t.Errorf("expected allowance 250.00, got %s", out.Summary.Allowance)
	}
}

func TestSummaryPayloadRoundTripsInfinity(t *testing.T) {
	s := &Summary{
		Allowance:        dec("100.00"),
		RemainingBalance: dec("100.00"),
		SurvivalDays:     math.Inf(1),
	}

	p := s.payload()
	if p.SurvivalDays != nil {
		t.Fatal("expected an unbounded runway to serialize as null")
	}

	back := p.toSummary()
	if !math.IsInf(back.SurvivalDays, 1) {
		t.Errorf("expected +Inf after round trip, got %v", back.SurvivalDays)
	}

	days := 12.5
	p.SurvivalDays = &days
	if got := p.toSummary().SurvivalDays; got != 12.5 {
		t.Errorf("expected 12.5, got %v", got)
	}
}
