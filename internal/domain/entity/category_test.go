// Package entity defines the core business entities for the domain layer.
package entity

import "testing"

func TestCatalogLookup(t *testing.T) {
	catalog := SeedCatalog()

	t.Run("known ids resolve to their category", func(t *testing.T) {
		cat, ok := catalog.Lookup("food")
		if !ok {
			t.Fatal("expected food to be found")
		}
		if cat.Classification != ClassificationNeed {
			t.Errorf("expected need, got %s", cat.Classification)
		}
	})

	t.Run("unknown ids resolve to the uncategorized placeholder", func(t *testing.T) {
		cat, ok := catalog.Lookup("no-such-category")
		if ok {
			t.Error("expected unknown id to report not found")
		}
		if cat.ID != Uncategorized.ID {
			t.Errorf("expected uncategorized, got %s", cat.ID)
		}
	})
}

func TestCatalogIsSavings(t *testing.T) {
	catalog := SeedCatalog()

	if !catalog.IsSavings(SavingsCategoryID) {
		t.Error("expected the savings category to be savings-classified")
	}
	if catalog.IsSavings("food") {
		t.Error("expected food not to be savings-classified")
	}
	if catalog.IsSavings("no-such-category") {
		t.Error("expected unknown ids not to be savings-classified")
	}
}

func TestCatalogAllPreservesOrder(t *testing.T) {
	catalog := SeedCatalog()

	all := catalog.All()
	if len(all) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(all))
	}
	if all[0].ID != "food" {
		t.Errorf("expected food first, got %s", all[0].ID)
	}
	if all[len(all)-1].ID != SavingsCategoryID {
		t.Errorf("expected savings last, got %s", all[len(all)-1].ID)
	}
}
