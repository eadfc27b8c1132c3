package catalog_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"food-budget-planner/internal/catalog"
	"food-budget-planner/internal/database"
)

func newTestRepository(t *testing.T) *catalog.Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return catalog.NewRepository(db.SQL)
}

func TestSeedAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	// Seeding twice must be a no-op.
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	items, err := repo.Items(ctx)
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if len(items) != len(catalog.DefaultItems()) {
		t.Errorf("Expected %d items, got %d", len(catalog.DefaultItems()), len(items))
	}

	recipes, err := repo.Recipes(ctx)
	if err != nil {
		t.Fatalf("Recipes failed: %v", err)
	}
	if len(recipes) != len(catalog.DefaultRecipes()) {
		t.Fatalf("Expected %d recipes, got %d", len(catalog.DefaultRecipes()), len(recipes))
	}
	for _, r := range recipes {
		if len(r.Ingredients) == 0 {
			t.Errorf("Recipe %q lost its ingredients in storage", r.Name)
		}
	}
}

func TestUpdatePrice(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if err := repo.UpdatePrice(ctx, "Maize Flour", 199); err != nil {
		t.Fatalf("UpdatePrice failed: %v", err)
	}
	items, err := repo.Items(ctx)
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	lookup := catalog.NewLookup(items)
	item, ok := lookup.Resolve("Maize Flour")
	if !ok {
		t.Fatal("Maize Flour missing after price update")
	}
	if item.Price != 199 {
		t.Errorf("Expected updated price 199, got %.2f", item.Price)
	}

	err = repo.UpdatePrice(ctx, "No Such Item", 10)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows for unknown item, got %v", err)
	}
}
