package shopping_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"food-budget-planner/internal/database"
	"food-budget-planner/internal/shopping"
)

func TestSaveAndGetByMealPlanID(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	repo := shopping.NewRepository(db.SQL)

	items := []shopping.LineItem{
		{Name: "Maize Flour", Quantity: 4, Unit: "2kg bale", UnitPrice: 180, TotalCost: 720, Priority: 5},
		{Name: "Salt", Quantity: 1, Unit: "500g", UnitPrice: 40, TotalCost: 40, Priority: 4},
	}
	// The plan row itself is owned by the planner repository; any id works
	// for the foreign key here since sqlite does not enforce it by default.
	id, err := repo.Save(ctx, 1, items)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Expected a positive grocery list id, got %d", id)
	}

	list, err := repo.GetByMealPlanID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByMealPlanID failed: %v", err)
	}
	if list == nil {
		t.Fatal("Expected a stored grocery list, got nil")
	}
	if len(list.Items) != 2 {
		t.Fatalf("Expected 2 line items, got %d", len(list.Items))
	}
	if math.Abs(list.TotalCost-760) > 1e-9 {
		t.Errorf("Expected stored total 760, got %.2f", list.TotalCost)
	}

	missing, err := repo.GetByMealPlanID(ctx, 999)
	if err != nil {
		t.Fatalf("GetByMealPlanID for missing plan failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for a plan with no grocery list, got %+v", missing)
	}
}
