package telegram

import (
	"strings"
	"testing"

	"food-budget-planner/internal/app"
	"food-budget-planner/internal/planner"
	"food-budget-planner/internal/shopping"
)

func TestParsePlanCommand(t *testing.T) {
	t.Run("FullCommand", func(t *testing.T) {
		req, err := ParsePlanCommand("3 30 30000 economic")
		if err != nil {
			t.Fatalf("ParsePlanCommand failed: %v", err)
		}
		if req.HouseholdSize != 3 || req.Days != 30 || req.Budget != 30000 {
			t.Errorf("Unexpected request: %+v", req)
		}
		if req.Mode != planner.ModeEconomic {
			t.Errorf("Expected economic mode, got %s", req.Mode)
		}
	})

	t.Run("DefaultMode", func(t *testing.T) {
		req, err := ParsePlanCommand("2 7 5000")
		if err != nil {
			t.Fatalf("ParsePlanCommand failed: %v", err)
		}
		if req.Mode != planner.ModeBalanced {
			t.Errorf("Expected balanced default mode, got %s", req.Mode)
		}
	})

	t.Run("TooFewArguments", func(t *testing.T) {
		if _, err := ParsePlanCommand("3 30"); err == nil {
			t.Fatal("Expected an error for missing budget, got nil")
		}
	})

	t.Run("BadNumbers", func(t *testing.T) {
		if _, err := ParsePlanCommand("three 30 30000"); err == nil {
			t.Fatal("Expected an error for non-numeric household, got nil")
		}
	})

	t.Run("UnknownMode", func(t *testing.T) {
		if _, err := ParsePlanCommand("3 30 30000 fancy"); err == nil {
			t.Fatal("Expected an error for unknown mode, got nil")
		}
	})
}

func TestFormatResult(t *testing.T) {
	result := &app.PlanResult{
		Plan: &planner.MealPlan{
			Days: []planner.DayPlan{
				{
					Day:       1,
					Breakfast: planner.Meal{RecipeID: 15, Name: "Tea with Bread", Cost: 145},
					Lunch:     planner.Meal{RecipeID: 3, Name: "Rice and Beans", Cost: 160},
					Dinner:    planner.Meal{RecipeID: 1, Name: "Ugali with Sukuma Wiki", Cost: 260},
					DayCost:   565,
				},
			},
			TotalCost: 565,
		},
		Groceries: []shopping.LineItem{
			{Name: "Maize Flour", Quantity: 2, Unit: "2kg bale", UnitPrice: 180, TotalCost: 360},
		},
		GroceryTotal:        360,
		DailyAvgCost:        565,
		CostPerPersonPerDay: 188.33,
	}

	text := FormatResult(result)
	for _, fragment := range []string{"Day 1", "Tea with Bread", "Maize Flour", "Plan total: 565.00", "Groceries: 360.00"} {
		if !strings.Contains(text, fragment) {
			t.Errorf("Expected formatted result to contain %q\n%s", fragment, text)
		}
	}
}
