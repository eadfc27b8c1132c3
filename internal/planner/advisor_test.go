package planner

import (
	"context"
	"strings"
	"testing"

	"food-budget-planner/internal/shopping"
)

type mockTextGenerator struct {
	lastPrompt string
	response   string
}

func (m *mockTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	return m.response, nil
}

func TestAdvise(t *testing.T) {
	gen := &mockTextGenerator{response: "  - Buy maize flour in bulk.\n"}
	advisor := NewAdvisor(gen)

	plan := &MealPlan{
		Days: []DayPlan{{
			Day:       1,
			Breakfast: Meal{RecipeID: 15, Name: "Tea with Bread", Cost: 145},
			Lunch:     Meal{RecipeID: 3, Name: "Rice and Beans", Cost: 160},
			Dinner:    Meal{RecipeID: 1, Name: "Ugali with Sukuma Wiki", Cost: 260},
			DayCost:   565,
		}},
		TotalCost: 565,
	}
	groceries := []shopping.LineItem{
		{Name: "Maize Flour", Quantity: 2, Unit: "2kg bale", UnitPrice: 180, TotalCost: 360},
	}

	advice, err := advisor.Advise(context.Background(), plan, groceries, 3, 5000)
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if advice != "- Buy maize flour in bulk." {
		t.Errorf("Expected trimmed advice, got %q", advice)
	}
	for _, fragment := range []string{"Tea with Bread", "Maize Flour", "family of 3", "5000"} {
		if !strings.Contains(gen.lastPrompt, fragment) {
			t.Errorf("Expected prompt to contain %q", fragment)
		}
	}
}
