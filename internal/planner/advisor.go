package planner

import (
	"context"
	"fmt"
	"strings"

	"food-budget-planner/internal/llm"
	"food-budget-planner/internal/shopping"
)

// Advisor produces optional natural-language commentary on a finished plan:
// shopping tips, substitution ideas, nutrition notes. Planning itself never
// depends on it.
type Advisor struct {
	textGen llm.TextGenerator
}

// NewAdvisor creates an Advisor over any text generator.
func NewAdvisor(textGen llm.TextGenerator) *Advisor {
	return &Advisor{textGen: textGen}
}

// Advise summarizes the plan and grocery list for the model and returns its
// commentary verbatim.
func (a *Advisor) Advise(ctx context.Context, plan *MealPlan, groceries []shopping.LineItem, householdSize int, budget float64) (string, error) {
	var sb strings.Builder
	for _, day := range plan.Days {
		fmt.Fprintf(&sb, "Day %d: breakfast %s, lunch %s, dinner %s (%.0f)\n",
			day.Day, day.Breakfast.Name, day.Lunch.Name, day.Dinner.Name, day.DayCost)
	}
	var gb strings.Builder
	for _, item := range groceries {
		fmt.Fprintf(&gb, "%s: %d %s @ %.0f = %.0f\n", item.Name, item.Quantity, item.Unit, item.UnitPrice, item.TotalCost)
	}

	prompt := fmt.Sprintf(`
You are a frugal household meal-planning assistant. A family of %d has this
meal plan and grocery list for a budget of %.0f.

Meal plan:
%s
Grocery list:
%s
In at most five short bullet points, give practical shopping and cooking
advice for this plan: what to buy in bulk, what spoils quickly, and any
cheap substitutions worth considering. Plain text only.
`, householdSize, budget, sb.String(), gb.String())

	advice, err := a.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate plan advice: %w", err)
	}
	return strings.TrimSpace(advice), nil
}
