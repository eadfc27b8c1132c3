package planner

import "fmt"

// Mode selects the day-by-day recipe picking strategy.
type Mode string

const (
	// ModeBalanced alternates variety days with an economic day every third day.
	ModeBalanced Mode = "balanced"
	// ModeEconomic always picks the cheapest recipe for each meal.
	ModeEconomic Mode = "economic"
	// ModeVariety picks randomly from the frequency-weighted pools.
	ModeVariety Mode = "variety"
)

// ParseMode validates a mode string from a flag or bot command.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBalanced, ModeEconomic, ModeVariety:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown optimization mode %q", s)
}

// Meal is one selected recipe slot in a day. A RecipeID of zero with name
// "None" marks an unfilled slot.
type Meal struct {
	RecipeID int     `json:"recipe_id"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
}

// DayPlan is the three meals chosen for one day of the horizon.
type DayPlan struct {
	Day       int     `json:"day"`
	Breakfast Meal    `json:"breakfast"`
	Lunch     Meal    `json:"lunch"`
	Dinner    Meal    `json:"dinner"`
	DayCost   float64 `json:"day_cost"`
}

// MealPlan is a full generated plan. TotalCost is the display total; after
// the post-generation scaling pass it never exceeds the requested budget,
// while the recipe selections themselves are untouched.
type MealPlan struct {
	Days      []DayPlan `json:"days"`
	TotalCost float64   `json:"total_cost"`
}

// RecipeIDs flattens the plan's meal selections into one recipe ID per
// slot, in day order. Unfilled slots contribute a zero ID.
func (p *MealPlan) RecipeIDs() []int {
	ids := make([]int, 0, len(p.Days)*3)
	for _, day := range p.Days {
		ids = append(ids, day.Breakfast.RecipeID, day.Lunch.RecipeID, day.Dinner.RecipeID)
	}
	return ids
}
