package shopping

import "food-budget-planner/internal/catalog"

// LineItem is one entry on the final grocery list. Quantity is in whole
// catalog units (demand is rounded up); TotalCost always equals
// Quantity * UnitPrice once allocation has run.
type LineItem struct {
	Name      string           `json:"name"`
	Quantity  int              `json:"quantity"`
	Unit      string           `json:"unit"`
	UnitPrice float64          `json:"unit_price"`
	TotalCost float64          `json:"total_cost"`
	Priority  int              `json:"priority"`
	Category  catalog.Category `json:"category"`
}

// Total sums the cost of a grocery list.
func Total(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.TotalCost
	}
	return total
}
