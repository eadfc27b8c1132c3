package shopping

import (
	"math"
	"sort"
	"strings"

	"food-budget-planner/internal/catalog"
)

// AggregateDemand sums per-person ingredient quantities across every
// selected meal of the plan (one recipe ID per meal slot, in plan order),
// scaled by household size. It works from the original recipe selections,
// not the scaled display costs, so quantities are unaffected by the plan's
// cost normalization. Unknown IDs (including the zero "None" slot) are
// skipped.
func AggregateDemand(recipeIDs []int, recipes map[int]catalog.Recipe, householdSize int) map[string]float64 {
	demand := make(map[string]float64)
	for _, id := range recipeIDs {
		r, ok := recipes[id]
		if !ok {
			continue
		}
		for _, ing := range r.Ingredients {
			demand[ing.Item] += ing.QuantityPerPerson * float64(householdSize)
		}
	}
	return demand
}

// PriorityFor ranks an item's essentiality from 1 to 5 for budget
// allocation. First matching rule wins.
func PriorityFor(item catalog.FoodItem) int {
	switch {
	case strings.Contains(item.Name, "Maize Flour"):
		return 5
	case strings.Contains(item.Name, "Cooking Oil") || item.Name == "Salt":
		return 4
	case item.Category == catalog.CategoryProtein,
		item.Name == "Tomatoes", item.Name == "Onions", item.Name == "Cabbage":
		return 3
	case item.Category == catalog.CategoryVegetable:
		return 2
	default:
		return 1
	}
}

// Allocate turns aggregate demand into a grocery list whose total cost is
// driven as close to the budget as whole units allow, never exceeding it.
// The stages run as pure passes: build line items, allocate top-down under
// the budget, drain the remainder into extra units, then sort for display.
func Allocate(demand map[string]float64, items catalog.Lookup, budget float64) []LineItem {
	line := buildLineItems(demand, items)
	kept, free, remaining := allocateWithinBudget(line, budget)
	kept = drainRemainder(kept, remaining)
	kept = append(kept, free...)

	sort.Slice(kept, func(i, j int) bool { return kept[i].Name < kept[j].Name })
	return kept
}

// buildLineItems resolves each demanded ingredient against the catalog and
// rounds quantities up to whole units. Unresolvable names are dropped; a
// feasible plan never produces them, but a stale catalog must not panic the
// allocator.
func buildLineItems(demand map[string]float64, items catalog.Lookup) []LineItem {
	names := make([]string, 0, len(demand))
	for name, qty := range demand {
		if qty > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	line := make([]LineItem, 0, len(names))
	for _, name := range names {
		item, ok := items.Resolve(name)
		if !ok {
			continue
		}
		line = append(line, LineItem{
			Name:      item.Name,
			Quantity:  int(math.Ceil(demand[name])),
			Unit:      item.Unit,
			UnitPrice: item.Price,
			Priority:  PriorityFor(item),
			Category:  item.Category,
		})
	}
	return line
}

// sortForAllocation orders items by priority (highest first), then by unit
// price (cheapest first). The sort is stable so ties keep build order.
func sortForAllocation(items []LineItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority > items[j].Priority
		}
		return items[i].UnitPrice < items[j].UnitPrice
	})
}

// allocateWithinBudget is the first pass: walk items in priority order,
// granting each its demanded quantity capped by what the remaining budget
// affords. Priority 4+ items get at least one unit whenever one is
// affordable. Items the budget cannot touch are dropped for good; they do
// not re-enter the drain pass. Zero-priced items are granted their demand
// outright and kept out of the budget math entirely.
func allocateWithinBudget(line []LineItem, budget float64) (kept, free []LineItem, remaining float64) {
	sorted := make([]LineItem, len(line))
	copy(sorted, line)
	sortForAllocation(sorted)

	remaining = budget
	for _, it := range sorted {
		if it.UnitPrice == 0 {
			it.TotalCost = 0
			free = append(free, it)
			continue
		}
		maxAffordable := int(math.Floor(remaining / it.UnitPrice))
		if maxAffordable <= 0 {
			continue
		}
		minQuantity := 0
		if it.Priority >= 4 {
			minQuantity = 1
		}
		quantity := it.Quantity
		if quantity > maxAffordable {
			quantity = maxAffordable
		}
		if quantity < minQuantity {
			quantity = minQuantity
		}
		it.Quantity = quantity
		it.TotalCost = float64(quantity) * it.UnitPrice
		remaining -= it.TotalCost
		kept = append(kept, it)
	}
	return kept, free, remaining
}

// drainRemainder is the second pass: spend whatever budget is left on extra
// units, exhausting each item in priority order before moving to the next,
// until no surviving item's unit price fits the remainder.
func drainRemainder(items []LineItem, remaining float64) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	sortForAllocation(out)

	for i := range out {
		if remaining <= 0 {
			break
		}
		extra := int(math.Floor(remaining / out[i].UnitPrice))
		if extra <= 0 {
			continue
		}
		out[i].Quantity += extra
		spent := float64(extra) * out[i].UnitPrice
		out[i].TotalCost += spent
		remaining -= spent
	}
	return out
}
