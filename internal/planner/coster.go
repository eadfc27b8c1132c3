package planner

import "food-budget-planner/internal/catalog"

// CostedRecipe is a recipe priced for one household under one selection of
// catalog items. Cost is meaningful only when Feasible is true.
type CostedRecipe struct {
	catalog.Recipe
	Cost     float64
	Feasible bool
}

// CostRecipe prices a recipe against the selected items. A recipe is
// infeasible when any ingredient fails to resolve; the partial cost of the
// resolvable ingredients is still carried so callers can display it, but it
// must never enter a selection pool.
func CostRecipe(r catalog.Recipe, selected catalog.Lookup, householdSize int) CostedRecipe {
	costed := CostedRecipe{Recipe: r, Feasible: true}
	for _, ing := range r.Ingredients {
		item, ok := selected.Resolve(ing.Item)
		if !ok {
			costed.Feasible = false
			continue
		}
		costed.Cost += item.Price * ing.QuantityPerPerson * float64(householdSize)
	}
	return costed
}

// CostAll prices every recipe in the catalog.
func CostAll(recipes []catalog.Recipe, selected catalog.Lookup, householdSize int) []CostedRecipe {
	costed := make([]CostedRecipe, 0, len(recipes))
	for _, r := range recipes {
		costed = append(costed, CostRecipe(r, selected, householdSize))
	}
	return costed
}
