package planner

import (
	"errors"
	"math/rand"
	"time"

	"food-budget-planner/internal/catalog"
)

// ErrNoFeasibleRecipes is returned when the current item selection leaves
// no recipe with all ingredients available. The caller should prompt the
// user to select more items; no plan is produced.
var ErrNoFeasibleRecipes = errors.New("no feasible recipes for the current item selection")

// Budget-correction thresholds: when a day overshoots the running budget,
// replacement candidates are capped at this share of the remaining daily
// budget per meal slot.
const (
	breakfastBudgetShare = 0.3
	lunchBudgetShare     = 0.4
	dinnerBudgetShare    = 0.4
)

// Generator builds multi-day meal plans from costed recipes.
type Generator struct {
	rnd *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand injects the random source used for variety picks. Tests pass a
// seeded source to make selection sequences reproducible.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rnd = r }
}

// NewGenerator creates a Generator. Without options the random source is
// seeded from the clock.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// mealPools holds the frequency-weighted candidate list for each meal slot.
type mealPools struct {
	breakfast []CostedRecipe
	lunch     []CostedRecipe
	dinner    []CostedRecipe
}

// Generate builds one DayPlan per day in 1..days. Selections come from
// frequency-weighted per-meal pools; a running budget check swaps
// over-budget days for cheaper candidates, and a final pass scales the
// displayed costs down to the budget without changing the selections.
func (g *Generator) Generate(costed []CostedRecipe, days int, budget float64, mode Mode) (*MealPlan, error) {
	feasible := make([]CostedRecipe, 0, len(costed))
	for _, c := range costed {
		if c.Feasible {
			feasible = append(feasible, c)
		}
	}
	if len(feasible) == 0 {
		return nil, ErrNoFeasibleRecipes
	}

	pools := buildPools(feasible)

	plan := &MealPlan{Days: make([]DayPlan, 0, days)}
	var total float64
	for d := 1; d <= days; d++ {
		economic := mode == ModeEconomic || (mode == ModeBalanced && d%3 == 0)

		breakfast := g.pick(pools.breakfast, economic)
		lunch := g.pick(pools.lunch, economic)
		dinner := g.pick(pools.dinner, economic)

		dayCost := breakfast.Cost + lunch.Cost + dinner.Cost
		if total+dayCost > budget {
			remainingDaily := (budget - total) / float64(days-d+1)
			if c, ok := cheapestUnder(pools.breakfast, remainingDaily*breakfastBudgetShare); ok {
				breakfast = c
			}
			if c, ok := cheapestUnder(pools.lunch, remainingDaily*lunchBudgetShare); ok {
				lunch = c
			}
			if c, ok := cheapestUnder(pools.dinner, remainingDaily*dinnerBudgetShare); ok {
				dinner = c
			}
			dayCost = breakfast.Cost + lunch.Cost + dinner.Cost
		}
		total += dayCost

		plan.Days = append(plan.Days, DayPlan{
			Day:       d,
			Breakfast: toMeal(breakfast),
			Lunch:     toMeal(lunch),
			Dinner:    toMeal(dinner),
			DayCost:   dayCost,
		})
	}

	plan.TotalCost = total
	scaleToBudget(plan, budget)
	return plan, nil
}

// buildPools partitions the feasible recipes by meal type and expands each
// pool by frequency weight. A meal type with no feasible recipe of its own
// falls back to the entire feasible set, so every slot always has
// candidates.
func buildPools(feasible []CostedRecipe) mealPools {
	byType := map[catalog.MealType][]CostedRecipe{}
	for _, r := range feasible {
		byType[r.MealType] = append(byType[r.MealType], r)
	}

	poolFor := func(mealType catalog.MealType) []CostedRecipe {
		candidates := byType[mealType]
		if len(candidates) == 0 {
			candidates = feasible
		}
		return weightedPool(candidates)
	}

	return mealPools{
		breakfast: poolFor(catalog.MealBreakfast),
		lunch:     poolFor(catalog.MealLunch),
		dinner:    poolFor(catalog.MealDinner),
	}
}

// weightedPool repeats each recipe FrequencyWeight times (at least once) so
// a uniform draw is frequency-biased.
func weightedPool(recipes []CostedRecipe) []CostedRecipe {
	var pool []CostedRecipe
	for _, r := range recipes {
		weight := r.FrequencyWeight
		if weight < 1 {
			weight = 1
		}
		for i := 0; i < weight; i++ {
			pool = append(pool, r)
		}
	}
	return pool
}

// pick selects one recipe from a weighted pool: the cheapest for economic
// days, otherwise a uniform random draw.
func (g *Generator) pick(pool []CostedRecipe, economic bool) CostedRecipe {
	if economic {
		c, _ := cheapest(pool)
		return c
	}
	return pool[g.rnd.Intn(len(pool))]
}

// cheapest returns the first minimum-cost entry in pool order.
func cheapest(pool []CostedRecipe) (CostedRecipe, bool) {
	if len(pool) == 0 {
		return CostedRecipe{}, false
	}
	best := pool[0]
	for _, r := range pool[1:] {
		if r.Cost < best.Cost {
			best = r
		}
	}
	return best, true
}

// cheapestUnder returns the cheapest pool entry costing at most limit.
// Reports false when no entry qualifies, in which case the caller keeps its
// original, possibly over-budget pick.
func cheapestUnder(pool []CostedRecipe, limit float64) (CostedRecipe, bool) {
	var affordable []CostedRecipe
	for _, r := range pool {
		if r.Cost <= limit {
			affordable = append(affordable, r)
		}
	}
	return cheapest(affordable)
}

// scaleToBudget uniformly scales displayed meal costs so the plan total
// matches the budget. Recipe selections and the grocery quantities derived
// from them are unaffected; this is display normalization only.
func scaleToBudget(plan *MealPlan, budget float64) {
	if plan.TotalCost <= budget || plan.TotalCost == 0 {
		return
	}
	factor := budget / plan.TotalCost
	if factor < 0 {
		factor = 0
	}
	for i := range plan.Days {
		plan.Days[i].Breakfast.Cost *= factor
		plan.Days[i].Lunch.Cost *= factor
		plan.Days[i].Dinner.Cost *= factor
		plan.Days[i].DayCost *= factor
	}
	plan.TotalCost *= factor
}

func toMeal(r CostedRecipe) Meal {
	if r.ID == 0 {
		return Meal{Name: "None"}
	}
	return Meal{RecipeID: r.ID, Name: r.Name, Cost: r.Cost}
}
