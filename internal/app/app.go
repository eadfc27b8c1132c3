package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"food-budget-planner/internal/catalog"
	"food-budget-planner/internal/metrics"
	"food-budget-planner/internal/planner"
	"food-budget-planner/internal/shopping"
)

// maxDays caps the planning horizon.
const maxDays = 90

// App wires the catalog, planner, and allocator together and persists the
// results of each run.
type App struct {
	catalogRepo  *catalog.Repository
	planRepo     *planner.PlanRepository
	groceryRepo  *shopping.Repository
	metricsStore *metrics.Store
	generator    *planner.Generator
	advisor      *planner.Advisor // nil when no LLM is configured
	log          *zap.SugaredLogger
}

// NewApp creates and initializes a new App instance.
func NewApp(
	catalogRepo *catalog.Repository,
	planRepo *planner.PlanRepository,
	groceryRepo *shopping.Repository,
	metricsStore *metrics.Store,
	generator *planner.Generator,
	advisor *planner.Advisor,
	log *zap.SugaredLogger,
) *App {
	return &App{
		catalogRepo:  catalogRepo,
		planRepo:     planRepo,
		groceryRepo:  groceryRepo,
		metricsStore: metricsStore,
		generator:    generator,
		advisor:      advisor,
		log:          log,
	}
}

// PlanRequest describes one planning run.
type PlanRequest struct {
	HouseholdSize int
	Days          int
	Budget        float64
	Mode          planner.Mode
	// Deselected lists item names the user has toggled off; everything
	// else in the catalog counts as available.
	Deselected []string
}

// PlanResult is the full output of a planning run.
type PlanResult struct {
	PlanID              int64
	Plan                *planner.MealPlan
	Groceries           []shopping.LineItem
	GroceryTotal        float64
	DailyAvgCost        float64
	CostPerPersonPerDay float64
	Advice              string
}

// Validate checks the request bounds.
func (r PlanRequest) Validate() error {
	if r.HouseholdSize < 1 {
		return fmt.Errorf("household size must be at least 1, got %d", r.HouseholdSize)
	}
	if r.Days < 1 || r.Days > maxDays {
		return fmt.Errorf("days must be between 1 and %d, got %d", maxDays, r.Days)
	}
	if r.Budget < 0 {
		return fmt.Errorf("budget must not be negative, got %.2f", r.Budget)
	}
	return nil
}

// GeneratePlan runs the whole pipeline: load catalogs, cost recipes against
// the selection, generate the day-by-day plan, allocate the grocery budget,
// then persist and record the run. Returns planner.ErrNoFeasibleRecipes
// unchanged when the selection starves every recipe.
func (a *App) GeneratePlan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	items, err := a.catalogRepo.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load food catalog: %w", err)
	}
	recipes, err := a.catalogRepo.Recipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}

	selected := make(map[string]bool, len(items))
	for _, it := range items {
		selected[it.Name] = true
	}
	for _, name := range req.Deselected {
		delete(selected, name)
	}
	lookup := catalog.Select(items, selected)

	costed := planner.CostAll(recipes, lookup, req.HouseholdSize)
	plan, err := a.generator.Generate(costed, req.Days, req.Budget, req.Mode)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]catalog.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	demand := shopping.AggregateDemand(plan.RecipeIDs(), byID, req.HouseholdSize)
	groceries := shopping.Allocate(demand, lookup, req.Budget)

	result := &PlanResult{
		Plan:         plan,
		Groceries:    groceries,
		GroceryTotal: shopping.Total(groceries),
		DailyAvgCost: plan.TotalCost / float64(req.Days),
	}
	result.CostPerPersonPerDay = result.DailyAvgCost / float64(req.HouseholdSize)

	result.PlanID = a.persist(ctx, req, result)
	a.record(ctx, req, result, time.Since(start))

	if a.advisor != nil {
		advice, err := a.advisor.Advise(ctx, plan, groceries, req.HouseholdSize, req.Budget)
		if err != nil {
			a.log.Warnw("plan advice unavailable", "err", err)
		} else {
			result.Advice = advice
		}
	}

	return result, nil
}

// persist stores the plan and grocery list. Storage failures are logged,
// not fatal: the caller still gets the computed plan.
func (a *App) persist(ctx context.Context, req PlanRequest, result *PlanResult) int64 {
	planID, err := a.planRepo.Save(ctx, req.HouseholdSize, req.Days, req.Budget, req.Mode, result.Plan)
	if err != nil {
		a.log.Warnw("failed to store meal plan", "err", err)
		return 0
	}
	if _, err := a.groceryRepo.Save(ctx, planID, result.Groceries); err != nil {
		a.log.Warnw("failed to store grocery list", "err", err)
	}
	return planID
}

func (a *App) record(ctx context.Context, req PlanRequest, result *PlanResult, elapsed time.Duration) {
	err := a.metricsStore.Record(ctx, metrics.PlanMetric{
		HouseholdSize: req.HouseholdSize,
		Days:          req.Days,
		Mode:          string(req.Mode),
		Budget:        req.Budget,
		PlanCost:      result.Plan.TotalCost,
		GroceryCost:   result.GroceryTotal,
		DurationMS:    elapsed.Milliseconds(),
	})
	if err != nil {
		a.log.Warnw("failed to record plan metrics", "err", err)
	}
}

// History returns the most recent stored plans.
func (a *App) History(ctx context.Context, limit int) ([]planner.StoredPlan, error) {
	return a.planRepo.ListRecent(ctx, limit)
}
