package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"go.uber.org/zap"

	"food-budget-planner/internal/app"
	"food-budget-planner/internal/catalog"
	"food-budget-planner/internal/config"
	"food-budget-planner/internal/database"
	"food-budget-planner/internal/llm"
	"food-budget-planner/internal/logger"
	"food-budget-planner/internal/metrics"
	"food-budget-planner/internal/planner"
	"food-budget-planner/internal/pricefeed"
	"food-budget-planner/internal/shopping"
	"food-budget-planner/internal/telegram"
)

func main() {
	household := flag.Int("household", 3, "number of people to plan for")
	days := flag.Int("days", 7, "number of days to plan (max 90)")
	budget := flag.Float64("budget", 7000, "total budget for the period")
	mode := flag.String("mode", "balanced", "optimization mode: balanced, economic or variety")
	seed := flag.Int64("seed", 0, "random seed (0 = from clock)")
	deselect := flag.String("deselect", "", "comma-separated item names to exclude")
	importPrices := flag.Bool("import-prices", false, "refresh catalog prices from PRICE_FEED_URL and exit")
	history := flag.Int("history", 0, "show the N most recent plans and exit")
	flag.Parse()

	log := logger.New("planner-cli")
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	catalogRepo := catalog.NewRepository(db.SQL)
	if err := catalogRepo.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	if *importPrices {
		if cfg.PriceFeedURL == "" {
			log.Fatal("PRICE_FEED_URL environment variable not set")
		}
		feed := pricefeed.NewFeed(cfg.PriceFeedURL, log)
		applied, err := feed.Apply(ctx, catalogRepo)
		if err != nil {
			log.Fatalf("Price import failed: %v", err)
		}
		fmt.Printf("Updated %d catalog prices.\n", applied)
		return
	}

	var genOpts []planner.Option
	if *seed != 0 {
		genOpts = append(genOpts, planner.WithRand(rand.New(rand.NewSource(*seed))))
	}
	generator := planner.NewGenerator(genOpts...)

	application := buildApp(ctx, cfg, db, catalogRepo, generator, log)

	if *history > 0 {
		plans, err := application.History(ctx, *history)
		if err != nil {
			log.Fatalf("Failed to load history: %v", err)
		}
		for _, p := range plans {
			fmt.Printf("#%d  %d days, household %d, budget %.0f, mode %s (%s)\n",
				p.ID, p.Days, p.HouseholdSize, p.Budget, p.Mode, p.CreatedAt.Format("2006-01-02 15:04"))
		}
		return
	}

	planMode, err := planner.ParseMode(*mode)
	if err != nil {
		log.Fatalf("%v", err)
	}

	req := app.PlanRequest{
		HouseholdSize: *household,
		Days:          *days,
		Budget:        *budget,
		Mode:          planMode,
	}
	if *deselect != "" {
		for _, name := range strings.Split(*deselect, ",") {
			req.Deselected = append(req.Deselected, strings.TrimSpace(name))
		}
	}

	result, err := application.GeneratePlan(ctx, req)
	if err != nil {
		if errors.Is(err, planner.ErrNoFeasibleRecipes) {
			fmt.Fprintln(os.Stderr, "No feasible recipes with the current item selection. Remove some exclusions and try again.")
			os.Exit(1)
		}
		log.Fatalf("Plan generation failed: %v", err)
	}

	fmt.Print(telegram.FormatResult(result))
}

// buildApp wires the repositories, planner and optional advisor.
func buildApp(ctx context.Context, cfg *config.Config, db *database.DB, catalogRepo *catalog.Repository, generator *planner.Generator, log *zap.SugaredLogger) *app.App {
	planRepo := planner.NewPlanRepository(db.SQL)
	groceryRepo := shopping.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	var advisor *planner.Advisor
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Warnf("Advisor disabled: %v", err)
		} else {
			advisor = planner.NewAdvisor(gemini)
		}
	}

	return app.NewApp(catalogRepo, planRepo, groceryRepo, metricsStore, generator, advisor, log)
}
