package main

import (
	"context"
	"os/signal"
	"syscall"

	"food-budget-planner/internal/app"
	"food-budget-planner/internal/catalog"
	"food-budget-planner/internal/config"
	"food-budget-planner/internal/database"
	"food-budget-planner/internal/llm"
	"food-budget-planner/internal/logger"
	"food-budget-planner/internal/metrics"
	"food-budget-planner/internal/planner"
	"food-budget-planner/internal/shopping"
	"food-budget-planner/internal/telegram"
)

func main() {
	log := logger.New("planner-bot")

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateForBot(); err != nil {
		log.Fatalf("Invalid bot configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	catalogRepo := catalog.NewRepository(db.SQL)
	if err := catalogRepo.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	planRepo := planner.NewPlanRepository(db.SQL)
	groceryRepo := shopping.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	var advisor *planner.Advisor
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Warnf("Advisor disabled: %v", err)
		} else {
			defer gemini.Close()
			advisor = planner.NewAdvisor(gemini)
		}
	}

	application := app.NewApp(catalogRepo, planRepo, groceryRepo, metricsStore, planner.NewGenerator(), advisor, log)

	bot, err := telegram.NewBot(cfg, application, metricsStore, log)
	if err != nil {
		log.Fatalf("Failed to start telegram bot: %v", err)
	}

	log.Info("Bot is running. Press Ctrl+C to stop.")
	if err := bot.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Bot stopped: %v", err)
	}
}
