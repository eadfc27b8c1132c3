package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"food-budget-planner/internal/app"
	"food-budget-planner/internal/config"
	"food-budget-planner/internal/metrics"
	"food-budget-planner/internal/planner"
)

const helpText = `Commands:
/plan <household> <days> <budget> [mode] - generate a meal plan and grocery list
  mode is one of balanced (default), economic, variety
/history - recent plans
/status - bot health
/help - this message`

// Bot wraps the Telegram API around the planning application.
type Bot struct {
	api          *tgbotapi.BotAPI
	app          *app.App
	metricsStore *metrics.Store
	cfg          *config.Config
	log          *zap.SugaredLogger
}

// NewBot initializes the Telegram Bot with long polling.
func NewBot(cfg *config.Config, application *app.App, metricsStore *metrics.Store, log *zap.SugaredLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Infow("authorized on telegram", "account", api.Self.UserName)

	return &Bot{
		api:          api,
		app:          application,
		metricsStore: metricsStore,
		cfg:          cfg,
		log:          log,
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.TelegramAllowUserID {
		b.log.Warnw("unauthorized access attempt", "user_id", msg.From.ID, "username", msg.From.UserName)
		return
	}

	var reply string
	switch msg.Command() {
	case "start", "help":
		reply = helpText
	case "plan":
		reply = b.handlePlan(ctx, msg.CommandArguments())
	case "history":
		reply = b.handleHistory(ctx)
	case "status":
		reply = b.handleStatus(ctx)
	default:
		reply = "Unknown command. " + helpText
	}

	b.send(msg.Chat.ID, reply)
}

func (b *Bot) handlePlan(ctx context.Context, args string) string {
	req, err := ParsePlanCommand(args)
	if err != nil {
		return fmt.Sprintf("Could not read that: %v\n\nUsage: /plan <household> <days> <budget> [mode]", err)
	}

	result, err := b.app.GeneratePlan(ctx, req)
	if err != nil {
		if errors.Is(err, planner.ErrNoFeasibleRecipes) {
			return "No feasible recipes with the current item selection. Select more catalog items and try again."
		}
		b.log.Errorw("plan generation failed", "err", err)
		return fmt.Sprintf("Plan generation failed: %v", err)
	}
	return FormatResult(result)
}

func (b *Bot) handleHistory(ctx context.Context) string {
	plans, err := b.app.History(ctx, 5)
	if err != nil {
		b.log.Errorw("failed to load plan history", "err", err)
		return "Could not load plan history."
	}
	if len(plans) == 0 {
		return "No plans generated yet."
	}

	var sb strings.Builder
	sb.WriteString("Recent plans:\n")
	for _, p := range plans {
		fmt.Fprintf(&sb, "#%d  %d days, household %d, budget %.0f, mode %s (%s)\n",
			p.ID, p.Days, p.HouseholdSize, p.Budget, p.Mode, p.CreatedAt.Format("2006-01-02"))
	}
	return sb.String()
}

func (b *Bot) handleStatus(ctx context.Context) string {
	health := metrics.GetSysHealth(b.cfg.DatabasePath)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Alloc: %d MB | Sys: %d MB | GC: %d | Goroutines: %d | DB: %s\n",
		health.AllocMB, health.SysMB, health.NumGC, health.Goroutines, health.DBSize)

	usage, err := b.metricsStore.GetDailyUsage(ctx, 7)
	if err != nil {
		b.log.Errorw("failed to load usage metrics", "err", err)
		return sb.String()
	}
	for _, u := range usage {
		fmt.Fprintf(&sb, "%s: %d runs, %.0f allocated\n", u.Date, u.Runs, u.TotalSpend)
	}
	return sb.String()
}

func (b *Bot) send(chatID int64, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(reply); err != nil {
		b.log.Errorw("failed to send telegram message", "err", err)
	}
}

// ParsePlanCommand parses "/plan <household> <days> <budget> [mode]"
// arguments into a request.
func ParsePlanCommand(args string) (app.PlanRequest, error) {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		return app.PlanRequest{}, fmt.Errorf("expected household, days and budget")
	}

	household, err := strconv.Atoi(fields[0])
	if err != nil {
		return app.PlanRequest{}, fmt.Errorf("household size %q is not a number", fields[0])
	}
	days, err := strconv.Atoi(fields[1])
	if err != nil {
		return app.PlanRequest{}, fmt.Errorf("days %q is not a number", fields[1])
	}
	budget, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return app.PlanRequest{}, fmt.Errorf("budget %q is not a number", fields[2])
	}

	mode := planner.ModeBalanced
	if len(fields) > 3 {
		mode, err = planner.ParseMode(fields[3])
		if err != nil {
			return app.PlanRequest{}, err
		}
	}

	return app.PlanRequest{
		HouseholdSize: household,
		Days:          days,
		Budget:        budget,
		Mode:          mode,
	}, nil
}

// FormatResult renders a plan result as a Telegram-friendly text block.
func FormatResult(result *app.PlanResult) string {
	var sb strings.Builder

	sb.WriteString("Meal plan:\n")
	for _, day := range result.Plan.Days {
		fmt.Fprintf(&sb, "Day %d (%.0f)\n  B: %s\n  L: %s\n  D: %s\n",
			day.Day, day.DayCost, day.Breakfast.Name, day.Lunch.Name, day.Dinner.Name)
	}

	sb.WriteString("\nGrocery list:\n")
	for _, item := range result.Groceries {
		fmt.Fprintf(&sb, "%s - %d %s @ %.0f = %.0f\n",
			item.Name, item.Quantity, item.Unit, item.UnitPrice, item.TotalCost)
	}

	fmt.Fprintf(&sb, "\nPlan total: %.2f | Groceries: %.2f | Daily avg: %.2f | Per person/day: %.2f\n",
		result.Plan.TotalCost, result.GroceryTotal, result.DailyAvgCost, result.CostPerPersonPerDay)

	if result.Advice != "" {
		sb.WriteString("\n" + result.Advice + "\n")
	}
	return sb.String()
}
