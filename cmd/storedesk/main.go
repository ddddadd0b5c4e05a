// Command storedesk runs the store-management simulation headless: the day
// scheduler drives the economy while state changes stream to the log and the
// history database.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/talgya/storedesk/internal/config"
	"github.com/talgya/storedesk/internal/entropy"
	"github.com/talgya/storedesk/internal/recorder"
	"github.com/talgya/storedesk/internal/scheduler"
	"github.com/talgya/storedesk/internal/sim"
	"github.com/talgya/storedesk/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	// ── History database ─────────────────────────────────────────────
	var rec recorder.Recorder = recorder.Noop{}
	if cfg.Database.SQLitePath != "" {
		os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0755)
		sqliteRec, err := recorder.OpenSQLite(cfg.Database.SQLitePath)
		if err != nil {
			slog.Error("failed to open history database", "error", err)
			os.Exit(1)
		}
		defer sqliteRec.Close()
		rec = sqliteRec
	}

	// ── Session ──────────────────────────────────────────────────────
	session := sim.NewSession(cfg, entropy.NewSystemSource())
	state := session.State()

	session.SetActionHook(func(name string, res store.ActionResult) {
		if err := rec.RecordAction(&recorder.ActionRecord{
			Day:     state.CurrentDay(),
			Action:  name,
			Success: res.OK,
			Message: res.Message,
		}); err != nil {
			slog.Error("record action failed", "action", name, "error", err)
		}
	})

	slog.Info("session opened",
		"store", cfg.Store.Name,
		"niche", cfg.Store.Niche,
		"cash", humanize.CommafWithDigits(state.Cash(), 2),
		"stock", state.Stock(),
		"price", state.Price(),
	)

	// ── Scheduler ────────────────────────────────────────────────────
	done := make(chan string, 1)

	daySched, err := scheduler.New(cfg.Schedule.SecondsPerDay, state.Paused, func() {
		summary := session.ResolveDay()
		if err := rec.RecordDay(&recorder.DayRecord{
			Summary:         summary,
			Cash:            state.Cash(),
			Debt:            state.Debt(),
			Stock:           state.Stock(),
			ReputationScore: session.ReputationScore(),
			ReputationTier:  string(state.Reputation()),
		}); err != nil {
			slog.Error("record day failed", "day", summary.Day, "error", err)
		}

		switch n := state.ConsecutiveNegativeDays(); n {
		case 1:
			slog.Warn("cash negative", "days_to_bankruptcy", 2)
		case 2:
			slog.Warn("cash negative", "days_to_bankruptcy", 1)
		}
	})
	if err != nil {
		slog.Error("failed to build scheduler", "error", err)
		os.Exit(1)
	}

	unsubGameOver := state.Subscribe(store.TopicGameOver, func() {
		select {
		case done <- "bankruptcy":
		default:
		}
	})
	defer unsubGameOver()

	unsubVictory := state.Subscribe(store.TopicVictory, func() {
		select {
		case done <- "victory":
		default:
		}
	})
	defer unsubVictory()

	daySched.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var ending string
	select {
	case sig := <-sigCh:
		slog.Info("received signal, shutting down", "signal", sig)
		ending = "interrupted"
	case ending = <-done:
	}
	daySched.Halt()

	fmt.Printf("\nSession over: %s.\n", ending)
	fmt.Printf("Days survived: %d\n", state.CurrentDay())
	fmt.Printf("Final cash: $%s\n", humanize.CommafWithDigits(state.Cash(), 2))
	fmt.Printf("Total revenue: $%s\n", humanize.CommafWithDigits(state.TotalRevenue(), 2))
	if ending == "bankruptcy" {
		fmt.Println("Your business has failed. Restart to try again.")
	}
}
