package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/udisondev/armygo/internal/army"
	"github.com/udisondev/armygo/internal/config"
	"github.com/udisondev/armygo/internal/data"
	"github.com/udisondev/armygo/internal/db"
)

const ConfigPath = "config/armyserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// .env overrides are optional
	_ = godotenv.Load()

	cfgPath := ConfigPath
	if p := os.Getenv("ARMYGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("armyserver starting", "log_level", cfg.LogLevel)

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// Build the reference snapshot. Loaded once; changing reference data
	// means a redeploy, not live mutation.
	var snap *data.Snapshot
	switch cfg.ReferenceSource {
	case "builtin":
		snap, err = data.LoadDefault()
	default:
		if err := db.SeedReference(ctx, database.Pool()); err != nil {
			return fmt.Errorf("seeding reference tables: %w", err)
		}
		snap, err = db.NewReferenceRepository(database.Pool()).LoadSnapshot(ctx)
	}
	if err != nil {
		return fmt.Errorf("loading reference snapshot: %w", err)
	}

	validator := army.NewValidator(snap, army.Limits{GuideTextLimit: cfg.GuideTextLimit})
	// An empty army on the snapshot's own maximum tier must always pass;
	// anything else means the snapshot and validator are miswired.
	if _, err := validator.Validate(army.SavePayload{TownHall: snap.MaxTier()}); err != nil {
		return fmt.Errorf("validator self-check: %w", err)
	}

	slog.Info("armyserver ready", "max_town_hall", snap.MaxTier())

	<-ctx.Done()
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
