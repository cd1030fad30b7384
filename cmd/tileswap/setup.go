package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-swap/internal/config"
	"github.com/vovakirdan/tui-swap/internal/core"
	"github.com/vovakirdan/tui-swap/internal/games/tileswap"
	"github.com/vovakirdan/tui-swap/internal/storage"
	"github.com/vovakirdan/tui-swap/internal/telemetry"
)

// Settings resolved once per invocation.
var (
	appConfig     = config.DefaultTileswapConfig()
	appPreset     config.DifficultyPreset
	traceShutdown func(context.Context) error
)

// setup loads .env, the config file and tracing before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // .env is optional
	godotenv.Load()

	flags := cmd.Flags()
	if !flags.Changed("db") {
		if env := os.Getenv("TILESWAP_DB"); env != "" {
			flagDBPath = env
		}
	}
	if flagPlayer == "" {
		flagPlayer = os.Getenv("TILESWAP_PLAYER")
	}
	if flagPlayer == "" {
		flagPlayer = os.Getenv("USER")
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	appConfig, appPreset = cfg, preset
	tileswap.SetConfig(cfg)

	if flagTrace {
		shutdown, err := telemetry.Setup(cmd.Context())
		if err != nil {
			return fmt.Errorf("tracing: %w", err)
		}
		traceShutdown = shutdown
		logger.Debug("tracing enabled")
	}
	return nil
}

// teardown flushes pending spans.
func teardown(_ *cobra.Command, _ []string) error {
	if traceShutdown == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := traceShutdown(ctx); err != nil {
		logger.Warn("could not flush traces", "error", err)
	}
	return nil
}

// runtimeConfig builds the platform config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Player = flagPlayer
	return cfg
}

// openStore opens the solves database. A failure is logged and play goes
// on without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solves database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
