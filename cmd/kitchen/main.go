// Command kitchen runs the cooking game in a desktop window.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"kitchen/internal/config"
	"kitchen/internal/game"
	"kitchen/internal/kitchen"
	"kitchen/internal/logging"
	"kitchen/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kitchen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogOutput,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.OpenSettings(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close settings", zap.Error(err))
		}
	}()
	logger.Info("settings opened", zap.String("path", cfg.SettingsPath))

	recipes, err := loadRecipes(cfg.RecipesPath)
	if err != nil {
		return err
	}

	bus := kitchen.NewEventBus()
	k := kitchen.NewDefault(bus, kitchen.Options{
		Recipes:     recipes,
		PlayingTime: cfg.PlayingTime,
		MoveSpeed:   cfg.MoveSpeed,
	})

	bindings := kitchen.NewBindingSet(store, bus)
	if err := bindings.Load(ctx); err != nil {
		// A corrupt blob should not keep the game from starting.
		logger.Warn("load bindings, using defaults", zap.Error(err))
	}

	return game.RunDesktop(ctx, game.DesktopOptions{
		Kitchen:  k,
		Bindings: bindings,
		Logger:   logger,
		Width:    cfg.WindowWidth,
		Height:   cfg.WindowHeight,
		Mute:     cfg.Mute,
	})
}

// loadRecipes reads the cutting table from path, or returns nil to keep
// the built-in table.
func loadRecipes(path string) (kitchen.RecipeBook, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recipes: %w", err)
	}
	defer f.Close()
	book, err := kitchen.LoadRecipes(f)
	if err != nil {
		return nil, fmt.Errorf("load recipes %s: %w", path, err)
	}
	return book, nil
}
