package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/relationship-game/internal/config"
	"github.com/tatianab/relationship-game/internal/engine"
	"github.com/tatianab/relationship-game/internal/logging"
	"github.com/tatianab/relationship-game/internal/models"
	"github.com/tatianab/relationship-game/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	var narrator engine.Narrator = engine.StaticNarrator{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := engine.NewGeminiNarrator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Warn("gemini unavailable, using built-in dialogue", "err", err)
		} else {
			defer gemini.Close()
			narrator = gemini
		}
	}

	store := models.NewSaveFile(cfg.SavePath())
	session := engine.NewSession(store, engine.NewResolver(engine.NewRand(cfg.Seed), narrator), logger)
	logger.Info("session started", "save", cfg.SavePath(), "characters", len(session.Roster()), "day", session.Day())

	if err := tui.Run(session); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
