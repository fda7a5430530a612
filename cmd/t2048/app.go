package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// loadConfig loads the game config and applies --difficulty.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyPreset(config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", cfg.Source, "four_probability", cfg.Spawn.FourProbability)
	return cfg, nil
}

// sessionSettings converts the config into what a TUI session needs.
func sessionSettings(cfg config.GameConfig, player string) (tui.Settings, error) {
	pal, err := cfg.Palette()
	if err != nil {
		return tui.Settings{}, err
	}
	return tui.Settings{
		Options:      cfg.Options(),
		Palette:      pal,
		ShareMessage: cfg.Share.Message,
		ShareURL:     cfg.Share.URL,
		Player:       player,
	}, nil
}

// openStore opens the scores database. A failure is logged and play
// continues without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the first frame from the local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// runLocal runs a TUI session on this terminal.
func runLocal(startInGame bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	settings, err := sessionSettings(cfg, flagPlayer)
	if err != nil {
		return err
	}
	settings.Clipboard = os.Stdout
	settings.Tmux = os.Getenv("TMUX") != ""

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	session := tui.NewSessionModel(store, settings, runtimeConfig(), tui.DefaultStyles(), logger)
	if startInGame {
		session = session.StartGame()
	}
	logger.Info("session started", "player", flagPlayer, "session", session.SessionID())

	if err := tui.Run(session); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
