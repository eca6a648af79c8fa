package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/platform/tui"
	"github.com/vovakirdan/tile2048/internal/storage"
)

// app bundles what every command needs after flags are parsed.
type app struct {
	cfg    config.T2048Config
	logger *log.Logger
	store  *storage.Store
}

// newApp loads config, applies flag overrides, builds the logger and opens storage.
func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagSeed != 0 {
		cfg.Board.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "t2048",
		Level:           level,
	})

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	store.SetLogger(logger)

	logger.Debug("config loaded", "db", cfg.Storage.Path, "variant", cfg.Board.Variant, "seed", cfg.Board.Seed)

	return &app{cfg: cfg, logger: logger, store: store}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("could not close database", "error", err)
	}
}

// source returns the random source for this invocation.
func (a *app) source() t2048.Source {
	return t2048.NewSource(a.cfg.Board.Seed)
}

// loadGame fetches a saved game, treating a missing row as an error.
func (a *app) loadGame(id int64) (*storage.GameRecord, error) {
	rec, err := a.store.LoadGame(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("game %d not found", id)
	}
	return rec, nil
}

// loadSession restores a saved game. The grid gets a fresh source; spawns
// after a restore do not continue the earlier random sequence.
func (a *app) loadSession(id int64) (*t2048.Session, error) {
	rec, err := a.loadGame(id)
	if err != nil {
		return nil, err
	}

	g, err := t2048.FromValues(rec.Board, a.source())
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", id, err)
	}
	return t2048.ResumeSession(rec.Variant, g, rec.Moves), nil
}

// draw renders the session to stdout, styled when stdout is a terminal.
func draw(s *t2048.Session) {
	w, h := t2048.ScreenDimensions(s)
	screen := core.NewScreen(w, h)
	s.Render(screen)
	fmt.Println(tui.Output(screen, os.Stdout.Fd()))
}

func parseGameID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid game id %q", arg)
	}
	return id, nil
}
