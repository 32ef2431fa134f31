package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// session holds everything a command shares: logger, score database and
// high score store.
type session struct {
	logger  *log.Logger
	logFile *os.File
	store   *storage.Store
	high    snake.HighScoreStore
	preset  config.DifficultyPreset
}

// openSession validates the global flags and opens storage. Interactive
// commands own the terminal, so they only log to ~/.snake/debug.log with
// --debug.
func openSession(interactive bool) (*session, error) {
	s := &session{}
	if err := s.openLogger(interactive); err != nil {
		return nil, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.preset = preset
	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(string(preset))

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		s.logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	s.store = store

	high, err := s.openHighScore()
	if err != nil {
		s.Close()
		return nil, err
	}
	s.high = high
	snake.SetHighScoreStore(high)

	return s, nil
}

func (s *session) openLogger(interactive bool) error {
	var w io.Writer = os.Stderr
	if interactive {
		w = io.Discard
		if flagDebug {
			path := filepath.Join(os.Getenv("HOME"), ".snake", "debug.log")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("cannot open debug log: %w", err)
			}
			s.logFile = f
			w = f
		}
	}

	s.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		s.logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// openHighScore picks the high score backend named by --high-score-backend.
func (s *session) openHighScore() (snake.HighScoreStore, error) {
	switch flagHighScoreBackend {
	case "file", "":
		f, err := storage.NewHighScoreFile(flagHighScorePath)
		if err != nil {
			return nil, err
		}
		if err := f.Init(); err != nil {
			s.logger.Warn("could not create high score file", "path", f.Path(), "error", err)
		}
		s.logger.Debug("using high score file", "path", f.Path())
		return f, nil

	case "sqlite":
		if s.store == nil {
			return nil, errors.New("the sqlite high score backend needs the scores database")
		}
		return s.store.HighScores(snake.GameID), nil

	default:
		return nil, fmt.Errorf("unknown high score backend %q (want file or sqlite)", flagHighScoreBackend)
	}
}

// highScore reads the stored high score for display; failures read as 0.
func (s *session) highScore() int {
	v, err := s.high.Load()
	if err != nil {
		s.logger.Debug("high score unavailable", "error", err)
		return 0
	}
	return v
}

// Close releases the database and the log file.
func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// runtimeConfig builds the runtime config from the terminal size and --seed.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
