package tui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var errUnreadable = errors.New("unreadable")

// brokenStore never loads.
type brokenStore struct{}

func (brokenStore) Load() (int, error) { return 0, errUnreadable }
func (brokenStore) Save(int) error     { return nil }

func newTestModel(t *testing.T, store *storage.Store, hs snake.HighScoreStore, logs *bytes.Buffer) (Model, *snake.Game) {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	cfg.Timing.GameOverPause = 0
	game := snake.NewWithConfig(cfg, hs)
	logger := log.New(logs)
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 9}, logger)
	m.Init()
	return m, game
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelTickAppliesKeys(t *testing.T) {
	var logs bytes.Buffer
	m, game := newTestModel(t, nil, nil, &logs)

	m = step(t, m, runeKey('w'))
	m = step(t, m, TickMsg(time.Now()))

	if got := game.Head(); got != core.V(0, 120) {
		t.Errorf("Head() = %v, expected (0,120)", got)
	}
	if len(m.inputFrame.Presses) != 0 {
		t.Error("input frame not cleared after tick")
	}
}

func TestModelTickReschedules(t *testing.T) {
	var logs bytes.Buffer
	m, _ := newTestModel(t, nil, nil, &logs)

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
}

func TestModelRecordsFinishedGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var logs bytes.Buffer
	m, game := newTestModel(t, store, nil, &logs)

	// Eat the food at the origin, then run into the bottom wall.
	m = step(t, m, runeKey('s'))
	for range 20 {
		m = step(t, m, TickMsg(time.Now()))
		if m.GamesPlayed() > 0 {
			break
		}
	}

	if m.GamesPlayed() != 1 {
		t.Fatalf("GamesPlayed() = %d, expected 1\n%s", m.GamesPlayed(), game.DebugState())
	}
	scores, err := store.TopScores(snake.GameID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score < 10 || scores[0].Cause != "wall" {
		t.Errorf("recorded scores = %+v", scores)
	}
	if !strings.Contains(logs.String(), "game over") {
		t.Errorf("expected a game over log line, got %q", logs.String())
	}
}

func TestModelReportsStoreErrorOnce(t *testing.T) {
	var logs bytes.Buffer
	m, _ := newTestModel(t, nil, brokenStore{}, &logs)

	for range 3 {
		m = step(t, m, TickMsg(time.Now()))
	}

	if n := strings.Count(logs.String(), "high score store unavailable"); n != 1 {
		t.Errorf("store error logged %d times, expected 1:\n%s", n, logs.String())
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	var logs bytes.Buffer
	m, game := newTestModel(t, nil, nil, &logs)

	m = step(t, m, runeKey('w'))
	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if got := game.Head(); got != core.V(0, 120) {
		t.Errorf("resize reset the game: Head() = %v", got)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}

	m = step(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("expected too-small overlay after shrinking")
	}
}

func TestModelQuit(t *testing.T) {
	var logs bytes.Buffer
	m, _ := newTestModel(t, nil, nil, &logs)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q did not return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorDefault)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestPrintSurface(t *testing.T) {
	var out bytes.Buffer
	game := snake.NewWithConfig(config.DefaultSnakeConfig(), nil)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	surface := NewPrintSurface(&out, 80, 24)
	surface.Update(game)

	if !strings.HasPrefix(out.String(), "\x1b[H") {
		t.Error("frame should start with cursor-home")
	}
	if !strings.Contains(out.String(), "Score: 0") {
		t.Error("frame is missing the score line")
	}
}
