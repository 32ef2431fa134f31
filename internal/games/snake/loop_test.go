package snake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type countingSurface struct {
	frames []core.Vec
}

func (s *countingSurface) Update(g *Game) {
	s.frames = append(s.frames, g.Head())
}

func TestLoopOrdering(t *testing.T) {
	g := newTestGame(t, nil)
	g.RequestDirection(DirUp)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sleeps []time.Duration
	surface := &countingSurface{}
	var terminals int

	loop := &Loop{
		Game:    g,
		Surface: surface,
		Sleep: func(ctx context.Context, d time.Duration) error {
			sleeps = append(sleeps, d)
			if len(sleeps) == 7 {
				cancel()
				return ctx.Err()
			}
			return nil
		},
		OnTick: func(res TickResult, score int) {
			if res.Terminal() {
				terminals++
			}
		},
	}

	err := loop.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}

	tick := g.TickDelay()
	pause := g.GameOverPause()
	expected := []time.Duration{tick, tick, tick, tick, pause, tick, tick}
	if len(sleeps) != len(expected) {
		t.Fatalf("sleeps = %v, expected %v", sleeps, expected)
	}
	for i := range expected {
		if sleeps[i] != expected[i] {
			t.Errorf("sleep %d = %v, expected %v", i, sleeps[i], expected[i])
		}
	}

	// A frame is flushed before each tick, never during the pause.
	expectedFrames := []core.Vec{
		core.V(0, 100), core.V(0, 120), core.V(0, 140), core.V(0, 160), core.V(0, 180), core.V(0, 100),
	}
	if len(surface.frames) != len(expectedFrames) {
		t.Fatalf("frames = %v, expected %v", surface.frames, expectedFrames)
	}
	for i := range expectedFrames {
		if surface.frames[i] != expectedFrames[i] {
			t.Errorf("frame %d head = %v, expected %v", i, surface.frames[i], expectedFrames[i])
		}
	}

	if terminals != 1 {
		t.Errorf("terminals = %d, expected 1", terminals)
	}
	if s := g.Snapshot(); s.Deaths != 1 || s.LastCause != CauseWall {
		t.Errorf("Deaths = %d, LastCause = %q", s.Deaths, s.LastCause)
	}
}

func TestLoopStopsWhenCancelled(t *testing.T) {
	g := newTestGame(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	surface := &countingSurface{}
	err := (&Loop{Game: g, Surface: surface}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if len(surface.frames) != 0 {
		t.Errorf("rendered %d frames after cancellation", len(surface.frames))
	}
}

func TestLoopUsesController(t *testing.T) {
	g := newTestGame(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks int
	loop := &Loop{
		Game:       g,
		Controller: Autopilot{},
		Sleep: func(ctx context.Context, d time.Duration) error {
			return ctx.Err()
		},
		OnTick: func(res TickResult, score int) {
			ticks++
			if ticks == 5 {
				cancel()
			}
		},
	}
	loop.Run(ctx)

	// Food starts at the origin, five steps below the head.
	if got := g.Head(); got != core.V(0, 0) {
		t.Errorf("Head() = %v, expected the autopilot to reach (0,0)", got)
	}
	if s := g.Snapshot(); s.Score != 10 {
		t.Errorf("Score = %d, expected 10", s.Score)
	}
}

func TestSleepContext(t *testing.T) {
	if err := SleepContext(context.Background(), time.Millisecond); err != nil {
		t.Errorf("SleepContext() = %v, expected nil", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := SleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("SleepContext() = %v, expected context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Error("SleepContext() ignored cancellation")
	}
}
