package snake

import (
	"context"
	"time"
)

// Surface receives one frame per tick.
type Surface interface {
	Update(g *Game)
}

// Controller steers the snake right before the body advances.
type Controller interface {
	Steer(g *Game)
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Loop drives a Game in real time without a terminal UI. Every iteration
// flushes a frame, ticks once and sleeps for the tick delay. A terminal
// condition blocks for the game-over pause before the restart; nothing is
// rendered and no steering happens in between.
type Loop struct {
	Game    *Game
	Surface Surface

	// Controller is optional. Without one the latch is only changed by
	// concurrent Game.RequestDirection calls.
	Controller Controller

	// Sleep defaults to SleepContext.
	Sleep SleepFunc

	// OnTick is called after every tick with its result and the score
	// reached before any restart.
	OnTick func(res TickResult, score int)
}

// Run loops until ctx is cancelled and returns ctx's error.
func (l *Loop) Run(ctx context.Context) error {
	sleep := l.Sleep
	if sleep == nil {
		sleep = SleepContext
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if l.Surface != nil {
			l.Surface.Update(l.Game)
		}
		if l.Controller != nil {
			l.Controller.Steer(l.Game)
		}

		res := l.Game.Tick()
		if l.OnTick != nil {
			l.OnTick(res, l.Game.ledger.Current())
		}

		if res.Terminal() {
			l.Game.deaths++
			l.Game.cause = res.Cause
			if err := sleep(ctx, l.Game.GameOverPause()); err != nil {
				return err
			}
			l.Game.Restart()
		}

		if err := sleep(ctx, l.Game.TickDelay()); err != nil {
			return err
		}
	}
}

// SleepContext waits for d, returning early with ctx's error if it is
// cancelled first.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
