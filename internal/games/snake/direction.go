package snake

import (
	"sync/atomic"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
// The zero value is DirStopped.
type Direction int32

const (
	DirStopped Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direction pointing the other way along the same axis.
// DirStopped is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirStopped
	}
}

// Delta returns the unit offset for one step in this direction.
// Up is +Y.
func (d Direction) Delta() core.Vec {
	switch d {
	case DirUp:
		return core.V(0, 1)
	case DirDown:
		return core.V(0, -1)
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	default:
		return core.Vec{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirStopped:
		return "stopped"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromAction maps a steering action to a direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirStopped, false
	}
}

// Latch holds the current movement direction and rejects 180° turns.
// A turn is checked against both the pending direction and the direction
// of the last step, so several requests between two steps cannot add up to
// a reversal. It is safe to write from an input goroutine while the game
// loop reads it.
type Latch struct {
	dir   atomic.Int32
	moved atomic.Int32 // direction of the last step
}

// Request sets the direction unless it reverses the current one or the last
// step. Rejected requests are silent no-ops; the return value reports
// acceptance.
func (l *Latch) Request(d Direction) bool {
	for {
		cur := Direction(l.dir.Load())
		if d != DirStopped && (d == cur.Opposite() || d == l.Moved().Opposite()) {
			return false
		}
		if l.dir.CompareAndSwap(int32(cur), int32(d)) {
			return true
		}
	}
}

// Current returns the latched direction.
func (l *Latch) Current() Direction {
	return Direction(l.dir.Load())
}

// Moved returns the direction of the last step, DirStopped before the first.
func (l *Latch) Moved() Direction {
	return Direction(l.moved.Load())
}

// commit records d as the direction of the step just taken.
func (l *Latch) commit(d Direction) {
	l.moved.Store(int32(d))
}

// stop clears the latch to DirStopped unconditionally.
func (l *Latch) stop() {
	l.dir.Store(int32(DirStopped))
	l.moved.Store(int32(DirStopped))
}
