package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Body is the ordered sequence of snake segments, head at index 0.
// It always holds at least the head. Mutation goes through Advance, Grow and
// Reset only.
type Body struct {
	latch Latch
	segs  []core.Vec
	start core.Vec

	// pending counts growth requested before the next Advance.
	pending int

	// dropped is the tail released by the most recent Advance. Grow in the
	// same tick puts it back.
	dropped    core.Vec
	hasDropped bool
}

// NewBody creates a one-segment body at start, stopped.
func NewBody(start core.Vec) *Body {
	return &Body{
		segs:  []core.Vec{start},
		start: start,
	}
}

// RequestDirection forwards to the direction latch.
func (b *Body) RequestDirection(d Direction) bool {
	return b.latch.Request(d)
}

// Direction returns the latched direction.
func (b *Body) Direction() Direction {
	return b.latch.Current()
}

// Head returns the head position.
func (b *Body) Head() core.Vec {
	return b.segs[0]
}

// Len returns the number of segments including the head.
func (b *Body) Len() int {
	return len(b.segs)
}

// Segments returns a copy of all positions, head first.
func (b *Body) Segments() []core.Vec {
	return append([]core.Vec(nil), b.segs...)
}

// Advance moves the head one step along the latched direction. Every other
// segment takes its predecessor's previous position. The old tail is released
// unless growth is pending. A stopped body does not move.
func (b *Body) Advance(step int) {
	b.hasDropped = false

	dir := b.latch.Current()
	if dir == DirStopped {
		return
	}

	newHead := b.segs[0].Add(dir.Delta().Scale(step))
	n := len(b.segs)

	if b.pending > 0 {
		b.pending--
		b.segs = append(b.segs, core.Vec{})
		copy(b.segs[1:], b.segs[:n])
	} else {
		b.dropped = b.segs[n-1]
		b.hasDropped = true
		copy(b.segs[1:], b.segs[:n-1])
	}
	b.segs[0] = newHead
	b.latch.commit(dir)
}

// Grow adds one segment. Called after Advance in the same tick it restores the
// tail that Advance released; otherwise the next Advance keeps its tail.
func (b *Body) Grow() {
	if b.hasDropped {
		b.segs = append(b.segs, b.dropped)
		b.hasDropped = false
		return
	}
	b.pending++
}

// Reset truncates the body to the head, moves it to the start position and
// stops it.
func (b *Body) Reset() {
	b.segs = b.segs[:1]
	b.segs[0] = b.start
	b.latch.stop()
	b.pending = 0
	b.hasDropped = false
}

// HitsItself reports whether any segment at index >= window lies closer than
// threshold to the head. Bodies no longer than window never collide.
func (b *Body) HitsItself(window, threshold int) bool {
	head := b.segs[0]
	for i := max(window, 1); i < len(b.segs); i++ {
		if b.segs[i].Within(head, threshold) {
			return true
		}
	}
	return false
}
