package snake

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBodyAdvanceScenario(t *testing.T) {
	b := NewBody(core.V(0, 100))
	b.RequestDirection(DirUp)

	for range 3 {
		b.Advance(20)
	}

	if got := b.Head(); got != core.V(0, 160) {
		t.Errorf("Head() = %v, expected (0,160)", got)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", b.Len())
	}
}

func TestBodyStoppedDoesNotMove(t *testing.T) {
	b := NewBody(core.V(0, 100))
	b.Advance(20)
	if got := b.Head(); got != core.V(0, 100) {
		t.Errorf("stopped body moved to %v", got)
	}
}

func TestBodyAdvanceShifts(t *testing.T) {
	b := NewBody(core.V(0, 0))
	b.segs = []core.Vec{core.V(0, 0), core.V(-20, 0), core.V(-40, 0)}
	b.RequestDirection(DirRight)
	b.RequestDirection(DirUp)

	b.Advance(20)

	expected := []core.Vec{core.V(0, 20), core.V(0, 0), core.V(-20, 0)}
	if got := b.Segments(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Segments() = %v, expected %v", got, expected)
	}
}

func TestBodyAdvancePreservesLength(t *testing.T) {
	b := NewBody(core.V(0, 0))
	b.segs = []core.Vec{core.V(0, 0), core.V(-20, 0), core.V(-40, 0), core.V(-60, 0)}
	b.RequestDirection(DirRight)

	dirs := []Direction{DirRight, DirUp, DirUp, DirLeft, DirDown, DirLeft}
	for _, d := range dirs {
		b.RequestDirection(d)
		b.Advance(20)
		if b.Len() != 4 {
			t.Fatalf("Len() = %d after advancing %s, expected 4", b.Len(), d)
		}
	}
}

func TestBodyGrowAfterAdvance(t *testing.T) {
	b := NewBody(core.V(0, 0))
	b.segs = []core.Vec{core.V(0, 0), core.V(-20, 0)}
	b.RequestDirection(DirRight)

	b.Advance(20)
	b.Grow()

	expected := []core.Vec{core.V(20, 0), core.V(0, 0), core.V(-20, 0)}
	if got := b.Segments(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Segments() = %v, expected %v", got, expected)
	}

	// Growth applies once
	b.Advance(20)
	if b.Len() != 3 {
		t.Errorf("Len() = %d after a plain advance, expected 3", b.Len())
	}
}

func TestBodyGrowBeforeAdvance(t *testing.T) {
	b := NewBody(core.V(0, 0))
	b.RequestDirection(DirRight)

	b.Grow()
	if b.Len() != 1 {
		t.Fatalf("Grow() before Advance changed length to %d", b.Len())
	}

	b.Advance(20)
	expected := []core.Vec{core.V(20, 0), core.V(0, 0)}
	if got := b.Segments(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Segments() = %v, expected %v", got, expected)
	}
}

func TestBodyGrowWhileStopped(t *testing.T) {
	b := NewBody(core.V(0, 0))
	b.Advance(20)
	b.Grow()

	if b.Len() != 1 {
		t.Fatalf("Len() = %d, growth should wait for movement", b.Len())
	}

	b.RequestDirection(DirUp)
	b.Advance(20)
	if b.Len() != 2 {
		t.Errorf("Len() = %d, expected 2 once moving", b.Len())
	}
}

func TestBodyReset(t *testing.T) {
	start := core.V(0, 100)
	b := NewBody(start)
	b.RequestDirection(DirLeft)
	for range 5 {
		b.Advance(20)
		b.Grow()
	}
	b.Grow() // pending growth must not survive a reset

	b.Reset()

	if b.Len() != 1 {
		t.Errorf("Len() = %d after Reset, expected 1", b.Len())
	}
	if b.Head() != start {
		t.Errorf("Head() = %v after Reset, expected %v", b.Head(), start)
	}
	if b.Direction() != DirStopped {
		t.Errorf("Direction() = %s after Reset, expected stopped", b.Direction())
	}

	b.RequestDirection(DirUp)
	b.Advance(20)
	if b.Len() != 1 {
		t.Errorf("pending growth survived Reset, Len() = %d", b.Len())
	}
}

func TestBodySegmentsIsCopy(t *testing.T) {
	b := NewBody(core.V(0, 0))
	segs := b.Segments()
	segs[0] = core.V(99, 99)
	if b.Head() != core.V(0, 0) {
		t.Error("mutating Segments() result changed the body")
	}
}

func TestBodyHitsItself(t *testing.T) {
	head := core.V(0, 0)
	tests := []struct {
		name     string
		segs     []core.Vec
		expected bool
	}{
		{"head only", []core.Vec{head}, false},
		{"two stacked", []core.Vec{head, head}, false},
		{"window sized stacked", []core.Vec{head, head, head}, false},
		{"fourth on head", []core.Vec{head, core.V(20, 0), core.V(20, 20), head}, true},
		{"fourth adjacent", []core.Vec{head, core.V(20, 0), core.V(20, 20), core.V(0, 20)}, false},
		{"fifth close", []core.Vec{head, core.V(20, 0), core.V(40, 0), core.V(40, 20), core.V(10, 5)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(head)
			b.segs = tc.segs
			if got := b.HitsItself(3, 20); got != tc.expected {
				t.Errorf("HitsItself(3, 20) = %v, expected %v", got, tc.expected)
			}
		})
	}
}
