package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, -4)
	b := V(-1, 2)

	if got := a.Add(b); got != V(2, -2) {
		t.Errorf("Add() = %v, expected (2, -2)", got)
	}
	if got := a.Sub(b); got != V(4, -6) {
		t.Errorf("Sub() = %v, expected (4, -6)", got)
	}
	if got := b.Scale(20); got != V(-20, 40) {
		t.Errorf("Scale() = %v, expected (-20, 40)", got)
	}
}

func TestVecDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(0, 100), V(0, 100), 0},
		{"horizontal", V(0, 0), V(20, 0), 20},
		{"vertical", V(0, 0), V(0, -20), 20},
		{"pythagorean", V(0, 0), V(3, 4), 5},
		{"diagonal step", V(0, 0), V(20, 20), math.Sqrt(800)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Distance(tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			// Also test symmetry
			if back := tc.b.Distance(tc.a); math.Abs(back-got) > 1e-9 {
				t.Errorf("Distance() (reversed) = %f, expected %f", back, got)
			}
		})
	}
}

func TestVecWithin(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		r        int
		expected bool
	}{
		{"inside radius", V(0, 0), V(5, 5), 20, true},
		{"exactly at radius is outside", V(0, 0), V(20, 0), 20, false},
		{"far away", V(0, 0), V(100, 0), 20, false},
		{"diagonal neighbour", V(0, 0), V(10, 10), 20, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Within(tc.b, tc.r); got != tc.expected {
				t.Errorf("Within(%v, %d) = %v, expected %v", tc.b, tc.r, got, tc.expected)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := BoundsFor(760, 360)
	if b.XLimit != 380 || b.YLimit != 180 {
		t.Fatalf("BoundsFor() = %+v, expected {380 180}", b)
	}

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"origin", V(0, 0), true},
		{"corner inclusive", V(380, -180), true},
		{"right of edge", V(400, 0), false},
		{"below edge", V(0, -200), false},
		{"left edge", V(-380, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
