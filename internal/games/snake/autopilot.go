package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// steerOrder is the tie-break order for equally good moves.
var steerOrder = []Direction{DirUp, DirRight, DirDown, DirLeft}

// Autopilot is a greedy Controller: it heads for the food and only picks
// moves that survive the next tick when such a move exists.
type Autopilot struct{}

// Steer requests the direction chosen by NextDirection.
func (Autopilot) Steer(g *Game) {
	g.RequestDirection(NextDirection(g))
}

// NextDirection picks a legal direction for the next tick. Safe moves beat
// unsafe ones, then shorter distance to the food wins, then the current
// direction, then steerOrder.
func NextDirection(g *Game) Direction {
	cur := g.Direction()
	food := g.Food()

	best := cur
	bestSafe := false
	bestDist := -1.0

	for _, d := range candidates(cur) {
		next := g.Head().Add(d.Delta().Scale(g.cfg.Movement.Step))
		safe := g.survives(next)
		dist := next.Distance(food)

		better := false
		switch {
		case bestDist < 0:
			better = true
		case safe != bestSafe:
			better = safe
		case dist < bestDist:
			better = true
		}
		if better {
			best, bestSafe, bestDist = d, safe, dist
		}
	}
	return best
}

// candidates lists the directions the latch accepts from cur, current
// direction first.
func candidates(cur Direction) []Direction {
	out := make([]Direction, 0, len(steerOrder))
	if cur != DirStopped {
		out = append(out, cur)
	}
	for _, d := range steerOrder {
		if d != cur && d != cur.Opposite() {
			out = append(out, d)
		}
	}
	return out
}

// survives reports whether moving the head to next avoids the wall and the
// body on the following tick. The tail is assumed to move out of the way.
func (g *Game) survives(next core.Vec) bool {
	if !g.Bounds().Contains(next) {
		return false
	}
	segs := g.body.segs
	// After the move, old segment i sits at index i+1.
	for i := max(g.cfg.Collision.ExclusionWindow-1, 0); i < len(segs)-1; i++ {
		if segs[i].Within(next, g.cfg.Collision.SelfThreshold) {
			return false
		}
	}
	return true
}
