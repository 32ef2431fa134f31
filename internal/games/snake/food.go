package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single item the snake chases.
type Food struct {
	pos  core.Vec
	home core.Vec
}

// NewFood creates food at its home position.
func NewFood(home core.Vec) *Food {
	return &Food{pos: home, home: home}
}

// Position returns where the food currently is.
func (f *Food) Position() core.Vec {
	return f.pos
}

// Relocate moves the food to a uniformly random integer position within
// bounds. The snake's body is not excluded.
func (f *Food) Relocate(rng *rand.Rand, b core.Bounds) core.Vec {
	f.pos = core.V(
		rng.Intn(2*b.XLimit+1)-b.XLimit,
		rng.Intn(2*b.YLimit+1)-b.YLimit,
	)
	return f.pos
}

// Reset moves the food back home.
func (f *Food) Reset() {
	f.pos = f.home
}
