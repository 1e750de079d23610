package snake

import "math/rand"

// Target is the single consumable cell.
type Target struct {
	pos    Cell
	width  int
	height int
	rng    *rand.Rand
}

// newTarget places a target uniformly at random in a width×height grid.
// It does not look at the body; callers follow up with respawn.
func newTarget(width, height int, rng *rand.Rand) *Target {
	t := &Target{width: width, height: height, rng: rng}
	t.pos = t.randomCell()
	return t
}

func (t *Target) randomCell() Cell {
	return Cell{X: t.rng.Intn(t.width), Y: t.rng.Intn(t.height)}
}

// Position returns the target cell.
func (t *Target) Position() Cell {
	return t.pos
}

// respawn draws cells until one is not occupied. It assumes at least one
// free cell exists; a full grid never terminates.
func (t *Target) respawn(occupied func(Cell) bool) {
	for {
		t.pos = t.randomCell()
		if !occupied(t.pos) {
			return
		}
	}
}

// resize adopts new bounds and re-randomizes the position.
func (t *Target) resize(width, height int) {
	t.width = width
	t.height = height
	t.pos = t.randomCell()
}
