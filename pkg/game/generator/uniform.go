package generator

import (
	"fmt"

	"minesweeper/pkg/engine/world"
)

// UniformPlacer samples mine positions uniformly without replacement.
type UniformPlacer struct {
	src Source
}

// NewUniform creates a uniform placer drawing from src
func NewUniform(src Source) *UniformPlacer {
	return &UniformPlacer{src: src}
}

// Name returns the placer name
func (u *UniformPlacer) Name() string {
	return "uniform"
}

// Place builds the candidate list of every cell except safe and draws mines of them.
// Each draw picks one of the remaining candidates with equal probability.
func (u *UniformPlacer) Place(cols, rows, mines int, safe world.Position) ([]world.Position, error) {
	candidates := make([]world.Position, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if col == safe.Col && row == safe.Row {
				continue
			}
			candidates = append(candidates, world.Position{Col: col, Row: row})
		}
	}

	if mines < 0 || mines > len(candidates) {
		return nil, fmt.Errorf("cannot place %d mines in %d free cells", mines, len(candidates))
	}

	placed := make([]world.Position, 0, mines)
	for i := 0; i < mines; i++ {
		k := u.src.Intn(len(candidates))
		placed = append(placed, candidates[k])

		// swap-remove: order of the remaining candidates does not matter
		last := len(candidates) - 1
		candidates[k] = candidates[last]
		candidates = candidates[:last]
	}

	return placed, nil
}
