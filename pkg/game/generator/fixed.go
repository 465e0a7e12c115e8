package generator

import (
	"fmt"

	"minesweeper/pkg/engine/world"
)

// FixedPlacer returns a preset mine layout. Used for replays and tests.
type FixedPlacer struct {
	Mines []world.Position
}

// NewFixed creates a placer that always returns the given positions
func NewFixed(mines ...world.Position) *FixedPlacer {
	return &FixedPlacer{Mines: mines}
}

// Name returns the placer name
func (f *FixedPlacer) Name() string {
	return "fixed"
}

// Place returns the preset layout. It refuses layouts that put a mine on the safe cell
// or whose size does not match the requested mine count.
func (f *FixedPlacer) Place(cols, rows, mines int, safe world.Position) ([]world.Position, error) {
	if len(f.Mines) != mines {
		return nil, fmt.Errorf("fixed layout has %d mines, board wants %d", len(f.Mines), mines)
	}
	for _, p := range f.Mines {
		if p == safe {
			return nil, fmt.Errorf("fixed layout puts a mine on the first click %v", p)
		}
	}
	out := make([]world.Position, len(f.Mines))
	copy(out, f.Mines)
	return out, nil
}
