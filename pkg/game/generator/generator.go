// Package generator places mines on a minefield.
package generator

import (
	"time"

	"golang.org/x/exp/rand"

	"minesweeper/pkg/engine/world"
)

// Placer is an interface for mine placement algorithms.
// Place returns exactly mines distinct positions inside a cols×rows grid, none equal to safe.
type Placer interface {
	Place(cols, rows, mines int, safe world.Position) ([]world.Position, error)
	Name() string
}

// Source is the random source a Placer draws from.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded random source. A zero seed is replaced by the current time.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// DefaultPlacer returns the uniform placer over a time-seeded source
func DefaultPlacer() Placer {
	return NewUniform(NewSource(0))
}
