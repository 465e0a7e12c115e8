// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Position addresses one cell of a grid by column and row.
type Position struct {
	Col int
	Row int
}

// String returns the position as "col:row"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Col, p.Row)
}

// Grid is a rectangular map of cells stored in a single row-major buffer.
// The grid owns its cells; callers get pointers into the buffer but never the buffer itself.
type Grid[T any] struct {
	cells []T
	rows  int
	cols  int
}

// NewGrid creates a grid with the given dimensions, initialising every cell with init.
// A nil init leaves cells at their zero value.
func NewGrid[T any](cols, rows int, init func(col, row int) T) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &Grid[T]{
		cells: make([]T, rows*cols),
		rows:  rows,
		cols:  cols,
	}

	if init != nil {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				g.cells[row*cols+col] = init(col, row)
			}
		}
	}

	return g
}

// Rows returns the number of rows in the grid
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid[T]) Cols() int {
	return g.cols
}

// Len returns the total number of cells
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// IsValidPosition checks if a col/row position is within grid bounds
func (g *Grid[T]) IsValidPosition(col, row int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the row-major buffer index of a position, or -1 if out of bounds
func (g *Grid[T]) Index(col, row int) int {
	if !g.IsValidPosition(col, row) {
		return -1
	}
	return row*g.cols + col
}

// At returns the cell at the given position, or nil if out of bounds
func (g *Grid[T]) At(col, row int) *T {
	i := g.Index(col, row)
	if i < 0 {
		return nil
	}
	return &g.cells[i]
}

// AtPosition is At for a Position
func (g *Grid[T]) AtPosition(p Position) *T {
	return g.At(p.Col, p.Row)
}

// Neighbors returns the in-bounds positions surrounding col/row in all eight directions.
// Positions on the edge have fewer neighbours; the grid never wraps.
func (g *Grid[T]) Neighbors(col, row int) []Position {
	neighbors := make([]Position, 0, 8)
	for _, dir := range AllDirections() {
		dc, dr := dir.Delta()
		c, r := col+dc, row+dr
		if g.IsValidPosition(c, r) {
			neighbors = append(neighbors, Position{Col: c, Row: r})
		}
	}
	return neighbors
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (g *Grid[T]) ForEachCell(fn func(col, row int, cell *T)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(col, row, &g.cells[row*g.cols+col])
		}
	}
}
