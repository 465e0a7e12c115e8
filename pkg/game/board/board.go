// Package board implements the minesweeper rules: mine placement, neighbour counting,
// flood-fill reveal, flagging, chording and win/loss detection.
//
// Two reveal paths exist on purpose. A direct reveal (Reveal) respects flags: a flagged
// tile cannot be opened until it is unflagged. A cascade reveal, started when a tile with
// no neighbouring mines is opened or when chording, ignores flags and opens flagged
// neighbours too.
//
// A Board is not safe for concurrent use; every game session owns its own Board.
package board

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/generator"
)

// Board is the minefield plus the game outcome
type Board struct {
	grid   *world.Grid[Tile]
	mines  int
	placer generator.Placer

	populated bool
	gameEnd   bool
	win       bool
}

// Option configures a Board at construction
type Option func(*Board)

// WithPlacer replaces the default uniform random placer
func WithPlacer(p generator.Placer) Option {
	return func(b *Board) {
		if p != nil {
			b.placer = p
		}
	}
}

// New creates a width×height board that will hold mines mines.
// The minefield stays empty until the first Reveal.
func New(width, height, mines int, opts ...Option) (*Board, error) {
	if err := ValidateConfig(width, height, mines); err != nil {
		return nil, err
	}

	b := &Board{
		grid:  world.NewGrid(width, height, newTile),
		mines: mines,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.placer == nil {
		b.placer = generator.DefaultPlacer()
	}
	return b, nil
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.grid.Cols()
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.grid.Rows()
}

// MineCount returns the total number of mines
func (b *Board) MineCount() int {
	return b.mines
}

// IsGameOver reports whether the game ended by detonation, a win or EndGame
func (b *Board) IsGameOver() bool {
	return b.gameEnd
}

// DidWin reports whether the game ended in a win
func (b *Board) DidWin() bool {
	return b.win
}

// Populated reports whether mines have been placed
func (b *Board) Populated() bool {
	return b.populated
}

// FlagCount returns the number of flagged tiles that are still hidden
func (b *Board) FlagCount() int {
	n := 0
	b.grid.ForEachCell(func(_, _ int, t *Tile) {
		if t.flagged && !t.revealed {
			n++
		}
	})
	return n
}

// Tile returns a copy of the tile at col/row
func (b *Board) Tile(col, row int) (Tile, error) {
	t, err := b.at(col, row)
	if err != nil {
		return Tile{}, err
	}
	return *t, nil
}

// State returns the exported state of the tile at col/row
func (b *Board) State(col, row int) (CellState, error) {
	t, err := b.at(col, row)
	if err != nil {
		return CellState{}, err
	}
	return t.State(), nil
}

// States returns every tile state in row-major order
func (b *Board) States() []CellState {
	states := make([]CellState, 0, b.grid.Len())
	b.grid.ForEachCell(func(_, _ int, t *Tile) {
		states = append(states, t.State())
	})
	return states
}

// Reveal opens the tile at col/row as a direct player action.
// Flagged and already revealed tiles are left alone. The first reveal places the mines.
func (b *Board) Reveal(col, row int) error {
	t, err := b.at(col, row)
	if err != nil {
		return err
	}
	if b.gameEnd || t.flagged || t.revealed {
		return nil
	}
	if !b.populated {
		return b.populateMinefield(col, row)
	}
	b.cascade(world.Position{Col: col, Row: row})
	return nil
}

// ChordReveal opens every unflagged neighbour of a revealed tile whose flagged
// neighbour count equals its mine count. Anything else is a no-op.
func (b *Board) ChordReveal(col, row int) error {
	t, err := b.at(col, row)
	if err != nil {
		return err
	}
	if b.gameEnd || !t.revealed || t.mine {
		return nil
	}
	if b.countFlags(col, row) != t.neighborMines {
		return nil
	}
	for _, n := range b.grid.Neighbors(col, row) {
		if !b.grid.AtPosition(n).flagged {
			b.cascade(n)
		}
	}
	return nil
}

// ToggleFlag flips the flag on a hidden tile. Revealed tiles are left alone.
func (b *Board) ToggleFlag(col, row int) error {
	t, err := b.at(col, row)
	if err != nil {
		return err
	}
	if b.gameEnd || t.revealed {
		return nil
	}
	t.toggleFlag()
	return nil
}

// CheckWin scans the whole grid and ends the game as won when every safe tile is revealed.
// Hidden or flagged mines do not matter. A lost game stays lost.
func (b *Board) CheckWin() bool {
	if b.gameEnd && !b.win {
		return false
	}
	if !b.populated {
		return false
	}
	won := true
	b.grid.ForEachCell(func(_, _ int, t *Tile) {
		if !t.mine && !t.revealed {
			won = false
		}
	})
	if won {
		b.gameEnd = true
		b.win = true
	}
	return won
}

// EndGame reveals every tile for the final display and records the outcome
func (b *Board) EndGame(won bool) {
	b.grid.ForEachCell(func(_, _ int, t *Tile) {
		t.reveal()
	})
	b.win = won
	b.gameEnd = true
}

// populateMinefield places the mines away from the first click, counts neighbours
// and opens the first click.
func (b *Board) populateMinefield(col, row int) error {
	first := world.Position{Col: col, Row: row}
	layout, err := b.placer.Place(b.Width(), b.Height(), b.mines, first)
	if err != nil {
		return fmt.Errorf("%w: %s placer: %v", ErrPlacement, b.placer.Name(), err)
	}
	if err := b.checkLayout(layout, first); err != nil {
		return err
	}

	for _, p := range layout {
		b.grid.AtPosition(p).setMine()
	}
	b.grid.ForEachCell(func(c, r int, t *Tile) {
		b.countMines(c, r, t)
	})
	b.populated = true

	b.cascade(first)
	return nil
}

func (b *Board) checkLayout(layout []world.Position, first world.Position) error {
	if len(layout) != b.mines {
		return fmt.Errorf("%w: got %d mines, want %d", ErrPlacement, len(layout), b.mines)
	}
	seen := mapset.New[world.Position]()
	for _, p := range layout {
		switch {
		case !b.grid.IsValidPosition(p.Col, p.Row):
			return fmt.Errorf("%w: mine %v outside the board", ErrPlacement, p)
		case p == first:
			return fmt.Errorf("%w: mine on the first click %v", ErrPlacement, p)
		case seen.Has(p):
			return fmt.Errorf("%w: duplicate mine %v", ErrPlacement, p)
		}
		seen.Put(p)
	}
	return nil
}

func (b *Board) countMines(col, row int, t *Tile) {
	if t.mine {
		t.setNeighborMineCount(MineSentinel)
		return
	}
	total := 0
	for _, n := range b.grid.Neighbors(col, row) {
		if b.grid.AtPosition(n).mine {
			total++
		}
	}
	t.setNeighborMineCount(total)
}

func (b *Board) countFlags(col, row int) int {
	total := 0
	for _, n := range b.grid.Neighbors(col, row) {
		if b.grid.AtPosition(n).flagged {
			total++
		}
	}
	return total
}

// cascade reveals start and floods outward through tiles with no neighbouring mines.
// It ignores flags. Each tile goes hidden->revealed at most once, so the work-list drains
// after at most width*height reveals.
func (b *Board) cascade(start world.Position) {
	pending := stack.New[world.Position]()
	pending.Push(start)

	for pending.Size() > 0 {
		p := pending.Pop()
		t := b.grid.AtPosition(p)
		if t.revealed {
			continue
		}
		t.reveal()

		if t.mine {
			b.gameEnd = true
			b.win = false
			continue
		}
		if t.neighborMines != 0 {
			continue
		}
		for _, n := range b.grid.Neighbors(p.Col, p.Row) {
			if !b.grid.AtPosition(n).revealed {
				pending.Push(n)
			}
		}
	}
}

func (b *Board) at(col, row int) (*Tile, error) {
	t := b.grid.At(col, row)
	if t == nil {
		return nil, &OutOfRangeError{Col: col, Row: row, Width: b.Width(), Height: b.Height()}
	}
	return t, nil
}
