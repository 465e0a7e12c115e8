// Package export turns a board into the per-tile status data consumed by
// renderers, bots and the network frontend.
package export

import (
	"strings"

	"minesweeper/pkg/game/board"
)

// Single-byte tile codes
const (
	CodeHidden  byte = '-'
	CodeFlagged byte = 'F'
	CodeMine    byte = '*'
	CodeUnknown byte = '?'
)

// Code returns the single-byte code for a tile state: '-' hidden, 'F' flagged,
// '*' revealed mine and '0'..'8' for a revealed safe tile.
func Code(s board.CellState) byte {
	switch s.Kind {
	case board.Hidden:
		return CodeHidden
	case board.Flagged:
		return CodeFlagged
	case board.MineRevealed:
		return CodeMine
	case board.SafeRevealed:
		if s.Count >= 0 && s.Count <= 8 {
			return '0' + byte(s.Count)
		}
	}
	return CodeUnknown
}

// Encode returns the row-major code string for the given states
func Encode(states []board.CellState) string {
	var sb strings.Builder
	sb.Grow(len(states))
	for _, s := range states {
		sb.WriteByte(Code(s))
	}
	return sb.String()
}

// EncodeBoard is Encode over every tile of b
func EncodeBoard(b *board.Board) string {
	return Encode(b.States())
}

// CellView is one tile in the JSON view
type CellView struct {
	State string `json:"state"`
	Count int    `json:"count,omitempty"`
}

// View is the JSON document describing a whole game
type View struct {
	Width          int          `json:"width"`
	Height         int          `json:"height"`
	Mines          int          `json:"mines"`
	MinesRemaining int          `json:"minesRemaining"`
	GameOver       bool         `json:"gameOver"`
	Won            bool         `json:"won"`
	Cells          string       `json:"cells"`
	Grid           [][]CellView `json:"grid"`
}

// NewView builds the view of b
func NewView(b *board.Board) View {
	states := b.States()
	w, h := b.Width(), b.Height()

	grid := make([][]CellView, h)
	for row := 0; row < h; row++ {
		grid[row] = make([]CellView, w)
		for col := 0; col < w; col++ {
			s := states[row*w+col]
			v := CellView{State: s.Kind.String()}
			if s.Kind == board.SafeRevealed {
				v.Count = s.Count
			}
			grid[row][col] = v
		}
	}

	return View{
		Width:          w,
		Height:         h,
		Mines:          b.MineCount(),
		MinesRemaining: b.MineCount() - b.FlagCount(),
		GameOver:       b.IsGameOver(),
		Won:            b.DidWin(),
		Cells:          Encode(states),
		Grid:           grid,
	}
}
