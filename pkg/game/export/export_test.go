package export

import (
	"encoding/json"
	"strings"
	"testing"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/generator"
)

func TestCode(t *testing.T) {
	tests := []struct {
		state board.CellState
		want  byte
	}{
		{board.CellState{Kind: board.Hidden}, '-'},
		{board.CellState{Kind: board.Flagged}, 'F'},
		{board.CellState{Kind: board.MineRevealed, Count: board.MineSentinel}, '*'},
		{board.CellState{Kind: board.SafeRevealed, Count: 0}, '0'},
		{board.CellState{Kind: board.SafeRevealed, Count: 8}, '8'},
		{board.CellState{Kind: board.SafeRevealed, Count: 9}, '?'},
		{board.CellState{Kind: board.StateKind(99)}, '?'},
	}
	for _, test := range tests {
		if got := Code(test.state); got != test.want {
			t.Errorf("Code(%+v) = %q, want %q", test.state, got, test.want)
		}
	}
}

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	// 3x2 with a mine at (2,1)
	b, err := board.New(3, 2, 1, board.WithPlacer(generator.NewFixed(world.Position{Col: 2, Row: 1})))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestEncodeBoard(t *testing.T) {
	b := newBoard(t)
	if got := EncodeBoard(b); got != "------" {
		t.Errorf("EncodeBoard(new) = %q, want %q", got, "------")
	}
	b.ToggleFlag(2, 1)
	b.Reveal(0, 0)
	if got, want := EncodeBoard(b), "01-01F"; got != want {
		t.Errorf("EncodeBoard() = %q, want %q", got, want)
	}
	b.EndGame(false)
	if got, want := EncodeBoard(b), "01101*"; got != want {
		t.Errorf("EncodeBoard(ended) = %q, want %q", got, want)
	}
}

func TestNewView(t *testing.T) {
	b := newBoard(t)
	b.ToggleFlag(2, 1)
	b.Reveal(0, 0)

	v := NewView(b)
	if v.Width != 3 || v.Height != 2 || v.Mines != 1 {
		t.Errorf("view dims = %dx%d/%d, want 3x2/1", v.Width, v.Height, v.Mines)
	}
	if v.MinesRemaining != 0 {
		t.Errorf("MinesRemaining = %d, want 0", v.MinesRemaining)
	}
	if v.GameOver || v.Won {
		t.Error("view reports a finished game")
	}
	if v.Grid[0][1].State != "SAFE_REVEALED" || v.Grid[0][1].Count != 1 {
		t.Errorf("Grid[0][1] = %+v, want SAFE_REVEALED 1", v.Grid[0][1])
	}
	if v.Grid[1][2].State != "FLAGGED" {
		t.Errorf("Grid[1][2] = %+v, want FLAGGED", v.Grid[1][2])
	}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"minesRemaining":0`, `"cells":"01-01F"`, `"gameOver":false`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("json %s missing %s", data, key)
		}
	}
}
