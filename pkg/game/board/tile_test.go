package board

import "testing"

func TestTile_State(t *testing.T) {
	tests := []struct {
		name string
		tile Tile
		want CellState
	}{
		{"hidden", Tile{}, CellState{Kind: Hidden}},
		{"hidden mine", Tile{mine: true, neighborMines: MineSentinel}, CellState{Kind: Hidden}},
		{"flagged", Tile{flagged: true}, CellState{Kind: Flagged}},
		{"revealed", Tile{revealed: true, neighborMines: 3}, CellState{Kind: SafeRevealed, Count: 3}},
		{"revealed mine", Tile{revealed: true, mine: true, neighborMines: MineSentinel}, CellState{Kind: MineRevealed, Count: MineSentinel}},
		{"revealed through flag", Tile{revealed: true, flagged: true}, CellState{Kind: SafeRevealed}},
	}
	for _, test := range tests {
		if got := test.tile.State(); got != test.want {
			t.Errorf("%s: State() = %+v, want %+v", test.name, got, test.want)
		}
	}
}

func TestTile_MutatorsIdempotent(t *testing.T) {
	tile := newTile(4, 2)
	tile.setMine()
	tile.setMine()
	tile.reveal()
	tile.reveal()
	if !tile.IsMine() || !tile.IsRevealed() {
		t.Errorf("tile = %+v, want mine and revealed", tile)
	}
	if tile.Col() != 4 || tile.Row() != 2 {
		t.Errorf("position = (%d, %d), want (4, 2)", tile.Col(), tile.Row())
	}
}

func TestStateKind_String(t *testing.T) {
	want := map[StateKind]string{
		Hidden:         "HIDDEN",
		Flagged:        "FLAGGED",
		MineRevealed:   "MINE_REVEALED",
		SafeRevealed:   "SAFE_REVEALED",
		StateKind(-3):  "UNKNOWN",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("StateKind(%d).String() = %q, want %q", int(k), k.String(), s)
		}
	}
}
