// Package board tests the minesweeper rules: placement, counting, cascade, chording, flags and outcome.
package board

import (
	"errors"
	"math"
	"math/bits"
	"testing"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/generator"
)

// newFixedBoard creates a width×height board whose mines sit exactly at the given positions.
func newFixedBoard(t *testing.T, width, height int, mines ...world.Position) *Board {
	t.Helper()
	b, err := New(width, height, len(mines), WithPlacer(generator.NewFixed(mines...)))
	if err != nil {
		t.Fatalf("New(%d, %d, %d) error: %v", width, height, len(mines), err)
	}
	return b
}

// newSeededBoard creates a board with uniform placement from a fixed seed.
func newSeededBoard(t *testing.T, width, height, mines int, seed uint64) *Board {
	t.Helper()
	b, err := New(width, height, mines, WithPlacer(generator.NewUniform(generator.NewSource(seed))))
	if err != nil {
		t.Fatalf("New(%d, %d, %d) error: %v", width, height, mines, err)
	}
	return b
}

func countRevealed(b *Board) int {
	n := 0
	b.grid.ForEachCell(func(_, _ int, t *Tile) {
		if t.revealed {
			n++
		}
	})
	return n
}

func pos(col, row int) world.Position {
	return world.Position{Col: col, Row: row}
}

// half is the square root of 2^bits.UintSize
const half = 1 << (bits.UintSize / 2)

func TestNew_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		width, height, mines int
	}{
		{0, 3, 0},
		{3, 0, 0},
		{-1, 3, 0},
		{3, 3, -1},
		{3, 3, 9},
		{1, 1, 1},
		{math.MaxInt/2 + 1, 2, 0},
		{math.MaxInt, math.MaxInt, 1},
		// (half+1)*half wraps to half, a small positive count
		{half + 1, half, 0},
	}
	for _, test := range tests {
		b, err := New(test.width, test.height, test.mines)
		if b != nil {
			t.Errorf("New(%d, %d, %d) board = %v, want nil", test.width, test.height, test.mines, b)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("New(%d, %d, %d) error = %v, want *ConfigurationError", test.width, test.height, test.mines, err)
			continue
		}
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("errors.Is(%v, ErrConfiguration) = false, want true", err)
		}
	}
}

func TestValidateConfig_TooLarge(t *testing.T) {
	err := ValidateConfig(half+1, half, 0)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Reason != "board too large" {
		t.Errorf("ValidateConfig(%d, %d, 0) = %v, want board too large", half+1, half, err)
	}
	if err := ValidateConfig(math.MaxInt, 1, 0); err != nil {
		t.Errorf("ValidateConfig(MaxInt, 1, 0) = %v, want nil", err)
	}
}

func TestNew_EmptyMinefield(t *testing.T) {
	b, err := New(4, 3, 5)
	if err != nil {
		t.Fatalf("New(4, 3, 5) error: %v", err)
	}
	if b.Width() != 4 || b.Height() != 3 || b.MineCount() != 5 {
		t.Errorf("dims = %dx%d/%d, want 4x3/5", b.Width(), b.Height(), b.MineCount())
	}
	if b.Populated() || b.IsGameOver() || b.DidWin() {
		t.Error("new board should be unpopulated and running")
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			tile, _ := b.Tile(col, row)
			if tile.Col() != col || tile.Row() != row {
				t.Errorf("Tile(%d, %d) position = (%d, %d)", col, row, tile.Col(), tile.Row())
			}
			if tile.IsMine() || tile.IsRevealed() || tile.IsFlagged() {
				t.Errorf("Tile(%d, %d) not blank: %+v", col, row, tile)
			}
		}
	}
}

func TestZeroMinesOneClickWins(t *testing.T) {
	b := newSeededBoard(t, 4, 4, 0, 1)
	if err := b.Reveal(2, 1); err != nil {
		t.Fatal(err)
	}
	if got := countRevealed(b); got != 16 {
		t.Errorf("revealed = %d, want 16", got)
	}
	if !b.CheckWin() {
		t.Error("CheckWin() = false, want true")
	}
}

func TestPopulate_Properties(t *testing.T) {
	tests := []struct {
		width, height, mines int
		col, row             int
	}{
		{3, 3, 1, 1, 1},
		{9, 9, 10, 4, 4},
		{16, 16, 40, 0, 0},
		{30, 16, 99, 29, 15},
		{5, 5, 24, 2, 2},
		{8, 2, 7, 7, 0},
	}
	for seed := uint64(1); seed <= 25; seed++ {
		for _, test := range tests {
			b := newSeededBoard(t, test.width, test.height, test.mines, seed)
			if err := b.Reveal(test.col, test.row); err != nil {
				t.Fatalf("Reveal(%d, %d) error: %v", test.col, test.row, err)
			}
			if !b.Populated() {
				t.Fatal("board not populated after first reveal")
			}

			first, _ := b.Tile(test.col, test.row)
			if first.IsMine() {
				t.Errorf("seed %d: first click (%d,%d) is a mine", seed, test.col, test.row)
			}
			if !first.IsRevealed() {
				t.Errorf("seed %d: first click (%d,%d) not revealed", seed, test.col, test.row)
			}
			if b.IsGameOver() && !b.DidWin() {
				t.Errorf("seed %d: first click lost the game", seed)
			}

			mines := 0
			b.grid.ForEachCell(func(col, row int, tile *Tile) {
				if tile.mine {
					mines++
					if tile.neighborMines != MineSentinel {
						t.Errorf("mine (%d,%d) count = %d, want %d", col, row, tile.neighborMines, MineSentinel)
					}
					if tile.revealed {
						t.Errorf("seed %d: cascade revealed mine (%d,%d)", seed, col, row)
					}
					return
				}
				want := 0
				for _, n := range b.grid.Neighbors(col, row) {
					if b.grid.AtPosition(n).mine {
						want++
					}
				}
				if tile.neighborMines != want {
					t.Errorf("seed %d: NeighborMineCount(%d,%d) = %d, want %d", seed, col, row, tile.neighborMines, want)
				}
			})
			if mines != test.mines {
				t.Errorf("seed %d: %dx%d mines = %d, want %d", seed, test.width, test.height, mines, test.mines)
			}
		}
	}
}

func TestCascade_RevealsZeroRegionAndBorder(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		b := newSeededBoard(t, 12, 10, 15, seed)
		if err := b.Reveal(6, 5); err != nil {
			t.Fatal(err)
		}
		b.grid.ForEachCell(func(col, row int, tile *Tile) {
			if !tile.revealed {
				return
			}
			if tile.neighborMines == 0 {
				for _, n := range b.grid.Neighbors(col, row) {
					if !b.grid.AtPosition(n).revealed {
						t.Errorf("seed %d: zero tile (%d,%d) has hidden neighbour %v", seed, col, row, n)
					}
				}
			}
			if col == 6 && row == 5 {
				return
			}
			touchesZero := false
			for _, n := range b.grid.Neighbors(col, row) {
				nt := b.grid.AtPosition(n)
				if nt.revealed && nt.neighborMines == 0 {
					touchesZero = true
				}
			}
			if !touchesZero {
				t.Errorf("seed %d: (%d,%d) revealed without a revealed zero neighbour", seed, col, row)
			}
		})
	}
}

func TestScenario_ThreeByThreeCentreClick(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		b := newSeededBoard(t, 3, 3, 1, seed)
		if err := b.Reveal(1, 1); err != nil {
			t.Fatal(err)
		}
		centre, _ := b.Tile(1, 1)
		if centre.IsMine() {
			t.Fatalf("seed %d: centre is a mine", seed)
		}
		if centre.NeighborMineCount() != 1 {
			t.Errorf("seed %d: centre count = %d, want 1", seed, centre.NeighborMineCount())
		}
		if got := countRevealed(b); got != 1 {
			t.Errorf("seed %d: revealed = %d, want 1 (only the centre)", seed, got)
		}
	}
}

func TestScenario_FiveByFiveFloodWins(t *testing.T) {
	b := newFixedBoard(t, 5, 5, pos(0, 0))
	if err := b.Reveal(4, 4); err != nil {
		t.Fatal(err)
	}
	if got := countRevealed(b); got != 24 {
		t.Errorf("revealed = %d, want 24", got)
	}
	mine, _ := b.Tile(0, 0)
	if mine.IsRevealed() {
		t.Error("mine (0,0) revealed by cascade")
	}
	if b.IsGameOver() {
		t.Error("IsGameOver() = true before CheckWin")
	}
	if !b.CheckWin() {
		t.Error("CheckWin() = false, want true")
	}
	if !b.IsGameOver() || !b.DidWin() {
		t.Errorf("IsGameOver, DidWin = %v, %v, want true, true", b.IsGameOver(), b.DidWin())
	}
}

func TestScenario_FlagTwice(t *testing.T) {
	b := newFixedBoard(t, 3, 3, pos(0, 0))
	for i, want := range []bool{true, false} {
		if err := b.ToggleFlag(2, 2); err != nil {
			t.Fatal(err)
		}
		tile, _ := b.Tile(2, 2)
		if tile.IsFlagged() != want {
			t.Errorf("toggle %d: IsFlagged() = %v, want %v", i+1, tile.IsFlagged(), want)
		}
	}
	if b.IsGameOver() {
		t.Error("ToggleFlag changed game over state")
	}
}

func TestScenario_MineDetonationStopsCascade(t *testing.T) {
	b := newFixedBoard(t, 3, 3, pos(0, 0), pos(2, 2))
	if err := b.Reveal(0, 2); err != nil {
		t.Fatal(err)
	}
	before := countRevealed(b)
	if before != 4 {
		t.Fatalf("revealed after first click = %d, want 4", before)
	}
	if err := b.Reveal(0, 0); err != nil {
		t.Fatal(err)
	}
	if !b.IsGameOver() || b.DidWin() {
		t.Errorf("IsGameOver, DidWin = %v, %v, want true, false", b.IsGameOver(), b.DidWin())
	}
	if got := countRevealed(b); got != before+1 {
		t.Errorf("revealed = %d, want %d (no cascade from a mine)", got, before+1)
	}
	state, _ := b.State(0, 0)
	if state.Kind != MineRevealed {
		t.Errorf("State(0, 0) = %v, want MINE_REVEALED", state.Kind)
	}
	if b.CheckWin() {
		t.Error("CheckWin() after detonation = true, want false")
	}
}

func TestReveal_RespectsFlags(t *testing.T) {
	b := newFixedBoard(t, 5, 5, pos(0, 0))
	if err := b.ToggleFlag(4, 4); err != nil {
		t.Fatal(err)
	}
	if err := b.Reveal(4, 4); err != nil {
		t.Fatal(err)
	}
	if b.Populated() {
		t.Error("Reveal on a flagged tile populated the minefield")
	}
	if got := countRevealed(b); got != 0 {
		t.Errorf("revealed = %d, want 0", got)
	}
}

func TestCascade_IgnoresFlags(t *testing.T) {
	b := newFixedBoard(t, 5, 5, pos(0, 0))
	if err := b.ToggleFlag(2, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.Reveal(4, 4); err != nil {
		t.Fatal(err)
	}
	tile, _ := b.Tile(2, 2)
	if !tile.IsRevealed() {
		t.Error("cascade stopped at flagged (2,2), want revealed through the flag")
	}
	state, _ := b.State(2, 2)
	if state.Kind != SafeRevealed || state.Count != 0 {
		t.Errorf("State(2, 2) = %+v, want SAFE_REVEALED(0)", state)
	}
	if b.FlagCount() != 0 {
		t.Errorf("FlagCount() = %d, want 0 (revealed flags do not count)", b.FlagCount())
	}
}

func TestReveal_AlreadyRevealedNoop(t *testing.T) {
	b := newFixedBoard(t, 3, 3, pos(0, 0), pos(2, 2))
	if err := b.Reveal(0, 2); err != nil {
		t.Fatal(err)
	}
	before := countRevealed(b)
	if err := b.Reveal(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := countRevealed(b); got != before {
		t.Errorf("revealed = %d, want %d", got, before)
	}
}

func TestToggleFlag_RevealedNoop(t *testing.T) {
	b := newFixedBoard(t, 3, 3, pos(0, 0))
	if err := b.Reveal(2, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.ToggleFlag(2, 2); err != nil {
		t.Fatal(err)
	}
	tile, _ := b.Tile(2, 2)
	if tile.IsFlagged() {
		t.Error("ToggleFlag flagged a revealed tile")
	}
}

func TestChordReveal(t *testing.T) {
	// Single-row boards with a mine at each end: the inner tiles all have count 1.
	t.Run("hidden target is a no-op", func(t *testing.T) {
		b := newFixedBoard(t, 5, 1, pos(0, 0), pos(4, 0))
		if err := b.ChordReveal(1, 0); err != nil {
			t.Fatal(err)
		}
		if countRevealed(b) != 0 {
			t.Error("chord on hidden tile revealed tiles")
		}
	})

	t.Run("flag count mismatch is a no-op", func(t *testing.T) {
		b := newFixedBoard(t, 4, 1, pos(0, 0), pos(3, 0))
		if err := b.Reveal(1, 0); err != nil {
			t.Fatal(err)
		}
		// (1,0) has count 1 and no flags around it
		before := countRevealed(b)
		if err := b.ChordReveal(1, 0); err != nil {
			t.Fatal(err)
		}
		if got := countRevealed(b); got != before {
			t.Errorf("revealed = %d, want %d", got, before)
		}
		// too many flags
		b.ToggleFlag(0, 0)
		b.ToggleFlag(2, 0)
		if err := b.ChordReveal(1, 0); err != nil {
			t.Fatal(err)
		}
		if got := countRevealed(b); got != before {
			t.Errorf("revealed with two flags = %d, want %d", got, before)
		}
	})

	t.Run("matching flags reveal the rest", func(t *testing.T) {
		b := newFixedBoard(t, 4, 1, pos(0, 0), pos(3, 0))
		if err := b.Reveal(1, 0); err != nil {
			t.Fatal(err)
		}
		b.ToggleFlag(0, 0)
		if err := b.ChordReveal(1, 0); err != nil {
			t.Fatal(err)
		}
		tile, _ := b.Tile(2, 0)
		if !tile.IsRevealed() {
			t.Error("chord did not reveal (2,0)")
		}
		if b.IsGameOver() {
			t.Error("chord with correct flags ended the game")
		}
		if !b.CheckWin() {
			t.Error("CheckWin() = false, want true")
		}
	})

	t.Run("wrong flag detonates", func(t *testing.T) {
		b := newFixedBoard(t, 4, 1, pos(0, 0), pos(3, 0))
		if err := b.Reveal(2, 0); err != nil {
			t.Fatal(err)
		}
		// (2,0) has count 1 from (3,0); flag the safe (1,0) instead
		b.ToggleFlag(1, 0)
		if err := b.ChordReveal(2, 0); err != nil {
			t.Fatal(err)
		}
		if !b.IsGameOver() || b.DidWin() {
			t.Errorf("IsGameOver, DidWin = %v, %v, want true, false", b.IsGameOver(), b.DidWin())
		}
	})
}

func TestCheckWin_IgnoresFlagsOnMines(t *testing.T) {
	b := newFixedBoard(t, 3, 3, pos(0, 0), pos(2, 2))
	if err := b.Reveal(0, 2); err != nil {
		t.Fatal(err)
	}
	if b.CheckWin() {
		t.Fatal("CheckWin() = true with hidden safe tiles")
	}
	b.ToggleFlag(0, 0)
	b.Reveal(1, 0)
	b.Reveal(2, 0)
	b.Reveal(2, 1)
	if !b.CheckWin() {
		t.Error("CheckWin() = false with every safe tile revealed")
	}
	if !b.DidWin() {
		t.Error("DidWin() = false after CheckWin")
	}
}

func TestCheckWin_Unpopulated(t *testing.T) {
	b := newFixedBoard(t, 3, 3, pos(0, 0))
	if b.CheckWin() {
		t.Error("CheckWin() on an empty minefield = true, want false")
	}
}

func TestEndGame(t *testing.T) {
	b := newFixedBoard(t, 3, 3, pos(0, 0))
	b.ToggleFlag(0, 0)
	b.EndGame(false)
	if got := countRevealed(b); got != 9 {
		t.Errorf("revealed = %d, want 9", got)
	}
	if !b.IsGameOver() || b.DidWin() {
		t.Errorf("IsGameOver, DidWin = %v, %v, want true, false", b.IsGameOver(), b.DidWin())
	}
	b.EndGame(false)
	if !b.IsGameOver() || b.DidWin() {
		t.Error("second EndGame changed the outcome")
	}
}

func TestActionsAfterGameOverIgnored(t *testing.T) {
	b := newFixedBoard(t, 3, 3, pos(0, 0), pos(2, 2))
	b.Reveal(0, 2)
	b.Reveal(0, 0)
	before := countRevealed(b)
	b.Reveal(2, 0)
	b.ToggleFlag(2, 0)
	tile, _ := b.Tile(2, 0)
	if countRevealed(b) != before || tile.IsFlagged() {
		t.Error("actions after game over changed the board")
	}
}

func TestOutOfRange(t *testing.T) {
	b := newFixedBoard(t, 3, 2, pos(0, 0))
	actions := map[string]func(col, row int) error{
		"Reveal":      b.Reveal,
		"ChordReveal": b.ChordReveal,
		"ToggleFlag":  b.ToggleFlag,
		"State": func(col, row int) error {
			_, err := b.State(col, row)
			return err
		},
		"Tile": func(col, row int) error {
			_, err := b.Tile(col, row)
			return err
		},
	}
	for name, action := range actions {
		for _, p := range []world.Position{{Col: -1, Row: 0}, {Col: 3, Row: 0}, {Col: 0, Row: 2}, {Col: 0, Row: -5}} {
			err := action(p.Col, p.Row)
			var rangeErr *OutOfRangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("%s(%d, %d) error = %v, want *OutOfRangeError", name, p.Col, p.Row, err)
				continue
			}
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("errors.Is(%v, ErrOutOfRange) = false", err)
			}
			if rangeErr.Width != 3 || rangeErr.Height != 2 {
				t.Errorf("%s error dims = %dx%d, want 3x2", name, rangeErr.Width, rangeErr.Height)
			}
		}
	}
	if b.Populated() {
		t.Error("out of range action populated the board")
	}
}

type duplicatePlacer struct{}

func (duplicatePlacer) Name() string { return "duplicate" }

func (duplicatePlacer) Place(cols, rows, mines int, safe world.Position) ([]world.Position, error) {
	out := make([]world.Position, mines)
	return out, nil
}

func TestPopulate_RejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name   string
		placer generator.Placer
		mines  int
	}{
		{"duplicates", duplicatePlacer{}, 2},
		{"outside", generator.NewFixed(pos(5, 5)), 1},
		{"wrong count", generator.NewFixed(pos(0, 0)), 2},
	}
	for _, test := range tests {
		b, err := New(3, 3, test.mines, WithPlacer(test.placer))
		if err != nil {
			t.Fatal(err)
		}
		err = b.Reveal(2, 2)
		if !errors.Is(err, ErrPlacement) {
			t.Errorf("%s: Reveal error = %v, want ErrPlacement", test.name, err)
		}
		if b.Populated() {
			t.Errorf("%s: board populated from a bad layout", test.name)
		}
	}
}

func TestStates_RowMajor(t *testing.T) {
	b := newFixedBoard(t, 3, 2, pos(2, 1))
	b.ToggleFlag(2, 1)
	b.Reveal(0, 0)
	states := b.States()
	if len(states) != 6 {
		t.Fatalf("len(States()) = %d, want 6", len(states))
	}
	for i, s := range states {
		want, _ := b.State(i%3, i/3)
		if s != want {
			t.Errorf("States()[%d] = %+v, want %+v", i, s, want)
		}
	}
	if states[5].Kind != Flagged {
		t.Errorf("States()[5] = %v, want FLAGGED", states[5].Kind)
	}
	if states[0].Kind != SafeRevealed || states[0].Count != 0 {
		t.Errorf("States()[0] = %+v, want SAFE_REVEALED(0)", states[0])
	}
}
