package board

// MineSentinel is the neighbour count stored on a tile that is itself a mine
const MineSentinel = -1

// StateKind is what an outside observer may know about a tile
type StateKind int

const (
	Hidden StateKind = iota
	Flagged
	MineRevealed
	SafeRevealed
)

// String returns the name of the state kind
func (k StateKind) String() string {
	switch k {
	case Hidden:
		return "HIDDEN"
	case Flagged:
		return "FLAGGED"
	case MineRevealed:
		return "MINE_REVEALED"
	case SafeRevealed:
		return "SAFE_REVEALED"
	default:
		return "UNKNOWN"
	}
}

// CellState is the exported view of a tile.
// Count is the neighbour mine count and only meaningful for SafeRevealed.
type CellState struct {
	Kind  StateKind
	Count int
}

// Tile is one cell of the minefield.
// Its position is fixed at construction; everything else is mutated by the owning Board only.
type Tile struct {
	col int
	row int

	mine     bool
	revealed bool
	flagged  bool

	neighborMines int
}

func newTile(col, row int) Tile {
	return Tile{col: col, row: row}
}

// Col returns the tile's column
func (t Tile) Col() int {
	return t.col
}

// Row returns the tile's row
func (t Tile) Row() int {
	return t.row
}

// IsMine reports whether the tile holds a mine
func (t Tile) IsMine() bool {
	return t.mine
}

// IsRevealed reports whether the tile has been opened
func (t Tile) IsRevealed() bool {
	return t.revealed
}

// IsFlagged reports whether the player marked the tile
func (t Tile) IsFlagged() bool {
	return t.flagged
}

// NeighborMineCount returns the number of mines around the tile,
// or MineSentinel if the tile is a mine. Zero until the minefield is populated.
func (t Tile) NeighborMineCount() int {
	return t.neighborMines
}

// State returns the tile as seen from outside. Revealed takes precedence over flagged.
func (t Tile) State() CellState {
	switch {
	case t.revealed && t.mine:
		return CellState{Kind: MineRevealed, Count: MineSentinel}
	case t.revealed:
		return CellState{Kind: SafeRevealed, Count: t.neighborMines}
	case t.flagged:
		return CellState{Kind: Flagged}
	default:
		return CellState{Kind: Hidden}
	}
}

func (t *Tile) setMine() {
	t.mine = true
}

func (t *Tile) reveal() {
	t.revealed = true
}

func (t *Tile) toggleFlag() {
	t.flagged = !t.flagged
}

// setNeighborMineCount is only called by the counting pass; mines always get MineSentinel there
func (t *Tile) setNeighborMineCount(n int) {
	t.neighborMines = n
}
