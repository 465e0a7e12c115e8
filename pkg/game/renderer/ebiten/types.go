package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/board"
)

// renderSnapshot holds a consistent copy of the game state for drawing.
// The game loop runs on its own goroutine, so Draw never reads the live session.
type renderSnapshot struct {
	valid          bool
	width          int
	height         int
	states         []board.CellState
	cursorCol      int
	cursorRow      int
	minesRemaining int
	finished       bool
	won            bool
	messages       []string
}

// stateAt returns the snapshot state of a tile, or a hidden tile outside the board
func (s renderSnapshot) stateAt(col, row int) board.CellState {
	if col < 0 || row < 0 || col >= s.width || row >= s.height {
		return board.CellState{Kind: board.Hidden}
	}
	return s.states[row*s.width+col]
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Tile size in pixels
	tileSize int

	// Font source for text rendering (Go Mono)
	monoFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedTileFace     *text.GoTextFace
	cachedUIFace       *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// done is closed when the game loop returns; closed is closed when the window goes away
	done      chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
}
