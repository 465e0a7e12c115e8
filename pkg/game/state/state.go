// Package state holds one game session: the board, the cursor and the message log.
package state

import (
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/generator"
)

const maxMessages = 5

// Game represents one minesweeper session
type Game struct {
	Board *board.Board

	CursorCol int
	CursorRow int

	Messages []string

	Width  int
	Height int
	Mines  int
	Placer generator.Placer

	// Finished is set once the final board has been revealed
	Finished bool
	Quit     bool

	// ShowHelp asks the renderer to list the key bindings until the next input
	ShowHelp bool
}

// NewGame creates a new session with a fresh board
func NewGame(width, height, mines int, placer generator.Placer) (*Game, error) {
	g := &Game{
		Width:    width,
		Height:   height,
		Mines:    mines,
		Placer:   placer,
		Messages: make([]string, 0),
	}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart replaces the board with a new one of the same size, keeping the placer
func (g *Game) Restart() error {
	var opts []board.Option
	if g.Placer != nil {
		opts = append(opts, board.WithPlacer(g.Placer))
	}
	b, err := board.New(g.Width, g.Height, g.Mines, opts...)
	if err != nil {
		return err
	}
	g.Board = b
	g.CursorCol = g.Width / 2
	g.CursorRow = g.Height / 2
	g.Finished = false
	g.ClearMessages()
	return nil
}

// MinesRemaining is the mine count minus the flags placed, as shown on a counter
func (g *Game) MinesRemaining() int {
	return g.Board.MineCount() - g.Board.FlagCount()
}

// MoveCursor moves the cursor, clamped to the board
func (g *Game) MoveCursor(dCol, dRow int) {
	g.CursorCol = clamp(g.CursorCol+dCol, 0, g.Board.Width()-1)
	g.CursorRow = clamp(g.CursorRow+dRow, 0, g.Board.Height()-1)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
