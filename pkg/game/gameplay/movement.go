package gameplay

import (
	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// MoveCursor moves the cursor one tile in dir, stopping at the board edge
func MoveCursor(g *state.Game, dir world.Direction) {
	if !dir.IsValid() {
		return
	}
	dCol, dRow := dir.Delta()
	g.MoveCursor(dCol, dRow)
}

// logMessage formats a message with the active renderer's markup and adds it to the log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	g.AddMessage(formatted)
}
