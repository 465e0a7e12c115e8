package ebiten

import (
	"minesweeper/pkg/game/state"
)

// takeSnapshot copies what Draw needs out of the live session
func takeSnapshot(g *state.Game) renderSnapshot {
	b := g.Board
	messages := make([]string, len(g.Messages))
	copy(messages, g.Messages)

	return renderSnapshot{
		valid:          true,
		width:          b.Width(),
		height:         b.Height(),
		states:         b.States(),
		cursorCol:      g.CursorCol,
		cursorRow:      g.CursorRow,
		minesRemaining: g.MinesRemaining(),
		finished:       g.Finished,
		won:            b.DidWin(),
		messages:       messages,
	}
}

// getSnapshot returns the latest snapshot
func (e *EbitenRenderer) getSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}

func (e *EbitenRenderer) setSnapshot(snap renderSnapshot) {
	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}
