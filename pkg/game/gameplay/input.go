package gameplay

import (
	"errors"

	"github.com/sirupsen/logrus"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/devtools"
	"minesweeper/pkg/game/export"
	"minesweeper/pkg/game/locale"
	"minesweeper/pkg/game/state"
)

// DumpPath is where the dump command writes the board
var DumpPath = devtools.DefaultDumpFile

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	g.ShowHelp = false

	switch intent.Action {
	case engineinput.ActionNone:
		logMessage(g, "%s", locale.Get("UNKNOWN_COMMAND"))
		return

	case engineinput.ActionQuit:
		g.Quit = true
		return

	case engineinput.ActionHelp:
		g.ShowHelp = true
		logMessage(g, "%s", locale.Get("HELP"))
		return

	case engineinput.ActionDump:
		path, err := devtools.DumpToFile(g, DumpPath)
		if err != nil {
			logrus.WithError(err).Warn("board dump failed")
			logMessage(g, "%s", locale.Get("ACTION_FAILED", err.Error()))
			return
		}
		logrus.WithField("path", path).Debug("board dumped")
		logMessage(g, "%s", locale.Get("BOARD_DUMPED", path))
		return

	case engineinput.ActionNewGame:
		if err := NewGame(g); err != nil {
			logMessage(g, "%s", locale.Get("ACTION_FAILED", err.Error()))
		}
		return

	case engineinput.ActionMoveNorth:
		MoveCursor(g, world.North)
		return

	case engineinput.ActionMoveSouth:
		MoveCursor(g, world.South)
		return

	case engineinput.ActionMoveWest:
		MoveCursor(g, world.West)
		return

	case engineinput.ActionMoveEast:
		MoveCursor(g, world.East)
		return
	}

	col, row := g.CursorCol, g.CursorRow
	if intent.Targeted {
		col, row = intent.Col, intent.Row
	}
	applyAt(g, intent.Action, col, row)
}

// applyAt runs a tile action and reports its outcome in the message log
func applyAt(g *state.Game, action engineinput.Action, col, row int) {
	if g.Finished {
		logMessage(g, "%s", locale.Get("GAME_OVER"))
		return
	}

	before, err := g.Board.Tile(col, row)
	if err != nil {
		reportError(g, err, col, row)
		return
	}
	snapshot := export.EncodeBoard(g.Board)

	if err := Apply(g, action, col, row); err != nil {
		reportError(g, err, col, row)
		return
	}
	if g.Finished {
		return
	}

	// the cursor follows the last tile acted on
	g.CursorCol, g.CursorRow = col, row

	switch action {
	case engineinput.ActionReveal:
		if before.IsFlagged() {
			logMessage(g, "%s", locale.Get("FLAG_BLOCKS_REVEAL", col, row))
		}
	case engineinput.ActionFlag:
		after, _ := g.Board.Tile(col, row)
		switch {
		case after.IsFlagged():
			logMessage(g, "ACTION{%s}", locale.Get("FLAGGED", col, row))
		case before.IsFlagged():
			logMessage(g, "%s", locale.Get("UNFLAGGED", col, row))
		}
	case engineinput.ActionChord:
		if before.IsRevealed() && !before.IsMine() && before.NeighborMineCount() > 0 &&
			export.EncodeBoard(g.Board) == snapshot {
			logMessage(g, "%s", locale.Get("CHORD_NOT_READY", col, row))
		}
	}
}

func reportError(g *state.Game, err error, col, row int) {
	if errors.Is(err, board.ErrOutOfRange) {
		logMessage(g, "%s", locale.Get("OUT_OF_RANGE", col, row))
		return
	}
	logrus.WithError(err).Warn("action failed")
	logMessage(g, "%s", locale.Get("ACTION_FAILED", err.Error()))
}
