package gameplay

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/locale"
	"minesweeper/pkg/game/state"
)

// ErrUnknownAction is returned by Apply for actions that are not tile actions
var ErrUnknownAction = errors.New("unknown action")

// Apply performs a tile action (reveal, chord or flag) on the session's board.
// A detonation finishes the session as lost; otherwise the board is checked for a win.
// Actions on a finished session are ignored.
func Apply(g *state.Game, action engineinput.Action, col, row int) error {
	if g.Finished {
		return nil
	}

	b := g.Board
	var err error
	switch action {
	case engineinput.ActionReveal:
		err = b.Reveal(col, row)
	case engineinput.ActionChord:
		err = b.ChordReveal(col, row)
	case engineinput.ActionFlag:
		err = b.ToggleFlag(col, row)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, engineinput.ActionName(action))
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"action": engineinput.ActionName(action),
			"col":    col,
			"row":    row,
		}).WithError(err).Debug("action rejected")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"action": engineinput.ActionName(action),
		"col":    col,
		"row":    row,
		"flags":  b.FlagCount(),
	}).Debug("action applied")

	switch {
	case b.IsGameOver() && !b.DidWin():
		finish(g, false)
	case b.CheckWin():
		finish(g, true)
	}
	return nil
}

// finish reveals the final board once and records the outcome in the message log
func finish(g *state.Game, won bool) {
	if g.Finished {
		return
	}
	b := g.Board

	var mine world.Position
	if !won {
		mine = detonated(b)
	}
	b.EndGame(won)
	g.Finished = true

	fields := logrus.Fields{
		"width":  b.Width(),
		"height": b.Height(),
		"mines":  b.MineCount(),
		"won":    won,
	}
	if won {
		logrus.WithFields(fields).Info("game won")
		logMessage(g, "WIN{%s}", locale.Get("WON"))
	} else {
		fields["mine"] = mine.String()
		logrus.WithFields(fields).Info("game lost")
		logMessage(g, "LOSE{%s}", locale.Get("LOST", mine.Col, mine.Row))
	}
	logMessage(g, "%s", locale.Get("GAME_OVER"))
}

// detonated finds the mine that was revealed during play, before EndGame reveals the rest
func detonated(b *board.Board) world.Position {
	for i, s := range b.States() {
		if s.Kind == board.MineRevealed {
			return world.Position{Col: i % b.Width(), Row: i / b.Width()}
		}
	}
	return world.Position{Col: -1, Row: -1}
}
