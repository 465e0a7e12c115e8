// Package gameplay applies player intents to a minesweeper session.
package gameplay

import (
	"github.com/sirupsen/logrus"

	"minesweeper/pkg/game/generator"
	"minesweeper/pkg/game/locale"
	"minesweeper/pkg/game/state"
)

// BuildGame creates a new session and greets the player
func BuildGame(width, height, mines int, placer generator.Placer) (*state.Game, error) {
	g, err := state.NewGame(width, height, mines, placer)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  mines,
		"placer": placerName(placer),
	}).Info("game created")

	logMessage(g, "%s", locale.Get("WELCOME", width, height, mines))
	return g, nil
}

// NewGame restarts the session on a fresh board of the same size
func NewGame(g *state.Game) error {
	if err := g.Restart(); err != nil {
		return err
	}
	logrus.WithField("placer", placerName(g.Placer)).Info("game restarted")
	logMessage(g, "%s", locale.Get("NEW_GAME"))
	logMessage(g, "%s", locale.Get("WELCOME", g.Width, g.Height, g.Mines))
	return nil
}

func placerName(p generator.Placer) string {
	if p == nil {
		return generator.DefaultPlacer().Name()
	}
	return p.Name()
}
