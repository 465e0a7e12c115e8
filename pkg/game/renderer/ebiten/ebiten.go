package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/locale"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		tileSize:  defaultTileSize,
		inputChan: make(chan engineinput.Intent, 16),
		done:      make(chan struct{}),
		closed:    make(chan struct{}),
	}
}

// Init loads the font and sets up the window
func (e *EbitenRenderer) Init() {
	src, err := loadFontSource()
	if err != nil {
		logrus.WithError(err).Error("font unavailable, text will not be drawn")
	}
	e.monoFontSource = src

	ebiten.SetWindowTitle(locale.Get("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op: Ebiten redraws the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window produces an intent. A closed window quits.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.closed:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns the text unchanged; colours are chosen when drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message and strips its markup for drawing
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.PlainText(msg, args...)
}

// ShowMessage logs a message; the window shows the session's message log instead
func (e *EbitenRenderer) ShowMessage(msg string) {
	logrus.Info(msg)
}

// RenderFrame copies the session into the snapshot Draw works from
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.setSnapshot(takeSnapshot(g))
	w, h := e.windowSize(e.getSnapshot())
	ebiten.SetWindowSize(w, h)
}

// Run starts the game loop on its own goroutine and the Ebiten loop on the calling one.
// It returns when either the loop finishes or the window is closed.
func (e *EbitenRenderer) Run(loop func()) error {
	go func() {
		defer close(e.done)
		loop()
	}()

	err := ebiten.RunGame(e)
	e.closeOnce.Do(func() { close(e.closed) })
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
