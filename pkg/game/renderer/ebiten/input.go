package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/board"
)

// keyBindings maps keys to untargeted intents (applied at the keyboard cursor)
var keyBindings = []struct {
	keys   []ebiten.Key
	action engineinput.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyK}, engineinput.ActionMoveNorth},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyJ}, engineinput.ActionMoveSouth},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyH}, engineinput.ActionMoveWest},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyL}, engineinput.ActionMoveEast},
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}, engineinput.ActionReveal},
	{[]ebiten.Key{ebiten.KeyF}, engineinput.ActionFlag},
	{[]ebiten.Key{ebiten.KeyC}, engineinput.ActionChord},
	{[]ebiten.Key{ebiten.KeyN}, engineinput.ActionNewGame},
	{[]ebiten.Key{ebiten.KeyF1, ebiten.KeySlash}, engineinput.ActionHelp},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, engineinput.ActionQuit},
	{[]ebiten.Key{ebiten.KeyF12}, engineinput.ActionDump},
}

// Update handles input (Ebiten interface). Intents are queued for the game loop.
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.done:
		return ebiten.Termination
	default:
	}

	if intent := e.checkMouseInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	}
	return nil
}

// send queues an intent without blocking the Ebiten loop
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

// checkInput checks the keyboard for just-pressed bindings
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, binding := range keyBindings {
		for _, key := range binding.keys {
			if inpututil.IsKeyJustPressed(key) {
				return engineinput.Intent{Action: binding.action}
			}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkMouseInput maps clicks on the board to targeted intents.
// Left click reveals, or chords on an already revealed number. Right click flags. Middle click chords.
func (e *EbitenRenderer) checkMouseInput() engineinput.Intent {
	var action engineinput.Action
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		action = engineinput.ActionReveal
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		action = engineinput.ActionFlag
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		action = engineinput.ActionChord
	default:
		return engineinput.Intent{Action: engineinput.ActionNone}
	}

	snap := e.getSnapshot()
	if !snap.valid {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	col, row, ok := e.cellAt(snap, ebiten.CursorPosition())
	if !ok {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}

	if action == engineinput.ActionReveal {
		if s := snap.stateAt(col, row); s.Kind == board.SafeRevealed && s.Count > 0 {
			action = engineinput.ActionChord
		}
	}
	return engineinput.Intent{Action: action, Col: col, Row: row, Targeted: true}
}

// cellAt converts a screen position to board coordinates
func (e *EbitenRenderer) cellAt(snap renderSnapshot, x, y int) (col, row int, ok bool) {
	bx, by := e.boardOrigin(snap)
	if x < bx || y < by {
		return 0, 0, false
	}
	col = (x - bx) / e.tileSize
	row = (y - by) / e.tileSize
	if col >= snap.width || row >= snap.height {
		return 0, 0, false
	}
	return col, row, true
}
