package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/locale"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := e.getSnapshot()
	if !snap.valid || e.monoFontSource == nil {
		return
	}

	e.drawHeader(screen, snap)
	e.drawBoard(screen, snap)
	e.drawMessages(screen, snap)
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowSize(e.getSnapshot())
}

// windowSize fits the window around the board, the header and the message log
func (e *EbitenRenderer) windowSize(snap renderSnapshot) (int, int) {
	if !snap.valid {
		return minWindowWidth, minWindowWidth
	}
	w := snap.width*e.tileSize + 2*boardMargin
	if w < minWindowWidth {
		w = minWindowWidth
	}
	lineHeight := int(e.getUIFontSize() * 1.5)
	h := headerHeight + snap.height*e.tileSize + 2*boardMargin + messageLines*lineHeight
	return w, h
}

// boardOrigin returns the top-left pixel of the board, centred horizontally
func (e *EbitenRenderer) boardOrigin(snap renderSnapshot) (int, int) {
	w, _ := e.windowSize(snap)
	x := (w - snap.width*e.tileSize) / 2
	return x, headerHeight + boardMargin
}

// drawHeader draws the mine counter and the game outcome
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap renderSnapshot) {
	w, _ := e.windowSize(snap)
	face := e.getUIFontFace()

	e.drawText(screen, locale.Get("MINES_LEFT", snap.minesRemaining), boardMargin, headerHeight/2, colorText, face, text.AlignStart)

	status, statusColor := locale.Get("TITLE"), colorSubtle
	switch {
	case snap.finished && snap.won:
		status, statusColor = locale.Get("WON"), colorWin
	case snap.finished:
		status, statusColor = locale.Get("GAME_OVER"), colorLose
	}
	if snap.finished {
		// outcome lines are long, so they get their own row
		e.drawText(screen, status, w/2, headerHeight-4, statusColor, face, text.AlignCenter)
		return
	}
	e.drawText(screen, status, w-boardMargin, headerHeight/2, statusColor, face, text.AlignEnd)
}

// drawBoard draws every tile and the keyboard cursor
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap renderSnapshot) {
	bx, by := e.boardOrigin(snap)
	size := float32(e.tileSize)

	vector.DrawFilledRect(screen, float32(bx-4), float32(by-4),
		float32(snap.width)*size+8, float32(snap.height)*size+8, colorBoardBackground, false)

	for row := 0; row < snap.height; row++ {
		for col := 0; col < snap.width; col++ {
			x := float32(bx) + float32(col)*size
			y := float32(by) + float32(row)*size
			e.drawTile(screen, snap.stateAt(col, row), x, y, size)
		}
	}

	if !snap.finished {
		x := float32(bx) + float32(snap.cursorCol)*size
		y := float32(by) + float32(snap.cursorRow)*size
		vector.StrokeRect(screen, x+1, y+1, size-2, size-2, 2, colorCursor, false)
	}
}

// drawTile draws one tile at pixel position x, y
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, s board.CellState, x, y, size float32) {
	const gap = 1

	switch s.Kind {
	case board.Hidden, board.Flagged:
		vector.DrawFilledRect(screen, x+gap, y+gap, size-2*gap, size-2*gap, colorHidden, false)
		vector.DrawFilledRect(screen, x+gap, y+gap, size-2*gap, 3, colorHiddenEdge, false)
		if s.Kind == board.Flagged {
			e.drawTileText(screen, IconFlag, x, y, size, colorFlag)
		}
	case board.MineRevealed:
		vector.DrawFilledRect(screen, x+gap, y+gap, size-2*gap, size-2*gap, colorMineBackground, false)
		e.drawTileText(screen, IconMine, x, y, size, colorMine)
	case board.SafeRevealed:
		vector.DrawFilledRect(screen, x+gap, y+gap, size-2*gap, size-2*gap, colorRevealed, false)
		if s.Count > 0 && s.Count < len(numberColors) {
			e.drawTileText(screen, fmt.Sprint(s.Count), x, y, size, numberColors[s.Count])
		}
	}
}

// drawTileText centres a glyph in a tile
func (e *EbitenRenderer) drawTileText(screen *ebiten.Image, str string, x, y, size float32, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x+size/2), float64(y+size/2))
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, e.getTileFontFace(), op)
}

// drawText draws one line of UI text, vertically centred on y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}

// drawMessages draws the newest messages below the board
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap renderSnapshot) {
	_, by := e.boardOrigin(snap)
	face := e.getUIFontFace()
	lineHeight := int(e.getUIFontSize() * 1.5)
	y := by + snap.height*e.tileSize + boardMargin + lineHeight/2

	messages := snap.messages
	if len(messages) > messageLines {
		messages = messages[len(messages)-messageLines:]
	}
	for i, msg := range messages {
		col := colorSubtle
		if i == len(messages)-1 {
			col = colorText
		}
		e.drawText(screen, msg, boardMargin, y+i*lineHeight, col, face, text.AlignStart)
	}
}
