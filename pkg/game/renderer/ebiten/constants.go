// Package ebiten provides an Ebiten-based 2D graphical renderer for the minesweeper board.
package ebiten

import "image/color"

// Color palette for the board
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorBoardBackground = color.RGBA{15, 15, 26, 255}    // Darker for board area
	colorHidden          = color.RGBA{90, 95, 130, 255}   // Raised tile
	colorHiddenEdge      = color.RGBA{130, 135, 175, 255} // Tile highlight
	colorRevealed        = color.RGBA{40, 42, 62, 255}    // Opened tile
	colorMineBackground  = color.RGBA{150, 40, 40, 255}   // Mine once revealed
	colorFlag            = color.RGBA{255, 90, 90, 255}   // Bright red
	colorMine            = color.RGBA{250, 250, 250, 255} // White
	colorCursor          = color.RGBA{255, 220, 100, 255} // Yellow hover outline
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorWin             = color.RGBA{100, 255, 150, 255} // Green
	colorLose            = color.RGBA{255, 120, 120, 255} // Red
)

// numberColors colours the neighbour counts 1 through 8
var numberColors = [9]color.Color{
	colorSubtle,
	color.RGBA{110, 160, 255, 255}, // 1 blue
	color.RGBA{100, 220, 120, 255}, // 2 green
	color.RGBA{255, 110, 110, 255}, // 3 red
	color.RGBA{200, 130, 255, 255}, // 4 purple
	color.RGBA{255, 170, 80, 255},  // 5 orange
	color.RGBA{80, 220, 220, 255},  // 6 cyan
	color.RGBA{230, 230, 230, 255}, // 7 white
	color.RGBA{160, 160, 160, 255}, // 8 gray
}

// Icon constants - Unicode characters for proper font rendering
const (
	IconFlag = "⚑"
	IconMine = "✱"
)

// Layout constants
const (
	defaultTileSize = 32
	boardMargin     = 16
	headerHeight    = 48
	messageLines    = 4
	minWindowWidth  = 360
	baseFontSize    = 16.0 // Base font size at the default tile size
)
