package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFontSource parses the embedded Go Mono face
func loadFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading Go Mono font: %w", err)
	}
	return src, nil
}

// getTileFontSize returns the font size for tile numbers, scaled to the current tile size
func (e *EbitenRenderer) getTileFontSize() float64 {
	return baseFontSize * float64(e.tileSize) / defaultTileSize
}

// getUIFontSize returns the font size for the header and the message log
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := e.getTileFontSize() * 0.75
	if size < 10 {
		size = 10
	}
	return size
}

// getTileFontFace returns a cached font face for tile numbers
func (e *EbitenRenderer) getTileFontFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedTileFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedTileFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedTileFace
}

// getUIFontFace returns a cached font face for UI text
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedUIFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedUIFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedUIFace
}
