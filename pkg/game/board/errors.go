package board

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrConfiguration matches every *ConfigurationError
	ErrConfiguration = errors.New("invalid board configuration")
	// ErrOutOfRange matches every *OutOfRangeError
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrPlacement is returned when a placer produces an unusable mine layout
	ErrPlacement = errors.New("invalid mine placement")
)

// ConfigurationError reports board dimensions or a mine count that cannot form a game
type ConfigurationError struct {
	Width  int
	Height int
	Mines  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid board %dx%d with %d mines: %s", e.Width, e.Height, e.Mines, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// OutOfRangeError reports a coordinate outside the grid
type OutOfRangeError struct {
	Col    int
	Row    int
	Width  int
	Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("(%d, %d) is outside the %dx%d board", e.Col, e.Row, e.Width, e.Height)
}

// Is lets errors.Is(err, ErrOutOfRange) match
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// ValidateConfig checks the construction parameters: both dimensions at least 1
// and 0 <= mines < width*height, so the first click always has a safe cell.
// The cell count must fit in an int.
func ValidateConfig(width, height, mines int) error {
	reason := ""
	switch {
	case width < 1:
		reason = "width must be at least 1"
	case height < 1:
		reason = "height must be at least 1"
	case width > math.MaxInt/height:
		reason = "board too large"
	case mines < 0:
		reason = "mine count must not be negative"
	case mines >= width*height:
		reason = fmt.Sprintf("mine count must be below %d", width*height)
	}
	if reason == "" {
		return nil
	}
	return &ConfigurationError{Width: width, Height: height, Mines: mines, Reason: reason}
}
