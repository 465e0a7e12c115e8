package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"minesweeper/pkg/game/locale"
)

// MarkupPattern matches markup functions such as GT{KEY}, WIN{text} or ACTION{flag}.
var MarkupPattern = regexp.MustCompile(`([A-Z_]+){([^{}]*)}`)

// Markup function names understood by every renderer
const (
	MarkupTranslate = "GT"
	MarkupWin       = "WIN"
	MarkupLose      = "LOSE"
	MarkupAction    = "ACTION"
)

// StyleFunc styles the operand of one markup function
type StyleFunc func(function, operand string) string

// ExpandMarkup formats msg and replaces each markup function with style's result.
// GT{KEY} is translated before it reaches style.
func ExpandMarkup(style StyleFunc, msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	for _, match := range MarkupPattern.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]
		if function == MarkupTranslate {
			operand = locale.Get(operand)
		}
		ret = strings.Replace(ret, match[0], style(function, operand), 1)
	}

	return ret
}

// PlainText expands markup without styling, for logs, the network views and the GUI
func PlainText(msg string, args ...any) string {
	return ExpandMarkup(func(_, operand string) string { return operand }, msg, args...)
}

// ApplyMarkup formats a message with the current renderer, or as plain text when none is active.
func ApplyMarkup(msg string, args ...any) string {
	return FormatText(msg, args...)
}
