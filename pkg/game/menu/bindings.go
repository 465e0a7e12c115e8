// Package menu builds the key binding listing shown by the help screen.
package menu

import (
	"fmt"
	"strings"

	engineinput "minesweeper/pkg/engine/input"
)

// BindingItem is one row of the listing: an action and the codes bound to it.
type BindingItem struct {
	Action engineinput.Action
	Codes  []string
}

// GetLabel returns the display label for this binding.
func (b BindingItem) GetLabel() string {
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(b.Action), codeText)
}

// listed is the display order of the listing
var listed = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionReveal,
	engineinput.ActionFlag,
	engineinput.ActionChord,
	engineinput.ActionNewGame,
	engineinput.ActionHelp,
	engineinput.ActionQuit,
	engineinput.ActionDump,
}

// Bindings returns the current bindings in display order.
func Bindings() []BindingItem {
	byAction := engineinput.GetBindingsByAction()
	items := make([]BindingItem, 0, len(listed))
	for _, act := range listed {
		items = append(items, BindingItem{Action: act, Codes: byAction[act]})
	}
	return items
}

// BindingLines returns the labels of Bindings, followed by the targeted form.
func BindingLines() []string {
	items := Bindings()
	lines := make([]string, 0, len(items)+1)
	for _, item := range items {
		lines = append(lines, item.GetLabel())
	}
	return append(lines, "Target a tile: reveal|flag|chord <col> <row>")
}
