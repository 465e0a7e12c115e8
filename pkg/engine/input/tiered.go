package input

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
	DeviceNetwork
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Tile actions, applied at the cursor or at an explicit target
	ActionReveal
	ActionChord
	ActionFlag

	// Meta / UI
	ActionNewGame
	ActionHelp
	ActionQuit

	// Developer
	ActionDump
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Targeted intents carry the tile they apply to; untargeted tile actions use the cursor.
type Intent struct {
	Action   Action
	Col      int
	Row      int
	Targeted bool
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "space", "r 3 4").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Terminal input arrives one line or key at a time, so this is a normalising pass.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Cursor (arrows, NSEW, Vim)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	// Tile actions at the cursor
	"space":  ActionReveal,
	"enter":  ActionReveal,
	"":       ActionReveal,
	"r":      ActionReveal,
	"reveal": ActionReveal,
	"c":      ActionChord,
	"chord":  ActionChord,
	"f":      ActionFlag,
	"flag":   ActionFlag,

	// Help
	"?":    ActionHelp,
	"help": ActionHelp,

	// New game
	"n":   ActionNewGame,
	"new": ActionNewGame,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	// Debug dump of the full layout
	"dump": ActionDump,
}

// verbs are the tile actions that accept an explicit "col row" target
var verbs = map[string]Action{
	"r":      ActionReveal,
	"reveal": ActionReveal,
	"c":      ActionChord,
	"chord":  ActionChord,
	"f":      ActionFlag,
	"flag":   ActionFlag,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent. Codes of the form
// "<verb> <col> <row>" (or "<verb> col,row") become targeted intents.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	if intent, ok := parseTargeted(ev.Code); ok {
		return intent
	}
	return Intent{Action: ActionNone}
}

func parseTargeted(code string) (Intent, bool) {
	fields := strings.FieldsFunc(code, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 3 {
		return Intent{}, false
	}
	act, ok := verbs[fields[0]]
	if !ok {
		return Intent{}, false
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Intent{}, false
	}
	row, err := strconv.Atoi(fields[2])
	if err != nil {
		return Intent{}, false
	}
	return Intent{Action: act, Col: col, Row: row, Targeted: true}, true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionReveal:
		return "Reveal"
	case ActionChord:
		return "Chord"
	case ActionFlag:
		return "Flag"
	case ActionNewGame:
		return "New Game"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionDump:
		return "Dump Board"
	default:
		return "None"
	}
}

// ParseAction maps an action verb ("reveal", "chord", "flag") to its Action
func ParseAction(verb string) (Action, bool) {
	act, ok := verbs[strings.ToLower(strings.TrimSpace(verb))]
	return act, ok
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		if code == "" {
			continue
		}
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
