package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/terminal"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/locale"
	"minesweeper/pkg/game/menu"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// Icon constants for the board
const (
	IconHidden = "■"
	IconFlag   = "⚑"
	IconMine   = "✱"
	IconEmpty  = "·"
)

// Layout
const (
	// CellWidth is the number of terminal columns each tile takes
	CellWidth = 2
	// ChromeRows is the lines printed around the board: title, rulers, status, messages and prompt
	ChromeRows = 16
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorHidden      color.Style
	colorFlag        color.Style
	colorMine        color.Style
	colorEmpty       color.Style
	colorCursor      color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorWin         color.Style
	colorLose        color.Style
	colorSubtle      color.Style
	colorStatus      color.Style
	colorNumbers     [9]color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	if t.out == nil {
		t.out = os.Stdout
	}
	t.colorHidden = color.Style{color.FgGray}
	t.colorFlag = color.Style{color.FgRed, color.OpBold}
	t.colorMine = color.Style{color.FgLightWhite, color.BgRed, color.OpBold}
	t.colorEmpty = color.Style{color.FgGray}
	t.colorCursor = color.Style{color.FgBlack, color.BgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorWin = color.Style{color.FgGreen, color.OpBold}
	t.colorLose = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorStatus = color.Style{color.FgCyan}

	t.colorNumbers = [9]color.Style{
		{color.FgGray},
		{color.FgBlue, color.OpBold},
		{color.FgGreen, color.OpBold},
		{color.FgRed, color.OpBold},
		{color.FgMagenta, color.OpBold},
		{color.FgYellow},
		{color.FgCyan},
		{color.FgLightWhite},
		{color.FgGray, color.OpBold},
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput reads one key or typed command and maps it to an intent.
// A closed input stream quits.
func (t *TUIRenderer) GetInput() input.Intent {
	code, err := input.GetInputWithArrows()
	if err != nil {
		return input.Intent{Action: input.ActionQuit}
	}
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   code,
	}
	debounced := input.NewDebouncedInput(raw)
	return input.MapToIntent(debounced)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHidden:
		return t.colorHidden.Sprint(text)
	case renderer.StyleFlag:
		return t.colorFlag.Sprint(text)
	case renderer.StyleMine:
		return t.colorMine.Sprint(text)
	case renderer.StyleEmpty:
		return t.colorEmpty.Sprint(text)
	case renderer.StyleCursor:
		return t.colorCursor.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleWin:
		return t.colorWin.Sprint(text)
	case renderer.StyleLose:
		return t.colorLose.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleStatus:
		return t.colorStatus.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message and colours its markup (GT, WIN, LOSE, ACTION)
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(t.styleMarkup, msg, args...)
}

func (t *TUIRenderer) styleMarkup(function, operand string) string {
	switch function {
	case renderer.MarkupTranslate:
		return operand
	case renderer.MarkupWin:
		return t.colorWin.Sprint(operand)
	case renderer.MarkupLose:
		return t.colorLose.Sprint(operand)
	case renderer.MarkupAction:
		if operand == "" {
			return ""
		}
		return t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
	default:
		return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
	}
}

// ShowMessage prints a line outside the frame
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders the board, status bar, messages pane and prompt
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.printTitle(g)

	if !terminal.FitsGrid(g.Board.Width(), g.Board.Height(), CellWidth, ChromeRows) {
		w, h := terminal.GetSize()
		fmt.Fprintln(t.out, t.colorLose.Sprint(locale.Get("TOO_LARGE", w, h)))
	}

	for _, line := range t.boardLines(g) {
		fmt.Fprintln(t.out, line)
	}

	t.printStatusBar(g)

	if g.ShowHelp {
		t.printBindings()
	} else {
		t.printPossibleActions()
	}

	t.printMessagesPane(g)

	fmt.Fprint(t.out, "\n> ")
}

func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

func (t *TUIRenderer) printTitle(g *state.Game) {
	title := t.colorAction.Sprint(locale.Get("TITLE"))
	counter := t.colorStatus.Sprint(locale.Get("MINES_LEFT", g.MinesRemaining()))
	fmt.Fprintf(t.out, "%s    %s\n\n", title, counter)
}

// boardLines draws the grid with column rulers on top and row numbers on the left
func (t *TUIRenderer) boardLines(g *state.Game) []string {
	b := g.Board
	width, height := b.Width(), b.Height()
	lines := make([]string, 0, height+2)

	if width > 10 {
		var tens strings.Builder
		tens.WriteString("    ")
		for col := 0; col < width; col++ {
			digit := " "
			if col >= 10 {
				digit = fmt.Sprint(col / 10 % 10)
			}
			tens.WriteString(" " + digit)
		}
		lines = append(lines, t.colorSubtle.Sprint(tens.String()))
	}

	var ones strings.Builder
	ones.WriteString("    ")
	for col := 0; col < width; col++ {
		fmt.Fprintf(&ones, " %d", col%10)
	}
	lines = append(lines, t.colorSubtle.Sprint(ones.String()))

	for row := 0; row < height; row++ {
		var line strings.Builder
		line.WriteString(t.colorSubtle.Sprintf("%3d ", row))
		for col := 0; col < width; col++ {
			line.WriteString(" ")
			line.WriteString(t.renderCell(g, col, row))
		}
		lines = append(lines, line.String())
	}

	return lines
}

// renderCell returns the string representation of a tile
func (t *TUIRenderer) renderCell(g *state.Game, col, row int) string {
	s, err := g.Board.State(col, row)
	if err != nil {
		return " "
	}

	icon, style := IconHidden, t.colorHidden
	switch s.Kind {
	case board.Flagged:
		icon, style = IconFlag, t.colorFlag
	case board.MineRevealed:
		icon, style = IconMine, t.colorMine
	case board.SafeRevealed:
		if s.Count == 0 {
			icon, style = IconEmpty, t.colorEmpty
		} else {
			icon, style = fmt.Sprint(s.Count), t.colorNumbers[s.Count]
		}
	}

	if !g.Finished && col == g.CursorCol && row == g.CursorRow {
		return t.colorCursor.Sprint(icon)
	}
	return style.Sprint(icon)
}

// printPossibleActions prints the available actions
func (t *TUIRenderer) printPossibleActions() {
	t.printString("ACTION{reveal}  ACTION{flag}  ACTION{chord}  ACTION{new}  ACTION{quit}  ACTION{?help}\n")
}

// printBindings lists every key binding in place of the actions line
func (t *TUIRenderer) printBindings() {
	fmt.Fprintln(t.out, t.colorAction.Sprint(locale.Get("KEYS")))
	for _, line := range menu.BindingLines() {
		fmt.Fprintf(t.out, "  %s\n", line)
	}
}

// printStatusBar renders the cursor position, or the outcome once the game is over
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	fmt.Fprintln(t.out)
	switch {
	case g.Finished && g.Board.DidWin():
		fmt.Fprintln(t.out, t.colorWin.Sprint(locale.Get("WON")))
	case g.Finished:
		fmt.Fprintln(t.out, t.colorLose.Sprint(locale.Get("GAME_OVER")))
	default:
		fmt.Fprintln(t.out, t.colorStatus.Sprint(locale.Get("CURSOR", g.CursorCol, g.CursorRow)))
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.GetWidth()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", rightLen)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
