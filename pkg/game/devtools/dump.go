// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"minesweeper/pkg/game/export"
	"minesweeper/pkg/game/state"
)

// DefaultDumpFile is where the dump command writes when no other path is set
const DefaultDumpFile = "board.txt"

// layoutSymbol returns the full-layout symbol for a tile: '*' for a mine,
// '0'..'8' for its count, '?' while the minefield is not yet placed.
func layoutSymbol(g *state.Game, col, row int) byte {
	if !g.Board.Populated() {
		return export.CodeUnknown
	}
	t, err := g.Board.Tile(col, row)
	if err != nil {
		return export.CodeUnknown
	}
	if t.IsMine() {
		return export.CodeMine
	}
	return '0' + byte(t.NeighborMineCount())
}

// writeGrid writes one row per line, marking the cursor with '@' when withCursor is set.
func writeGrid(w io.Writer, g *state.Game, symbol func(col, row int) byte, withCursor bool) {
	for row := 0; row < g.Board.Height(); row++ {
		line := make([]byte, 0, g.Board.Width())
		for col := 0; col < g.Board.Width(); col++ {
			if withCursor && !g.Finished && col == g.CursorCol && row == g.CursorRow {
				line = append(line, '@')
				continue
			}
			line = append(line, symbol(col, row))
		}
		fmt.Fprintf(w, "%s\n", line)
	}
}

// WriteDump writes a debug dump of the session: metadata, legend, the player's
// view and the full layout.
func WriteDump(w io.Writer, g *state.Game) error {
	if g.Board == nil {
		return fmt.Errorf("no board")
	}
	b := g.Board

	fmt.Fprintln(w, "=== BOARD DUMP ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", b.Width())
	fmt.Fprintf(w, "height: %d\n", b.Height())
	fmt.Fprintf(w, "mines: %d\n", b.MineCount())
	fmt.Fprintf(w, "flags: %d\n", b.FlagCount())
	fmt.Fprintf(w, "coordinate_system: col,row (0-based, col=horizontal, row=vertical)\n")
	fmt.Fprintf(w, "cursor: %d,%d\n", g.CursorCol, g.CursorRow)
	fmt.Fprintf(w, "populated: %v\n", b.Populated())
	fmt.Fprintf(w, "game_over: %v\n", b.IsGameOver())
	fmt.Fprintf(w, "won: %v\n", b.DidWin())
	fmt.Fprintf(w, "cells: %s\n", export.EncodeBoard(b))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "- = hidden  F = flagged  * = mine  0-8 = adjacent mines  ? = not placed yet  @ = cursor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Board (player view) ---")
	states := b.States()
	writeGrid(w, g, func(col, row int) byte {
		return export.Code(states[row*b.Width()+col])
	}, true)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Board (full layout) ---")
	writeGrid(w, g, func(col, row int) byte {
		return layoutSymbol(g, col, row)
	}, false)
	return nil
}

// DumpToFile writes WriteDump to path and returns the absolute path written.
func DumpToFile(g *state.Game, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, g); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
