package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/generator"
	"minesweeper/pkg/game/state"
)

func newGame(t *testing.T) *state.Game {
	t.Helper()
	g, err := state.NewGame(3, 3, 1, generator.NewFixed(world.Position{Col: 0, Row: 0}))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func section(t *testing.T, dump, title string, rows int) string {
	t.Helper()
	i := strings.Index(dump, title+"\n")
	if i < 0 {
		t.Fatalf("dump missing %q:\n%s", title, dump)
	}
	lines := strings.Split(dump[i+len(title)+1:], "\n")
	return strings.Join(lines[:rows], "\n")
}

func TestWriteDump_BeforeFirstReveal(t *testing.T) {
	g := newGame(t)
	var buf bytes.Buffer
	if err := WriteDump(&buf, g); err != nil {
		t.Fatal(err)
	}
	dump := buf.String()

	if got, want := section(t, dump, "--- Board (player view) ---", 3), "---\n-@-\n---"; got != want {
		t.Errorf("player view =\n%s\nwant\n%s", got, want)
	}
	if got, want := section(t, dump, "--- Board (full layout) ---", 3), "???\n???\n???"; got != want {
		t.Errorf("full layout =\n%s\nwant\n%s", got, want)
	}
	if !strings.Contains(dump, "populated: false") {
		t.Errorf("dump missing populated flag:\n%s", dump)
	}
}

func TestWriteDump_AfterReveal(t *testing.T) {
	g := newGame(t)
	if err := g.Board.Reveal(2, 2); err != nil {
		t.Fatal(err)
	}
	g.Board.ToggleFlag(0, 0)
	g.CursorCol, g.CursorRow = 2, 0

	var buf bytes.Buffer
	if err := WriteDump(&buf, g); err != nil {
		t.Fatal(err)
	}
	dump := buf.String()

	if got, want := section(t, dump, "--- Board (player view) ---", 3), "F1@\n110\n000"; got != want {
		t.Errorf("player view =\n%s\nwant\n%s", got, want)
	}
	if got, want := section(t, dump, "--- Board (full layout) ---", 3), "*10\n110\n000"; got != want {
		t.Errorf("full layout =\n%s\nwant\n%s", got, want)
	}
	if !strings.Contains(dump, "cells: F10110000") {
		t.Errorf("dump missing the encoded cells:\n%s", dump)
	}
}

func TestDumpToFile(t *testing.T) {
	g := newGame(t)
	path := filepath.Join(t.TempDir(), "dump.txt")

	got, err := DumpToFile(g, path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("DumpToFile path = %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "=== BOARD DUMP ===") {
		t.Errorf("file starts with %q", string(data[:20]))
	}
}
