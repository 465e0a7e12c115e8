package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	keyEsc       = 0x1b
	keyCtrlC     = 3
	keyBackspace = 127
	keyCtrlH     = 8
)

// readArrowKey reads the rest of an escape sequence after ESC.
// Returns the arrow code, or "" for sequences that are not arrows.
func readArrowKey(r io.ByteReader) string {
	b2, err := r.ReadByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := r.ReadByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadKeys decodes one input from a raw-mode byte stream.
// Arrow keys, space and a bare Enter return immediately; other printable input
// is collected until Enter, with backspace editing. Typed characters are echoed to echo.
func ReadKeys(r io.ByteReader, echo io.Writer) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b1 {
	case keyEsc:
		if code := readArrowKey(r); code != "" {
			return code, nil
		}
		return "unknown", nil
	case keyCtrlC:
		return "ctrl_c", nil
	case ' ':
		return "space", nil
	case '\n', '\r':
		return "enter", nil
	}

	var line []byte
	if b1 >= 32 && b1 < 127 {
		line = append(line, b1)
		fmt.Fprint(echo, string(b1))
	}

	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return string(line), nil
			}
			return string(line), err
		}

		switch {
		case b == keyEsc:
			// arrows pressed during text entry are dropped
			readArrowKey(r)
		case b == keyBackspace || b == keyCtrlH:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(echo, "\b \b")
			}
		case b == '\n' || b == '\r':
			fmt.Fprint(echo, "\r\n")
			return string(line), nil
		case b == keyCtrlC:
			return "ctrl_c", nil
		case b >= 32 && b < 127:
			line = append(line, b)
			fmt.Fprint(echo, string(b))
		}
	}
}

// GetInputWithArrows puts the terminal into raw mode and reads one input with ReadKeys.
// When stdin is not a terminal it falls back to reading a line.
func GetInputWithArrows() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(os.Stdin)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return ReadKeys(unbuffered{os.Stdin}, os.Stdout)
}

// readLine reads a newline-terminated line for piped, non-interactive input
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

// unbuffered reads one byte at a time so raw-mode reads never block on a full buffer
type unbuffered struct {
	r io.Reader
}

func (u unbuffered) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(u.r, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}
