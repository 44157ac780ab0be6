package printer

import (
	"errors"
	"io"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 80

var errNotTerminal = errors.New("output is not a terminal")

// WidthSource reports the current terminal column count.
type WidthSource interface {
	Width() (int, error)
}

// WidthFunc adapts a plain function to [WidthSource].
type WidthFunc func() (int, error)

// Width calls f.
func (f WidthFunc) Width() (int, error) {
	return f()
}

// TerminalWidth queries the width of the terminal to which Out is connected
// (e.g. if Out is os.Stdout).
type TerminalWidth struct {
	Out io.Writer
}

// Width returns the terminal width, or an error if Out is not a terminal.
func (tw TerminalWidth) Width() (int, error) {
	fder, ok := tw.Out.(interface{ Fd() uintptr })
	if !ok {
		return 0, errNotTerminal
	}
	fd := int(fder.Fd())
	if !term.IsTerminal(fd) {
		return 0, errNotTerminal
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, err
	}
	return width, nil
}
