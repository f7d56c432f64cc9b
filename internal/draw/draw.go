// Package draw renders to ANSI terminals: a half-block canvas for shapes,
// a chunked writer for text, and cursor/mouse control sequences.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a canvas pixel color. The zero value is an unset pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorYellow
	ColorRed
	ColorCyan
	ColorDim
)

// ANSI escape sequences for each color.
var colorCodes = [...]string{
	ColorNone:   "\033[0m",
	ColorWhite:  "\033[97m",
	ColorYellow: "\033[93m",
	ColorRed:    "\033[91m",
	ColorCyan:   "\033[96m",
	ColorDim:    "\033[90m",
}

// ColorReset restores the terminal's default attributes.
const ColorReset = "\033[0m"

// Code returns the ANSI sequence selecting c.
func (c Color) Code() string {
	if int(c) < len(colorCodes) {
		return colorCodes[c]
	}
	return ColorReset
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// EnableMouse turns on any-motion mouse reporting in SGR format, so the
// input stream receives pointer positions without a button held.
func EnableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1003h\033[?1006h")
}

// DisableMouse turns mouse reporting back off.
func DisableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1006l\033[?1003l")
}

// Bell rings the terminal bell.
func Bell(w io.Writer) {
	fmt.Fprint(w, "\a")
}

// TerminalSizeRawWith returns the terminal size reported by f, or 80x24
// alongside the error when it cannot be determined.
func TerminalSizeRawWith(f TermSizeFunc) (width, height int, err error) {
	width, height, err = f()
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24, err
	}
	return width, height, nil
}
