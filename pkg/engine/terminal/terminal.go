// Package terminal reports the size of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback size when the output is not a terminal
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height of the terminal on fd.
// Anything that is not a terminal, or reports a zero size, gets the defaults.
func Size(fd int) (width, height int) {
	if !term.IsTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the width of the terminal on stdout
func GetWidth() int {
	width, _ := Size(int(os.Stdout.Fd()))
	return width
}
