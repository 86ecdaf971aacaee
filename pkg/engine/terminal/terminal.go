package terminal

import (
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Escape sequences for cursor control
const (
	ClearScreen = "\033[H\033[J"
	ClearLine   = "\033[1F\033[2K"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// VisibleLen returns the printed width of s, ignoring color codes
func VisibleLen(s string) int {
	return len([]rune(color.ClearCode(s)))
}

// Center pads s on the left so it sits in the middle of width columns
func Center(s string, width int) string {
	pad := (width - VisibleLen(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
