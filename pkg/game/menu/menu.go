// Package menu provides the numbered terminal menus of the game and the
// terminal driver that feeds player moves into a session.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	engineinput "darkgrid/pkg/engine/input"
	"darkgrid/pkg/engine/terminal"
	"darkgrid/pkg/game/locale"
	"darkgrid/pkg/game/renderer"
	gameworld "darkgrid/pkg/game/world"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
}

// PreviewRenderer is an optional interface for renderers that can draw a
// sample game screen behind the settings menu.
type PreviewRenderer interface {
	RenderPreview(m *gameworld.Map)
}

// Console bundles the player's input with the active renderer.
type Console struct {
	In       *engineinput.Reader
	Renderer renderer.Renderer

	// DumpDir, when set, receives a map dump of every new game
	DumpDir string
}

// NewConsole creates a console.
func NewConsole(in *engineinput.Reader, r renderer.Renderer) *Console {
	return &Console{In: in, Renderer: r}
}

// RunMenu clears the screen, lists the items numbered from 1 and reads a
// choice until a valid one is given. It returns the index of the chosen
// item in items.
func RunMenu(c *Console, title string, items []MenuItem) (int, error) {
	c.Renderer.Clear()
	if title != "" {
		c.Renderer.ShowMessage(terminal.Center(title, terminal.GetWidth()))
	}

	for i, item := range items {
		c.Renderer.ShowMessage(fmt.Sprintf("%s: %d", item.GetLabel(), i+1))
	}

	prompt := locale.Get("CHOOSE_OPTION")
	for {
		line, err := c.In.Prompt(prompt)
		if err != nil {
			return -1, err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		prompt = terminal.ClearLine + locale.Get("NOT_AN_OPTION")
	}
}

// WaitForEnter shows the return-to-menu prompt and blocks until a line is
// read.
func WaitForEnter(c *Console) error {
	_, err := c.In.Prompt(locale.Get("PRESS_ENTER"))
	return err
}
