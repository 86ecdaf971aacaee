package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"darkgrid/pkg/engine/terminal"
	"darkgrid/pkg/game/locale"
	"darkgrid/pkg/game/renderer"
	gameworld "darkgrid/pkg/game/world"
)

// ColorMenuItem represents a recolorable role in the settings menu.
type ColorMenuItem struct {
	Role  renderer.Role
	Color renderer.RGB
}

// GetLabel returns the display label for this color menu item.
func (m *ColorMenuItem) GetLabel() string {
	return fmt.Sprintf("%s: %s", locale.Get(m.Role.LocaleKey()), m.Color)
}

// GetColorMenuItems returns one item per role with the palette's colors.
func GetColorMenuItems(p renderer.Palette) []*ColorMenuItem {
	roles := renderer.AllRoles()
	items := make([]*ColorMenuItem, len(roles))
	for i, role := range roles {
		items[i] = &ColorMenuItem{Role: role, Color: p.Get(role)}
	}
	return items
}

// RunSettings shows the color settings screen until the player enters
// anything other than a role number. Each change replaces the renderer's
// palette.
func RunSettings(c *Console) error {
	example := gameworld.NewExampleMap()

	for {
		if pr, ok := c.Renderer.(PreviewRenderer); ok {
			pr.RenderPreview(example)
		} else {
			c.Renderer.Clear()
		}

		items := GetColorMenuItems(c.Renderer.Palette())
		c.Renderer.ShowMessage(locale.Get("SETTINGS_TITLE"))
		for i, item := range items {
			line := fmt.Sprintf("\t%d. %s", i+1, item.GetLabel())
			c.Renderer.ShowMessage(c.Renderer.StyleText(line, item.Role))
		}
		c.Renderer.ShowMessage(locale.Get("SETTINGS_BACK"))

		option, err := c.In.Prompt(locale.Get("SETTINGS_PROMPT"))
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(option))
		if err != nil || n < 1 || n > len(items) {
			return nil
		}

		rgb, err := readColor(c)
		if err != nil {
			return err
		}

		role := items[n-1].Role
		c.Renderer.SetPalette(c.Renderer.Palette().WithRole(role, rgb))
		log.Info().Str("role", locale.Get(role.LocaleKey())).Str("color", rgb.String()).Msg("palette changed")
	}
}

// readColor prompts until a valid "r g b" triple is entered.
func readColor(c *Console) (renderer.RGB, error) {
	prompt := locale.Get("COLOR_PROMPT")
	for {
		line, err := c.In.Prompt(prompt)
		if err != nil {
			return renderer.RGB{}, err
		}
		rgb, err := renderer.ParseRGB(line)
		if err == nil {
			return rgb, nil
		}
		log.Debug().Err(err).Str("input", line).Msg("rejected color")
		prompt = terminal.ClearLine + locale.Get("COLOR_RETRY")
	}
}
