package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"darkgrid/pkg/engine/terminal"
	"darkgrid/pkg/game/entities"
	"darkgrid/pkg/game/locale"
	"darkgrid/pkg/game/renderer"
	"darkgrid/pkg/game/state"
	gameworld "darkgrid/pkg/game/world"
)

// Separator is drawn between the map, the event pane and the status line
const Separator = "---------------------"

// Icon constants for map cells
const (
	IconHidden = "' '"
	IconEmpty  = "' '"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	palette renderer.Palette

	colorGameOver color.Style
}

// New creates a new TUI renderer writing to out
func New(out io.Writer, palette renderer.Palette) *TUIRenderer {
	return &TUIRenderer{
		out:           out,
		palette:       palette,
		colorGameOver: color.Style{color.FgRed, color.OpBold},
	}
}

// Palette returns the colors in use
func (t *TUIRenderer) Palette() renderer.Palette {
	return t.palette
}

// SetPalette replaces the colors in use
func (t *TUIRenderer) SetPalette(p renderer.Palette) {
	t.palette = p
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, terminal.ClearScreen)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.style(renderer.RoleDefault, msg))
}

// StyleText colors text with the palette color of role
func (t *TUIRenderer) StyleText(text string, role renderer.Role) string {
	return t.style(role, text)
}

func (t *TUIRenderer) style(role renderer.Role, s string) string {
	return t.palette.Get(role).Style().Sprint(s)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(m *gameworld.Map, p *state.Player, found entities.Kind) {
	t.Clear()

	t.printMap(m)

	if lines := EventLines(found, p.Alive); len(lines) > 0 {
		fmt.Fprintf(t.out, "\n%s\n", t.style(renderer.RoleDefault, Separator))
		for _, line := range lines {
			fmt.Fprintln(t.out, t.style(renderer.RoleEvent, line))
		}
	}
	fmt.Fprintf(t.out, "\n%s\n\n", t.style(renderer.RoleDefault, Separator))

	t.printStatusBar(p)
}

// RenderPreview renders the settings preview: a sample map with a sample
// event and status line in the current colors
func (t *TUIRenderer) RenderPreview(m *gameworld.Map) {
	t.Clear()
	t.printMap(m)
	fmt.Fprintf(t.out, "\n%s\n", t.style(renderer.RoleDefault, Separator))
	fmt.Fprintln(t.out, t.style(renderer.RoleEvent, locale.Get("EXTRA_INFO")))
	fmt.Fprintf(t.out, "\n%s\n\n", t.style(renderer.RoleDefault, Separator))
	t.printStatusBar(state.NewPlayer(""))
}

// RenderGameOver renders the end-of-game banner
func (t *TUIRenderer) RenderGameOver(ending renderer.Ending) {
	if ending == renderer.EndingStuck {
		fmt.Fprintln(t.out, t.style(renderer.RoleEvent, locale.Get("STUCK")))
	}
	fmt.Fprintln(t.out, t.colorGameOver.Sprint(locale.Get("GAME_OVER")))
}

// printMap prints the grid one row per line
func (t *TUIRenderer) printMap(m *gameworld.Map) {
	cells := m.Cells()
	for row := 0; row < m.Height(); row++ {
		parts := make([]string, 0, m.Width())
		for col := 0; col < m.Width(); col++ {
			parts = append(parts, t.renderCell(cells[row*m.Width()+col]))
		}
		fmt.Fprintln(t.out, t.style(renderer.RoleDefault, "[")+strings.Join(parts, t.style(renderer.RoleDefault, ", "))+t.style(renderer.RoleDefault, "]"))
	}
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(c gameworld.CellView) string {
	switch {
	case !c.Revealed:
		return t.style(renderer.RoleDefault, IconHidden)
	case c.HasEntity:
		return t.style(renderer.RoleEntities, fmt.Sprintf("'%s'", c.Kind.Glyph()))
	default:
		return t.style(renderer.RoleRevealedTiles, IconEmpty)
	}
}

// printStatusBar prints the player's name and resources
func (t *TUIRenderer) printStatusBar(p *state.Player) {
	status := fmt.Sprintf(locale.Get("STATUS"), p.Name, p.Score, p.Swords, p.Potions)
	fmt.Fprintf(t.out, "%s\n\n", t.style(renderer.RolePlayerState, status))
}

// EventLines describes what the last move uncovered. alive is the player's
// state after the effect was applied.
func EventLines(found entities.Kind, alive bool) []string {
	var event string
	switch found {
	case entities.Treasure:
		event = "EVENT_TREASURE"
	case entities.Sword:
		event = "EVENT_SWORD"
	case entities.Potion:
		event = "EVENT_POTION"
	case entities.Monster:
		event = "EVENT_MONSTER"
	case entities.Venom:
		event = "EVENT_VENOM"
	default:
		return nil
	}

	lines := []string{locale.Get(event)}
	if !found.IsHazard() {
		return lines
	}

	switch {
	case !alive:
		lines = append(lines, locale.Get("YOU_DIE"))
	case found == entities.Monster:
		lines = append(lines, locale.Get("SWORD_USED"))
	default:
		lines = append(lines, locale.Get("POTION_USED"))
	}
	return lines
}
