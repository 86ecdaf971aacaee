package renderer

import (
	"darkgrid/pkg/game/entities"
	"darkgrid/pkg/game/state"
	gameworld "darkgrid/pkg/game/world"
)

// Ending tells the renderer why a game finished
type Ending int

const (
	EndingDied Ending = iota
	EndingStuck
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Clear clears the display
	Clear()

	// RenderFrame renders the map, the event caused by the last move (if
	// any) and the player's status line
	RenderFrame(m *gameworld.Map, p *state.Player, found entities.Kind)

	// RenderGameOver renders the end-of-game banner
	RenderGameOver(ending Ending)

	// ShowMessage displays a plain message
	ShowMessage(msg string)

	// StyleText colors text with the palette color of role
	StyleText(text string, role Role) string

	// Palette returns the colors in use
	Palette() Palette

	// SetPalette replaces the colors in use
	SetPalette(p Palette)
}
