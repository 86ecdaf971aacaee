package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"
)

// RGB is a 24-bit terminal color
type RGB [3]uint8

// String returns the color as "r g b"
func (c RGB) String() string {
	return fmt.Sprintf("%d %d %d", c[0], c[1], c[2])
}

// Style returns the gookit foreground color for c
func (c RGB) Style() color.RGBColor {
	return color.RGB(c[0], c[1], c[2])
}

// ParseRGB reads three space-separated decimal values in [0, 255]
func ParseRGB(s string) (RGB, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return RGB{}, fmt.Errorf("want 3 values, got %d", len(fields))
	}
	var c RGB
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return RGB{}, fmt.Errorf("value %q is not a number", f)
		}
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("value %d out of range [0, 255]", v)
		}
		c[i] = uint8(v)
	}
	return c, nil
}

// Role is a visual role the player can recolor
type Role int

const (
	RoleDefault Role = iota
	RoleEntities
	RolePlayerState
	RoleRevealedTiles
	RoleEvent
)

// AllRoles returns the roles in settings-menu order
func AllRoles() []Role {
	return []Role{RoleDefault, RoleEntities, RolePlayerState, RoleRevealedTiles, RoleEvent}
}

// LocaleKey returns the string key naming the role
func (r Role) LocaleKey() string {
	switch r {
	case RoleDefault:
		return "ROLE_DEFAULT"
	case RoleEntities:
		return "ROLE_ENTITIES"
	case RolePlayerState:
		return "ROLE_PLAYER_STATE"
	case RoleRevealedTiles:
		return "ROLE_REVEALED_TILES"
	case RoleEvent:
		return "ROLE_EVENT"
	default:
		return ""
	}
}

// Palette is the immutable color configuration of the presentation layer.
// Changing a color yields a new Palette.
type Palette struct {
	Default       RGB
	Entities      RGB
	PlayerState   RGB
	RevealedTiles RGB
	Event         RGB
}

// DefaultPalette returns the colors the game starts with
func DefaultPalette() Palette {
	return Palette{
		Default:       RGB{191, 213, 201},
		Entities:      RGB{0, 99, 115},
		PlayerState:   RGB{5, 163, 164},
		RevealedTiles: RGB{179, 90, 32},
		Event:         RGB{232, 137, 29},
	}
}

// Get returns the color assigned to role
func (p Palette) Get(role Role) RGB {
	switch role {
	case RoleEntities:
		return p.Entities
	case RolePlayerState:
		return p.PlayerState
	case RoleRevealedTiles:
		return p.RevealedTiles
	case RoleEvent:
		return p.Event
	default:
		return p.Default
	}
}

// WithRole returns a copy of p with role set to c
func (p Palette) WithRole(role Role, c RGB) Palette {
	switch role {
	case RoleDefault:
		p.Default = c
	case RoleEntities:
		p.Entities = c
	case RolePlayerState:
		p.PlayerState = c
	case RoleRevealedTiles:
		p.RevealedTiles = c
	case RoleEvent:
		p.Event = c
	}
	return p
}
