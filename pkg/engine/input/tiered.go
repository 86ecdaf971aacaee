package input

import (
	"strings"

	"darkgrid/pkg/engine/world"
)

// bindings maps raw key codes to moves. Letter codes are matched
// case-insensitively.
var bindings = map[string]world.Direction{
	"l":           world.Left,
	"u":           world.Up,
	"r":           world.Right,
	"d":           world.Down,
	"arrow_left":  world.Left,
	"arrow_up":    world.Up,
	"arrow_right": world.Right,
	"arrow_down":  world.Down,
}

// MapToDirection applies the bindings to a raw code
func MapToDirection(code string) (world.Direction, bool) {
	dir, ok := bindings[strings.ToLower(strings.TrimSpace(code))]
	return dir, ok
}
