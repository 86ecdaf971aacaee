package world

import "strings"

// Direction represents one of the four moves a player can make
type Direction int

// Direction constants, in the order the game presents them
const (
	Left Direction = iota
	Up
	Right
	Down
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Left, Up, Right, Down}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// Code returns the one-letter code used for input and in the game log
func (d Direction) Code() string {
	switch d {
	case Left:
		return "l"
	case Up:
		return "u"
	case Right:
		return "r"
	case Down:
		return "d"
	default:
		return ""
	}
}

// ParseDirection converts a one-letter code (any case) to a Direction
func ParseDirection(code string) (Direction, bool) {
	switch strings.ToLower(code) {
	case "l":
		return Left, true
	case "u":
		return Up, true
	case "r":
		return Right, true
	case "d":
		return Down, true
	default:
		return 0, false
	}
}

// IsValid returns true if the direction is one of the four moves
func (d Direction) IsValid() bool {
	return d >= Left && d <= Down
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Left:
		return 0, -1
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	default:
		return 0, 0
	}
}

// Offset returns the change in cell index for this direction on a grid
// with the given width: -1, -width, +1, +width.
func (d Direction) Offset(width int) int {
	rowDelta, colDelta := d.Delta()
	return rowDelta*width + colDelta
}
