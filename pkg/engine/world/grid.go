// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"fmt"
)

// Grid is a fixed-size rectangular map addressed by row-major cell index.
// It tracks which cells have been revealed; a revealed cell never hides again.
type Grid struct {
	rows     int
	cols     int
	revealed []bool
}

// NewGrid creates a new grid with the given dimensions, all cells hidden
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.revealed = make([]bool, rows*cols)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of cells
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// Index returns the cell index for a row/col position
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Position returns the row and column of a cell index
func (g *Grid) Position(index int) (row, col int) {
	return index / g.cols, index % g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsValidIndex checks if a cell index is within grid bounds
func (g *Grid) IsValidIndex(index int) bool {
	return index >= 0 && index < g.Size()
}

// Neighbor returns the index of the cell adjacent to index in the given
// direction. The second result is false when that would step off the grid;
// rows do not wrap.
func (g *Grid) Neighbor(index int, dir Direction) (int, bool) {
	if !g.IsValidIndex(index) || !dir.IsValid() {
		return 0, false
	}
	row, col := g.Position(index)
	rowRel, colRel := dir.Delta()
	if !g.IsValidPosition(row+rowRel, col+colRel) {
		return 0, false
	}
	return g.Index(row+rowRel, col+colRel), true
}

// OnEdge reports whether the cell at index touches the grid border in dir
func (g *Grid) OnEdge(index int, dir Direction) bool {
	_, ok := g.Neighbor(index, dir)
	return !ok
}

// IsRevealed reports whether the cell has been uncovered
func (g *Grid) IsRevealed(index int) bool {
	if !g.IsValidIndex(index) {
		return false
	}
	return g.revealed[index]
}

// Reveal uncovers the cell at index. Revealing twice is a no-op.
func (g *Grid) Reveal(index int) {
	if !g.IsValidIndex(index) {
		panic(fmt.Sprintf("reveal out of bounds: %d not in [0, %d)", index, g.Size()))
	}
	g.revealed[index] = true
}

// RevealedCount returns how many cells have been uncovered
func (g *Grid) RevealedCount() int {
	n := 0
	for _, r := range g.revealed {
		if r {
			n++
		}
	}
	return n
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(index, row, col int)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(g.Index(row, col), row, col)
		}
	}
}
