package world

// Cell is a read-only snapshot of a single grid cell.
type Cell struct {
	Index int
	Row   int
	Col   int

	Revealed bool
}

// Cell returns a snapshot of the cell at index
func (g *Grid) Cell(index int) Cell {
	row, col := g.Position(index)
	return Cell{
		Index:    index,
		Row:      row,
		Col:      col,
		Revealed: g.IsRevealed(index),
	}
}

// Neighbors returns the in-bounds cells adjacent to index, keyed by direction
func (g *Grid) Neighbors(index int) map[Direction]int {
	neighbors := make(map[Direction]int, 4)
	for _, dir := range AllDirections() {
		if adj, ok := g.Neighbor(index, dir); ok {
			neighbors[dir] = adj
		}
	}
	return neighbors
}
