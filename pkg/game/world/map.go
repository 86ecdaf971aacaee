// Package world provides the game-specific map: entity placement and the
// player's position layered over the generic engine/world grid.
package world

import (
	"fmt"
	"math/rand"

	"darkgrid/pkg/engine/world"
	"darkgrid/pkg/game/entities"
)

// Reference map dimensions
const (
	DefaultWidth  = 7
	DefaultHeight = 6
)

// Map owns all spatial and entity truth for one game session.
type Map struct {
	grid *world.Grid

	player   int
	entities map[int]entities.Kind
}

// CellView is what a renderer may know about a cell. Hidden cells never
// expose their contents.
type CellView struct {
	world.Cell

	Kind      entities.Kind
	HasEntity bool
	IsPlayer  bool
}

// NewMap scatters the catalog over a width x height grid. Positions are
// drawn without replacement, the first going to the player, whose cell
// starts revealed.
func NewMap(width, height int, catalog entities.Catalog, rng *rand.Rand) (*Map, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	grid := world.NewGrid(height, width)
	kinds := catalog.Expand()

	positions, err := world.SampleCells(rng, grid.Size(), len(kinds))
	if err != nil {
		return nil, fmt.Errorf("placing %d entities: %w", len(kinds), err)
	}

	m := &Map{
		grid:     grid,
		player:   positions[0],
		entities: make(map[int]entities.Kind, len(kinds)-1),
	}
	for i := 1; i < len(kinds); i++ {
		m.entities[positions[i]] = kinds[i]
	}

	m.grid.Reveal(m.player)
	return m, nil
}

// NewDefaultMap builds the reference 7x6 map with the default catalog
func NewDefaultMap(rng *rand.Rand) (*Map, error) {
	return NewMap(DefaultWidth, DefaultHeight, entities.DefaultCatalog, rng)
}

// NewExampleMap builds the fixed preview layout shown on the settings
// screen: the player at 32 with a trail through 25, 24, 23 and 16.
func NewExampleMap() *Map {
	m := NewEmptyMap(DefaultWidth, DefaultHeight, 32)
	for _, pos := range []int{25, 24, 23, 16} {
		m.Reveal(pos)
	}
	return m
}

// NewEmptyMap builds a map with only the player placed at start
func NewEmptyMap(width, height, start int) *Map {
	m := &Map{
		grid:     world.NewGrid(height, width),
		player:   start,
		entities: make(map[int]entities.Kind),
	}
	m.grid.Reveal(start)
	return m
}

// Place puts a non-player entity on a free cell. It is used to build fixed
// layouts; random maps are placed by NewMap.
func (m *Map) Place(pos int, kind entities.Kind) error {
	if !m.grid.IsValidIndex(pos) {
		return fmt.Errorf("position %d outside the %dx%d map", pos, m.Width(), m.Height())
	}
	if kind == entities.None || kind == entities.Player || !kind.IsValid() {
		return fmt.Errorf("cannot place %v", kind)
	}
	if pos == m.player {
		return fmt.Errorf("position %d holds the player", pos)
	}
	if existing, ok := m.entities[pos]; ok {
		return fmt.Errorf("position %d already holds %v", pos, existing)
	}
	m.entities[pos] = kind
	return nil
}

// Width returns the number of columns
func (m *Map) Width() int {
	return m.grid.Cols()
}

// Height returns the number of rows
func (m *Map) Height() int {
	return m.grid.Rows()
}

// Size returns the total number of cells
func (m *Map) Size() int {
	return m.grid.Size()
}

// Grid exposes the underlying spatial grid
func (m *Map) Grid() *world.Grid {
	return m.grid
}

// EntityAt returns the non-player entity recorded at pos
func (m *Map) EntityAt(pos int) (entities.Kind, bool) {
	kind, ok := m.entities[pos]
	return kind, ok
}

// OccupantAt returns whatever is at pos, the player included
func (m *Map) OccupantAt(pos int) (entities.Kind, bool) {
	if pos == m.player {
		return entities.Player, true
	}
	return m.EntityAt(pos)
}

// IsRevealed reports whether the cell at pos has been uncovered
func (m *Map) IsRevealed(pos int) bool {
	return m.grid.IsRevealed(pos)
}

// Reveal uncovers the cell at pos
func (m *Map) Reveal(pos int) {
	m.grid.Reveal(pos)
}

// PlayerPosition returns the cell the player stands on
func (m *Map) PlayerPosition() int {
	return m.player
}

// SetPlayerPosition moves the player marker without revealing the cell
func (m *Map) SetPlayerPosition(pos int) {
	if !m.grid.IsValidIndex(pos) {
		panic(fmt.Sprintf("player position %d outside the map", pos))
	}
	m.player = pos
}

// Neighbor returns the cell adjacent to pos in dir, if it is on the map
func (m *Map) Neighbor(pos int, dir world.Direction) (int, bool) {
	return m.grid.Neighbor(pos, dir)
}

// EntityCount returns the number of entities on the map, the player included
func (m *Map) EntityCount() int {
	return len(m.entities) + 1
}

// Cell returns the presentation view of the cell at pos
func (m *Map) Cell(pos int) CellView {
	view := CellView{Cell: m.grid.Cell(pos)}
	if !view.Revealed {
		return view
	}
	if kind, ok := m.OccupantAt(pos); ok {
		view.Kind = kind
		view.HasEntity = true
		view.IsPlayer = kind == entities.Player
	}
	return view
}

// Cells returns the presentation view of every cell in row-major order
func (m *Map) Cells() []CellView {
	cells := make([]CellView, 0, m.Size())
	m.grid.ForEachCell(func(index, row, col int) {
		cells = append(cells, m.Cell(index))
	})
	return cells
}

// ForEachEntity calls fn for every non-player entity
func (m *Map) ForEachEntity(fn func(pos int, kind entities.Kind)) {
	m.grid.ForEachCell(func(index, row, col int) {
		if kind, ok := m.entities[index]; ok {
			fn(index, kind)
		}
	})
}
