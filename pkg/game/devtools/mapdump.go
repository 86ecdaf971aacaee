// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"darkgrid/pkg/game/entities"
	"darkgrid/pkg/game/state"
	gameworld "darkgrid/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell. If
// revealedOnly is true, hidden cells return '#'.
func cellSymbol(m *gameworld.Map, pos int, revealedOnly bool) string {
	if revealedOnly && !m.IsRevealed(pos) {
		return "#"
	}
	kind, ok := m.OccupantAt(pos)
	if !ok {
		if m.IsRevealed(pos) {
			return "."
		}
		return " "
	}
	return kind.Glyph()
}

// writeMapGrid writes the grid to w, one row per line.
func writeMapGrid(w io.Writer, m *gameworld.Map, revealedOnly bool) {
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			fmt.Fprint(w, cellSymbol(m, row*m.Width()+col, revealedOnly))
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes the full layout of m, hidden cells included, along
// with the player's resources.
func WriteMapDump(w io.Writer, m *gameworld.Map, p *state.Player) {
	pos := m.PlayerPosition()

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, entities) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_rows: %d\n", m.Height())
	fmt.Fprintf(w, "grid_cols: %d\n", m.Width())
	fmt.Fprintf(w, "player_position: %d\n", pos)
	fmt.Fprintf(w, "player_cell: %d,%d\n", pos/m.Width(), pos%m.Width())
	fmt.Fprintf(w, "revealed_cells: %d\n", m.Grid().RevealedCount())
	fmt.Fprintf(w, "entities: %d\n", m.EntityCount())
	if p != nil {
		fmt.Fprintf(w, "player: %s score=%d swords=%d potions=%d alive=%v\n", p.Name, p.Score, p.Swords, p.Potions, p.Alive)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprint(w, ". = revealed empty  # = hidden")
	for _, kind := range entities.AllKinds() {
		if kind == entities.None {
			continue
		}
		fmt.Fprintf(w, "  %s = %s", kind.Glyph(), kind)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (revealed cells only; hidden = #) ---")
	writeMapGrid(w, m, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	writeMapGrid(w, m, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Entities ---")
	m.ForEachEntity(func(pos int, kind entities.Kind) {
		fmt.Fprintf(w, "%d,%d %s\n", pos/m.Width(), pos%m.Width(), kind)
	})
}

// DumpMapToFile writes the dump of m to map.txt in dir and returns the
// file's absolute path.
func DumpMapToFile(dir string, m *gameworld.Map, p *state.Player) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteMapDump(f, m, p)
	return absPath, nil
}
