package world

import (
	"math/rand"
	"testing"

	"darkgrid/pkg/game/entities"
)

func TestNewDefaultMap_Placement(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		m, err := NewDefaultMap(rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: NewDefaultMap: %v", seed, err)
		}

		if m.EntityCount() != 19 {
			t.Fatalf("seed %d: EntityCount() = %d, want 19", seed, m.EntityCount())
		}

		counts := make(map[entities.Kind]int)
		m.ForEachEntity(func(pos int, kind entities.Kind) {
			if pos == m.PlayerPosition() {
				t.Errorf("seed %d: %v shares the player's cell %d", seed, kind, pos)
			}
			counts[kind]++
		})
		for _, e := range entities.DefaultCatalog {
			if e.Kind == entities.Player {
				continue
			}
			if counts[e.Kind] != e.Count {
				t.Errorf("seed %d: placed %d %v, want %d", seed, counts[e.Kind], e.Kind, e.Count)
			}
		}

		if !m.IsRevealed(m.PlayerPosition()) {
			t.Errorf("seed %d: start cell not revealed", seed)
		}
		if got := m.Grid().RevealedCount(); got != 1 {
			t.Errorf("seed %d: RevealedCount() = %d, want 1", seed, got)
		}
	}
}

func TestNewMap_CatalogTooLarge(t *testing.T) {
	catalog := entities.Catalog{{Kind: entities.Player, Count: 1}, {Kind: entities.Treasure, Count: 4}}
	if _, err := NewMap(2, 2, catalog, rand.New(rand.NewSource(1))); err == nil {
		t.Error("NewMap with 5 entities on 4 cells: error = nil, want error")
	}
}

func TestNewMap_FullGrid(t *testing.T) {
	catalog := entities.Catalog{{Kind: entities.Player, Count: 1}, {Kind: entities.Treasure, Count: 3}}
	m, err := NewMap(2, 2, catalog, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	for pos := 0; pos < 4; pos++ {
		if _, ok := m.OccupantAt(pos); !ok {
			t.Errorf("OccupantAt(%d) empty on a full grid", pos)
		}
	}
}

func TestNewMap_RejectsBadCatalog(t *testing.T) {
	if _, err := NewMap(7, 6, entities.Catalog{{Kind: entities.Sword, Count: 1}}, rand.New(rand.NewSource(1))); err == nil {
		t.Error("NewMap without a player: error = nil, want error")
	}
}

func TestEntityAt_SkipsPlayer(t *testing.T) {
	m := NewEmptyMap(7, 6, 10)
	if err := m.Place(11, entities.Monster); err != nil {
		t.Fatalf("Place: %v", err)
	}

	if _, ok := m.EntityAt(10); ok {
		t.Error("EntityAt(player cell) found an entity, want none")
	}
	if kind, ok := m.OccupantAt(10); !ok || kind != entities.Player {
		t.Errorf("OccupantAt(player cell) = (%v, %v), want (Player, true)", kind, ok)
	}
	if kind, ok := m.EntityAt(11); !ok || kind != entities.Monster {
		t.Errorf("EntityAt(11) = (%v, %v), want (Monster, true)", kind, ok)
	}
	if _, ok := m.EntityAt(12); ok {
		t.Error("EntityAt(12) found an entity on an empty cell")
	}
}

func TestPlace_Collisions(t *testing.T) {
	m := NewEmptyMap(7, 6, 10)
	if err := m.Place(10, entities.Sword); err == nil {
		t.Error("Place on the player cell: error = nil")
	}
	if err := m.Place(11, entities.Sword); err != nil {
		t.Fatalf("Place(11): %v", err)
	}
	if err := m.Place(11, entities.Potion); err == nil {
		t.Error("Place on an occupied cell: error = nil")
	}
	if err := m.Place(42, entities.Potion); err == nil {
		t.Error("Place off the map: error = nil")
	}
	if err := m.Place(12, entities.Player); err == nil {
		t.Error("Place(Player): error = nil")
	}
}

func TestSetPlayerPosition_DoesNotReveal(t *testing.T) {
	m := NewEmptyMap(7, 6, 0)
	m.SetPlayerPosition(1)
	if m.IsRevealed(1) {
		t.Error("SetPlayerPosition revealed the cell")
	}
	if m.PlayerPosition() != 1 {
		t.Errorf("PlayerPosition() = %d, want 1", m.PlayerPosition())
	}
}

func TestExampleMap(t *testing.T) {
	m := NewExampleMap()
	if m.PlayerPosition() != 32 {
		t.Errorf("PlayerPosition() = %d, want 32", m.PlayerPosition())
	}
	for _, pos := range []int{32, 25, 24, 23, 16} {
		if !m.IsRevealed(pos) {
			t.Errorf("IsRevealed(%d) = false, want true", pos)
		}
	}
	if got := m.Grid().RevealedCount(); got != 5 {
		t.Errorf("RevealedCount() = %d, want 5", got)
	}
}

func TestCells_HideUnrevealedContents(t *testing.T) {
	m := NewEmptyMap(7, 6, 0)
	if err := m.Place(1, entities.Treasure); err != nil {
		t.Fatalf("Place: %v", err)
	}

	if view := m.Cell(1); view.HasEntity || view.Revealed {
		t.Errorf("hidden Cell(1) = %+v, want no entity exposed", view)
	}

	m.Reveal(1)
	view := m.Cell(1)
	if !view.Revealed || !view.HasEntity || view.Kind != entities.Treasure || view.IsPlayer {
		t.Errorf("revealed Cell(1) = %+v, want Treasure", view)
	}

	cells := m.Cells()
	if len(cells) != 42 {
		t.Fatalf("len(Cells()) = %d, want 42", len(cells))
	}
	if !cells[0].IsPlayer {
		t.Errorf("Cells()[0] = %+v, want player", cells[0])
	}
	if cells[8].Row != 1 || cells[8].Col != 1 {
		t.Errorf("Cells()[8] at (%d, %d), want (1, 1)", cells[8].Row, cells[8].Col)
	}
}
