// Package gameplay provides core game logic for player movement and turn resolution.
package gameplay

import (
	"testing"

	"darkgrid/pkg/engine/world"
	"darkgrid/pkg/game/entities"
	"darkgrid/pkg/game/state"
	gameworld "darkgrid/pkg/game/world"
)

// makeMapWithEntity creates a 7x6 map with the player at 32 and kind placed
// at the cell to the right (33).
func makeMapWithEntity(t *testing.T, kind entities.Kind) *gameworld.Map {
	t.Helper()
	m := gameworld.NewEmptyMap(7, 6, 32)
	if kind != entities.None {
		if err := m.Place(33, kind); err != nil {
			t.Fatalf("Place(33, %v): %v", kind, err)
		}
	}
	return m
}

func TestLegalMoves_ExampleLayout(t *testing.T) {
	m := gameworld.NewExampleMap()
	legal := LegalMoves(m)

	if legal.Has(world.Up) {
		t.Error("LegalMoves includes Up, but 25 is revealed")
	}
	for _, dir := range []world.Direction{world.Left, world.Right, world.Down} {
		if !legal.Has(dir) {
			t.Errorf("LegalMoves missing %v", dir)
		}
	}

	got := LegalDirections(m)
	want := []world.Direction{world.Left, world.Right, world.Down}
	if len(got) != len(want) {
		t.Fatalf("LegalDirections() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LegalDirections() = %v, want %v", got, want)
			break
		}
	}
}

func TestLegalMoves_Edges(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  []world.Direction
	}{
		{"top-left corner", 0, []world.Direction{world.Right, world.Down}},
		{"top-right corner", 6, []world.Direction{world.Left, world.Down}},
		{"bottom-left corner", 35, []world.Direction{world.Up, world.Right}},
		{"bottom-right corner", 41, []world.Direction{world.Left, world.Up}},
		{"left edge", 14, []world.Direction{world.Up, world.Right, world.Down}},
		{"center", 17, []world.Direction{world.Left, world.Up, world.Right, world.Down}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := gameworld.NewEmptyMap(7, 6, tt.start)
			got := LegalDirections(m)
			if len(got) != len(tt.want) {
				t.Fatalf("LegalDirections() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("LegalDirections() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestLegalMoves_RevealedNeighborsBlock(t *testing.T) {
	m := gameworld.NewEmptyMap(7, 6, 17)
	for _, pos := range []int{16, 10, 18, 24} {
		m.Reveal(pos)
	}
	if n := LegalMoves(m).Size(); n != 0 {
		t.Errorf("LegalMoves().Size() = %d, want 0 when every neighbor is revealed", n)
	}
}

func TestCanMove_AgreesWithLegalMoves(t *testing.T) {
	// Row ends must not wrap: 6 -> 7 and 7 -> 6 are not moves.
	for _, start := range []int{0, 6, 7, 13, 17, 35, 41} {
		m := gameworld.NewEmptyMap(7, 6, start)
		m.Reveal(24)
		legal := LegalMoves(m)
		for _, dir := range world.AllDirections() {
			if CanMove(m, dir) != legal.Has(dir) {
				t.Errorf("start %d: CanMove(%v) = %v, LegalMoves has %v", start, dir, CanMove(m, dir), legal.Has(dir))
			}
		}
		if CanMove(m, world.Direction(99)) {
			t.Errorf("start %d: CanMove accepted an invalid direction", start)
		}
	}
}

func TestApplyMove_Effects(t *testing.T) {
	tests := []struct {
		name        string
		kind        entities.Kind
		swords      int
		potions     int
		wantAlive   bool
		wantScore   int
		wantSwords  int
		wantPotions int
	}{
		{"empty cell", entities.None, 0, 0, true, 1, 0, 0},
		{"treasure", entities.Treasure, 0, 0, true, 2, 0, 0},
		{"sword", entities.Sword, 0, 0, true, 1, 1, 0},
		{"potion", entities.Potion, 0, 0, true, 1, 0, 1},
		{"monster without sword", entities.Monster, 0, 0, false, 0, 0, 0},
		{"monster with sword", entities.Monster, 2, 0, true, 1, 1, 0},
		{"venom without potion", entities.Venom, 0, 0, false, 0, 0, 0},
		{"venom with potions", entities.Venom, 0, 2, true, 1, 0, 1},
		{"venom ignores swords", entities.Venom, 3, 0, false, 0, 3, 0},
		{"monster ignores potions", entities.Monster, 0, 3, false, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := makeMapWithEntity(t, tt.kind)
			p := state.NewPlayer("")
			p.Swords = tt.swords
			p.Potions = tt.potions

			found := ApplyMove(m, p, world.Right)

			if found != tt.kind {
				t.Errorf("ApplyMove returned %v, want %v", found, tt.kind)
			}
			if p.Alive != tt.wantAlive {
				t.Errorf("Alive = %v, want %v", p.Alive, tt.wantAlive)
			}
			if p.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", p.Score, tt.wantScore)
			}
			if p.Swords != tt.wantSwords {
				t.Errorf("Swords = %d, want %d", p.Swords, tt.wantSwords)
			}
			if p.Potions != tt.wantPotions {
				t.Errorf("Potions = %d, want %d", p.Potions, tt.wantPotions)
			}
			if m.PlayerPosition() != 33 {
				t.Errorf("PlayerPosition() = %d, want 33", m.PlayerPosition())
			}
			if !m.IsRevealed(33) {
				t.Error("target cell not revealed")
			}
		})
	}
}

func TestApplyMove_Offsets(t *testing.T) {
	want := map[world.Direction]int{world.Left: 31, world.Up: 25, world.Right: 33, world.Down: 39}
	for dir, pos := range want {
		m := gameworld.NewEmptyMap(7, 6, 32)
		ApplyMove(m, state.NewPlayer(""), dir)
		if m.PlayerPosition() != pos {
			t.Errorf("ApplyMove(%v) from 32 moved to %d, want %d", dir, m.PlayerPosition(), pos)
		}
	}
}

func TestApplyMove_IllegalPanics(t *testing.T) {
	tests := []struct {
		name string
		dir  world.Direction
	}{
		{"off the grid", world.Up},
		{"onto revealed cell", world.Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := gameworld.NewEmptyMap(7, 6, 3)
			m.Reveal(4)
			defer func() {
				if recover() == nil {
					t.Errorf("ApplyMove(%v) did not panic", tt.dir)
				}
				if m.PlayerPosition() != 3 {
					t.Errorf("illegal move changed position to %d", m.PlayerPosition())
				}
			}()
			ApplyMove(m, state.NewPlayer(""), tt.dir)
		})
	}
}
