// Package gameplay provides core game logic for player movement and turn resolution.
package gameplay

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"darkgrid/pkg/engine/world"
	"darkgrid/pkg/game/entities"
	"darkgrid/pkg/game/state"
	gameworld "darkgrid/pkg/game/world"
)

// CanMove checks if the player may step in dir: the target must be on the
// map and must not have been revealed yet.
func CanMove(m *gameworld.Map, dir world.Direction) bool {
	pos := m.PlayerPosition()
	if !dir.IsValid() || m.Grid().OnEdge(pos, dir) {
		return false
	}
	return !m.IsRevealed(pos + dir.Offset(m.Width()))
}

// LegalMoves returns the set of directions the player may take this turn.
// An empty set means the player is stuck.
func LegalMoves(m *gameworld.Map) mapset.Set[world.Direction] {
	legal := mapset.New[world.Direction]()
	for dir, adj := range m.Grid().Neighbors(m.PlayerPosition()) {
		if !m.IsRevealed(adj) {
			legal.Put(dir)
		}
	}
	return legal
}

// LegalDirections returns the legal moves in Left, Up, Right, Down order
func LegalDirections(m *gameworld.Map) []world.Direction {
	legal := LegalMoves(m)
	dirs := make([]world.Direction, 0, legal.Size())
	for _, dir := range world.AllDirections() {
		if legal.Has(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// ApplyMove moves the player one cell in dir, reveals it and resolves what
// was found there. It returns the kind found, or entities.None.
// dir must be legal; anything else is a caller bug and panics.
func ApplyMove(m *gameworld.Map, p *state.Player, dir world.Direction) entities.Kind {
	if !CanMove(m, dir) {
		panic(fmt.Sprintf("illegal move %v from %d", dir, m.PlayerPosition()))
	}

	target, _ := m.Neighbor(m.PlayerPosition(), dir)
	m.SetPlayerPosition(target)
	m.Reveal(target)

	kind, found := m.EntityAt(target)
	if !found {
		kind = entities.None
	}

	ResolveEffect(p, kind)

	if p.Alive {
		p.Score++
	}

	return kind
}

// ResolveEffect applies what the player found to their resources. The
// per-turn survival bonus is not part of the effect.
func ResolveEffect(p *state.Player, kind entities.Kind) {
	switch kind {
	case entities.None:
	case entities.Treasure:
		p.Score++
	case entities.Sword:
		p.Swords++
	case entities.Potion:
		p.Potions++
	case entities.Monster:
		if !p.UseSword() {
			p.Kill()
		}
	case entities.Venom:
		if !p.UsePotion() {
			p.Kill()
		}
	case entities.Player:
		panic("player found on a cell the player moved onto")
	default:
		panic(fmt.Sprintf("unknown entity kind %d", kind))
	}
}
