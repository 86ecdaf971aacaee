package entities

import (
	"errors"
	"fmt"
)

// CatalogEntry is one row of a catalog: how many of a kind to scatter
type CatalogEntry struct {
	Kind  Kind
	Count int
}

// Catalog is the fixed multiset of entities placed on a grid, in placement
// order. The Player entry must come first with a count of one.
type Catalog []CatalogEntry

// DefaultCatalog is the reference configuration: 19 entities on a 7x6 grid
var DefaultCatalog = Catalog{
	{Kind: Player, Count: 1},
	{Kind: Monster, Count: 5},
	{Kind: Venom, Count: 3},
	{Kind: Treasure, Count: 5},
	{Kind: Sword, Count: 2},
	{Kind: Potion, Count: 3},
}

// ErrNoPlayer is returned when a catalog does not place exactly one player
var ErrNoPlayer = errors.New("catalog must place exactly one player")

// Total returns the number of entities the catalog places
func (c Catalog) Total() int {
	total := 0
	for _, e := range c {
		total += e.Count
	}
	return total
}

// Count returns how many entities of kind k the catalog places
func (c Catalog) Count(k Kind) int {
	n := 0
	for _, e := range c {
		if e.Kind == k {
			n += e.Count
		}
	}
	return n
}

// Validate checks the catalog for a single player and sane counts
func (c Catalog) Validate() error {
	for _, e := range c {
		if e.Count < 0 {
			return fmt.Errorf("negative count %d for %v", e.Count, e.Kind)
		}
		if e.Kind == None || !e.Kind.IsValid() {
			return fmt.Errorf("catalog entry has unplaceable kind %d", e.Kind)
		}
	}
	if c.Count(Player) != 1 {
		return ErrNoPlayer
	}
	return nil
}

// Expand lists the kinds one per entity, player first, then the rest in
// catalog order.
func (c Catalog) Expand() []Kind {
	kinds := make([]Kind, 0, c.Total())
	kinds = append(kinds, Player)
	for _, e := range c {
		if e.Kind == Player {
			continue
		}
		for i := 0; i < e.Count; i++ {
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}
