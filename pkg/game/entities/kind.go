package entities

// Kind identifies what occupies a cell. The zero value None means the cell
// holds nothing.
type Kind int

const (
	None     Kind = iota
	Player        // The explorer; exactly one per grid
	Monster       // Hazard - costs a Sword or the player's life
	Venom         // Hazard - costs a Potion or the player's life
	Treasure      // Worth one point
	Sword         // Defeats one Monster
	Potion        // Cures one Venom
)

// KindInfo contains display information for each entity kind
type KindInfo struct {
	Name   string
	Glyph  string
	Hazard bool
}

// KindTypes maps entity kinds to their display information
var KindTypes = map[Kind]KindInfo{
	None:     {Name: "Nothing", Glyph: " "},
	Player:   {Name: "Player", Glyph: "U"},
	Monster:  {Name: "Monster", Glyph: "M", Hazard: true},
	Venom:    {Name: "Venom", Glyph: "V", Hazard: true},
	Treasure: {Name: "Treasure", Glyph: "T"},
	Sword:    {Name: "Sword", Glyph: "S"},
	Potion:   {Name: "Potion", Glyph: "P"},
}

// AllKinds returns every placeable kind in catalog order
func AllKinds() []Kind {
	return []Kind{Player, Monster, Venom, Treasure, Sword, Potion}
}

// String returns the display name of the kind
func (k Kind) String() string {
	if info, ok := KindTypes[k]; ok {
		return info.Name
	}
	return "Unknown"
}

// Glyph returns the one-letter map symbol for the kind
func (k Kind) Glyph() string {
	if info, ok := KindTypes[k]; ok {
		return info.Glyph
	}
	return "?"
}

// IsHazard returns true for kinds that can kill the player
func (k Kind) IsHazard() bool {
	return KindTypes[k].Hazard
}

// IsValid returns true for None and the six placeable kinds
func (k Kind) IsValid() bool {
	return k >= None && k <= Potion
}
