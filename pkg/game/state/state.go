package state

// DefaultPlayerName is used when the player does not give a name
const DefaultPlayerName = "Anonymous"

// Player holds the resources of the player in the current game
type Player struct {
	Name string

	Alive   bool
	Score   int
	Swords  int
	Potions int
}

// NewPlayer creates a living player with an empty inventory
func NewPlayer(name string) *Player {
	if name == "" {
		name = DefaultPlayerName
	}
	return &Player{
		Name:  name,
		Alive: true,
	}
}

// UseSword spends one sword, returning false if the player has none
func (p *Player) UseSword() bool {
	if p.Swords == 0 {
		return false
	}
	p.Swords--
	return true
}

// UsePotion spends one potion, returning false if the player has none
func (p *Player) UsePotion() bool {
	if p.Potions == 0 {
		return false
	}
	p.Potions--
	return true
}

// Kill marks the player as dead
func (p *Player) Kill() {
	p.Alive = false
}
