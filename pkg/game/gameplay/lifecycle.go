package gameplay

import (
	"math/rand"
	"time"

	"darkgrid/pkg/game/state"
	gameworld "darkgrid/pkg/game/world"
)

// NewRand returns a random source for map generation. A zero seed picks a
// time-based one so every game differs.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// BuildGame creates a fresh reference map and player and starts a session
func BuildGame(rng *rand.Rand, playerName string) (*Session, error) {
	m, err := gameworld.NewDefaultMap(rng)
	if err != nil {
		return nil, err
	}
	return NewSession(m, state.NewPlayer(playerName)), nil
}
