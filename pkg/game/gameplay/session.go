package gameplay

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"darkgrid/pkg/engine/world"
	"darkgrid/pkg/game/entities"
	"darkgrid/pkg/game/state"
	gameworld "darkgrid/pkg/game/world"
)

// Phase is where a session is in its lifecycle
type Phase int

const (
	AwaitingMove Phase = iota
	OverStuck          // No legal move left
	OverDied           // Killed by a hazard
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case AwaitingMove:
		return "awaiting_move"
	case OverStuck:
		return "stuck"
	case OverDied:
		return "died"
	default:
		return "unknown"
	}
}

// IsOver returns true for the terminal phases
func (p Phase) IsOver() bool {
	return p == OverStuck || p == OverDied
}

var (
	// ErrSessionOver is returned when a move is made after the game ended
	ErrSessionOver = errors.New("session is over")
	// ErrIllegalMove is returned for a direction outside the legal set
	ErrIllegalMove = errors.New("illegal move")
)

// Driver supplies moves to a running session and is told about every
// state the player should see.
type Driver interface {
	// ChooseMove returns one of s.Legal(). It is only called while the
	// session awaits a move.
	ChooseMove(s *Session) (world.Direction, error)
	// Show is called once before the first move with entities.None and
	// after every move with what the player found.
	Show(s *Session, found entities.Kind)
}

// Recorder receives the finished session's move history and final score
type Recorder interface {
	Record(moves []world.Direction, score int) error
}

// Session drives one game from the first move to death or a dead end.
type Session struct {
	m      *gameworld.Map
	player *state.Player
	moves  []world.Direction
	phase  Phase
}

// NewSession starts a session on m for player. A player boxed in from the
// start is already stuck.
func NewSession(m *gameworld.Map, player *state.Player) *Session {
	s := &Session{
		m:      m,
		player: player,
		moves:  make([]world.Direction, 0),
	}
	s.phase = s.nextPhase()
	return s
}

// Map returns the session's map
func (s *Session) Map() *gameworld.Map {
	return s.m
}

// Player returns the session's player record
func (s *Session) Player() *state.Player {
	return s.player
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	return s.phase
}

// Over returns true once the session reached a terminal phase
func (s *Session) Over() bool {
	return s.phase.IsOver()
}

// Score returns the player's current score
func (s *Session) Score() int {
	return s.player.Score
}

// Moves returns a copy of the move history
func (s *Session) Moves() []world.Direction {
	moves := make([]world.Direction, len(s.moves))
	copy(moves, s.moves)
	return moves
}

// Legal returns the directions the player may take now
func (s *Session) Legal() []world.Direction {
	if s.Over() {
		return nil
	}
	return LegalDirections(s.m)
}

// Move records dir, resolves it and advances the phase
func (s *Session) Move(dir world.Direction) (entities.Kind, error) {
	if s.Over() {
		return entities.None, ErrSessionOver
	}
	if !CanMove(s.m, dir) {
		return entities.None, fmt.Errorf("%w: %v from %d", ErrIllegalMove, dir, s.m.PlayerPosition())
	}

	s.moves = append(s.moves, dir)
	found := ApplyMove(s.m, s.player, dir)
	s.phase = s.nextPhase()

	log.Debug().
		Str("move", dir.Code()).
		Str("found", found.String()).
		Int("score", s.player.Score).
		Str("phase", s.phase.String()).
		Msg("turn resolved")

	return found, nil
}

func (s *Session) nextPhase() Phase {
	if !s.player.Alive {
		return OverDied
	}
	if LegalMoves(s.m).Size() == 0 {
		return OverStuck
	}
	return AwaitingMove
}

// Run plays the session to the end and hands the result to rec. Stuck and
// died endings are recorded the same way.
func (s *Session) Run(d Driver, rec Recorder) (Phase, error) {
	log.Info().Str("player", s.player.Name).Int("start", s.m.PlayerPosition()).Msg("session started")

	d.Show(s, entities.None)

	for !s.Over() {
		dir, err := d.ChooseMove(s)
		if err != nil {
			return s.phase, fmt.Errorf("choosing move: %w", err)
		}

		found, err := s.Move(dir)
		if err != nil {
			return s.phase, err
		}

		d.Show(s, found)
	}

	log.Info().
		Str("player", s.player.Name).
		Str("phase", s.phase.String()).
		Int("score", s.player.Score).
		Int("moves", len(s.moves)).
		Msg("session over")

	if rec == nil {
		return s.phase, nil
	}
	if err := rec.Record(s.Moves(), s.player.Score); err != nil {
		return s.phase, fmt.Errorf("recording session: %w", err)
	}
	return s.phase, nil
}
