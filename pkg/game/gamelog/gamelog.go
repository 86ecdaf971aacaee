// Package gamelog persists finished games: the moves played and the final
// score, keyed by the time the game ended.
package gamelog

import (
	"fmt"
	"sort"
	"time"

	"darkgrid/pkg/engine/world"
)

// KeyLayout formats log keys as DD/MM/YYYY HH:MM:SS
const KeyLayout = "02/01/2006 15:04:05"

// Record is one finished game
type Record struct {
	Moves []string `json:"moves"`
	Score int      `json:"score"`
}

// Log maps timestamp keys to finished games
type Log map[string]Record

// Store is an append-only keyed collection of finished games. Writing a
// key that already exists replaces the earlier record.
type Store interface {
	Load() (Log, error)
	Put(key string, rec Record) error
	Close() error
}

// Key formats t as a log key
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// NewRecord converts a move history into a loggable record
func NewRecord(moves []world.Direction, score int) Record {
	codes := make([]string, len(moves))
	for i, m := range moves {
		codes[i] = m.Code()
	}
	return Record{Moves: codes, Score: score}
}

// Keys returns the log's keys in chronological order. Keys that do not
// parse sort last, alphabetically.
func (l Log) Keys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ti, erri := time.Parse(KeyLayout, keys[i])
		tj, errj := time.Parse(KeyLayout, keys[j])
		switch {
		case erri == nil && errj == nil:
			if ti.Equal(tj) {
				return keys[i] < keys[j]
			}
			return ti.Before(tj)
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// Recorder stamps finished sessions with the current time and writes them
// to a Store.
type Recorder struct {
	store Store
	now   func() time.Time
}

// NewRecorder creates a recorder writing to store
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// WithClock replaces the recorder's time source
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	r.now = now
	return r
}

// Record writes one finished game
func (r *Recorder) Record(moves []world.Direction, score int) error {
	key := Key(r.now())
	if err := r.store.Put(key, NewRecord(moves, score)); err != nil {
		return fmt.Errorf("writing game log entry %q: %w", key, err)
	}
	return nil
}

// Driver names accepted by Open
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Open creates the store for driver at path
func Open(driver, path string) (Store, error) {
	switch driver {
	case "", DriverJSON:
		return NewJSONStore(path)
	case DriverSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown game log driver %q", driver)
	}
}
