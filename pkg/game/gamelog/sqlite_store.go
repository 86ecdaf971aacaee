package gamelog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// SQLiteStore keeps the game log in a sqlite table, one row per game
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and creates if missing) the database at dsn
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS games (
		played_at TEXT PRIMARY KEY,
		moves     TEXT NOT NULL,
		score     INTEGER NOT NULL
	);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create games table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads every game. Rows whose moves column does not decode load
// with no moves.
func (s *SQLiteStore) Load() (Log, error) {
	rows, err := s.db.Query(`SELECT played_at, moves, score FROM games`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	entries := Log{}
	for rows.Next() {
		var key, moves string
		var score int
		if err := rows.Scan(&key, &moves, &score); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}

		rec := Record{Moves: []string{}, Score: score}
		if err := json.Unmarshal([]byte(moves), &rec.Moves); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("unreadable moves in game log row")
			rec.Moves = []string{}
		}
		entries[key] = rec
	}
	return entries, rows.Err()
}

// Put inserts or replaces the game under key
func (s *SQLiteStore) Put(key string, rec Record) error {
	if rec.Moves == nil {
		rec.Moves = []string{}
	}
	moves, err := json.Marshal(rec.Moves)
	if err != nil {
		return fmt.Errorf("encode moves: %w", err)
	}
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO games (played_at, moves, score) VALUES (?, ?, ?)`,
		key, string(moves), rec.Score); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
