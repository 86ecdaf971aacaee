package gamelog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

// JSONStore keeps the game log in a single indented JSON document. Every
// Put re-reads the file, so concurrent writers lose updates (last writer
// wins).
type JSONStore struct {
	filePath string
}

// NewJSONStore opens the log at filePath, creating an empty one if the file
// does not exist yet.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{filePath: filePath}

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	switch {
	case err == nil:
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to create game log %s: %w", filePath, err)
		}
	case errors.Is(err, fs.ErrExist):
	default:
		return nil, fmt.Errorf("failed to create game log %s: %w", filePath, err)
	}

	return store, nil
}

// Path returns the file backing the store
func (js *JSONStore) Path() string {
	return js.filePath
}

// Load reads the whole log. A missing, empty or unparsable file loads as
// an empty log.
func (js *JSONStore) Load() (Log, error) {
	data, err := os.ReadFile(js.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return Log{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game log %s: %w", js.filePath, err)
	}

	entries := Log{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Str("path", js.filePath).Msg("game log unreadable, starting from empty")
		return Log{}, nil
	}
	if entries == nil {
		entries = Log{}
	}
	return entries, nil
}

// Put adds rec under key and rewrites the file
func (js *JSONStore) Put(key string, rec Record) error {
	entries, err := js.Load()
	if err != nil {
		return err
	}

	if rec.Moves == nil {
		rec.Moves = []string{}
	}
	entries[key] = rec

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode game log: %w", err)
	}

	if err := os.WriteFile(js.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write game log %s: %w", js.filePath, err)
	}
	return nil
}

// Close is a no-op for the JSON store
func (js *JSONStore) Close() error {
	return nil
}
