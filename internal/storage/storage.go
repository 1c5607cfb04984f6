package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parkwatch/parkwatch/internal/parking"
)

// Store persists the single latest parking.State as a JSON file. The
// file is overwritten each cycle; no history is kept.
type Store struct {
	path string
}

// New creates a Store, expanding a leading ~ and creating the parent
// directory if needed.
func New(path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating state directory: %w", err)
		}
	}

	return &Store{path: path}, nil
}

// Load reads the previous observation. A missing file is a valid empty
// read and returns (nil, nil); a file that exists but cannot be read or
// decoded returns an error for the caller to degrade on.
func (s *Store) Load() (*parking.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading state: %w", err)
	}

	var st parking.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decoding state: %w", err)
	}
	return &st, nil
}

// Save overwrites the persisted state.
func (s *Store) Save(st parking.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}
