// Package history persists the record of prompts and the commands they
// produced, as a JSON file under the state directory.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// historyFileName is the file under the state directory holding all entries.
const historyFileName = "history.json"

// Entry records one prompt and the resolved commands produced from it.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Prompt    string    `json:"prompt"`
	Model     string    `json:"model,omitempty"`
	Commands  []string  `json:"commands,omitempty"`
}

// File is the on-disk shape of the history file.
type File struct {
	Entries []Entry `json:"entries"`
}

// Path returns the history file location under stateDir.
func Path(stateDir string) string {
	return filepath.Join(stateDir, historyFileName)
}

// Load reads the history file. A missing file yields an empty history.
func Load(stateDir string) (*File, error) {
	data, err := os.ReadFile(Path(stateDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing history file: %w", err)
	}
	return &file, nil
}

// Save writes the history file, creating stateDir if needed.
func Save(stateDir string, file *File) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	if err := os.WriteFile(Path(stateDir), data, 0o644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}

// Clear removes the history file. A missing file is not an error.
func Clear(stateDir string) error {
	err := os.Remove(Path(stateDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing history file: %w", err)
	}
	return nil
}
