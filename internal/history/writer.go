package history

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Writer provides thread-safe history logging with automatic pruning.
type Writer struct {
	// StateDir is the directory containing the history file.
	StateDir string
	// MaxEntries is the maximum number of entries to retain. Zero means
	// unlimited.
	MaxEntries int

	mu sync.Mutex
}

// NewWriter creates a new history writer.
func NewWriter(stateDir string, maxEntries int) *Writer {
	return &Writer{
		StateDir:   stateDir,
		MaxEntries: maxEntries,
	}
}

// LogEntry adds a new entry to the history file.
// It loads the existing history, appends the new entry, prunes if needed, and saves.
// Errors are non-fatal: they are written to stderr and don't interrupt the session.
func (w *Writer) LogEntry(entry Entry) {
	if err := w.logEntryInternal(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to log history: %v\n", err)
	}
}

func (w *Writer) logEntryInternal(entry Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	file, err := Load(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	file.Entries = append(file.Entries, entry)

	// Prune oldest entries if over limit
	if w.MaxEntries > 0 && len(file.Entries) > w.MaxEntries {
		excess := len(file.Entries) - w.MaxEntries
		file.Entries = file.Entries[excess:]
	}

	if err := Save(w.StateDir, file); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	return nil
}

// LogPrompt is a convenience method to record a prompt and the commands it
// produced.
func (w *Writer) LogPrompt(prompt, model string, commands []string) {
	w.LogEntry(Entry{
		Timestamp: time.Now(),
		Prompt:    prompt,
		Model:     model,
		Commands:  commands,
	})
}
