package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_LogEntry(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setupStore  func(t *testing.T, stateDir string)
		maxEntries  int
		wantEntries int
	}{
		"log entry to empty history": {
			setupStore:  func(t *testing.T, stateDir string) {},
			maxEntries:  500,
			wantEntries: 1,
		},
		"log entry to existing history": {
			setupStore: func(t *testing.T, stateDir string) {
				file := &File{
					Entries: []Entry{
						{Timestamp: time.Now(), Prompt: "existing", Model: "gpt4o"},
					},
				}
				require.NoError(t, Save(stateDir, file))
			},
			maxEntries:  500,
			wantEntries: 2,
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stateDir := t.TempDir()
			tc.setupStore(t, stateDir)

			writer := NewWriter(stateDir, tc.maxEntries)
			writer.LogEntry(Entry{
				Timestamp: time.Now(),
				Prompt:    "list my vms",
				Model:     "gpt4o",
				Commands:  []string{"gcloud compute instances list"},
			})

			file, err := Load(stateDir)
			require.NoError(t, err)
			assert.Len(t, file.Entries, tc.wantEntries)
		})
	}
}

func TestWriter_Pruning(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		existingEntries int
		maxEntries      int
		wantEntries     int
		wantOldest      string // prompt of oldest remaining entry
	}{
		"no pruning needed": {
			existingEntries: 5,
			maxEntries:      10,
			wantEntries:     6, // 5 existing + 1 new
			wantOldest:      "prompt-0",
		},
		"prune oldest when max exceeded": {
			existingEntries: 10,
			maxEntries:      10,
			wantEntries:     10, // oldest removed, new added
			wantOldest:      "prompt-1",
		},
		"prune multiple when well over max": {
			existingEntries: 12,
			maxEntries:      10,
			wantEntries:     10,
			wantOldest:      "prompt-3",
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stateDir := t.TempDir()

			entries := make([]Entry, tc.existingEntries)
			for i := 0; i < tc.existingEntries; i++ {
				entries[i] = Entry{
					Timestamp: time.Now().Add(time.Duration(i) * time.Minute),
					Prompt:    fmt.Sprintf("prompt-%d", i),
				}
			}
			require.NoError(t, Save(stateDir, &File{Entries: entries}))

			writer := NewWriter(stateDir, tc.maxEntries)
			writer.LogEntry(Entry{
				Timestamp: time.Now().Add(time.Hour),
				Prompt:    "new-prompt",
			})

			loaded, err := Load(stateDir)
			require.NoError(t, err)
			assert.Len(t, loaded.Entries, tc.wantEntries)

			if len(loaded.Entries) > 0 {
				assert.Equal(t, tc.wantOldest, loaded.Entries[0].Prompt)
			}
			assert.Equal(t, "new-prompt", loaded.Entries[len(loaded.Entries)-1].Prompt)
		})
	}
}

func TestWriter_LogPrompt(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	writer := NewWriter(stateDir, 500)

	writer.LogPrompt("create a bucket", "claude", []string{"gsutil mb gs://my-bucket"})

	file, err := Load(stateDir)
	require.NoError(t, err)
	require.Len(t, file.Entries, 1)

	entry := file.Entries[0]
	assert.Equal(t, "create a bucket", entry.Prompt)
	assert.Equal(t, "claude", entry.Model)
	assert.Equal(t, []string{"gsutil mb gs://my-bucket"}, entry.Commands)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestWriter_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	writer := NewWriter(stateDir, 100)

	var wg sync.WaitGroup
	numWriters := 10
	entriesPerWriter := 5

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < entriesPerWriter; j++ {
				writer.LogEntry(Entry{
					Timestamp: time.Now(),
					Prompt:    "concurrent",
				})
			}
		}()
	}

	wg.Wait()

	file, err := Load(stateDir)
	require.NoError(t, err)
	assert.Len(t, file.Entries, numWriters*entriesPerWriter)
}

func TestWriter_NonFatalErrors(t *testing.T) {
	t.Parallel()

	// A state directory that cannot be created must not panic.
	writer := NewWriter(filepath.Join(string(os.PathSeparator), "dev", "null", "nope"), 500)
	writer.LogEntry(Entry{Timestamp: time.Now(), Prompt: "test"})
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	file, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, file.Entries)
}

func TestLoad_CorruptFile(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(stateDir), []byte("{not json"), 0o644))

	_, err := Load(stateDir)
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()
	require.NoError(t, Save(stateDir, &File{Entries: []Entry{{Prompt: "x"}}}))

	require.NoError(t, Clear(stateDir))

	file, err := Load(stateDir)
	require.NoError(t, err)
	assert.Empty(t, file.Entries)

	// Clearing again is not an error.
	require.NoError(t, Clear(stateDir))
}

func TestWriter_ZeroMaxEntries(t *testing.T) {
	t.Parallel()

	stateDir := t.TempDir()

	// Zero max entries means unlimited
	writer := NewWriter(stateDir, 0)
	for i := 0; i < 5; i++ {
		writer.LogEntry(Entry{Timestamp: time.Now(), Prompt: "test"})
	}

	file, err := Load(stateDir)
	require.NoError(t, err)
	assert.Len(t, file.Entries, 5)
}
