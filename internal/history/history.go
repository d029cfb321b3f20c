// Package history remembers the paths printed by `spm pick`.
// This enables `spm pick --last` to return to the most recent one.
package history

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/raphi011/spm/internal/storage"
)

// FileName is the history document name inside the config directory.
const FileName = "history.json"

// maxEntries caps the number of remembered paths; the least recently
// used entry is evicted first.
const maxEntries = 100

// Entry is one picked path.
type Entry struct {
	Path        string    `json:"path"`
	Project     string    `json:"project"`
	Worktree    string    `json:"worktree,omitempty"`
	AccessCount int       `json:"access_count"`
	LastAccess  time.Time `json:"last_access"`
}

// History holds picked paths, most recent first.
type History struct {
	Entries []Entry `json:"entries"`
}

// Path returns the history document path inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, FileName)
}

// Load reads the history from file. A missing or corrupted file yields an
// empty history.
func Load(file string) (*History, error) {
	var h History
	if err := storage.LoadJSON(file, &h); err != nil {
		var pathErr *fs.PathError
		if errors.Is(err, fs.ErrNotExist) || !errors.As(err, &pathErr) {
			// Corrupted - start fresh
			return &History{}, nil
		}
		return nil, err
	}
	return &h, nil
}

// Save writes the history to file atomically.
func (h *History) Save(file string) error {
	return storage.SaveJSON(file, h)
}

// Record notes an access to path and moves it to the front.
func (h *History) Record(path, project, worktree string, now time.Time) {
	i := slices.IndexFunc(h.Entries, func(e Entry) bool { return e.Path == path })

	entry := Entry{Path: path}
	if i >= 0 {
		entry = h.Entries[i]
		h.Entries = slices.Delete(h.Entries, i, i+1)
	}
	entry.Project = project
	entry.Worktree = worktree
	entry.AccessCount++
	entry.LastAccess = now

	h.Entries = slices.Insert(h.Entries, 0, entry)
	h.sort()
	if len(h.Entries) > maxEntries {
		h.Entries = h.Entries[:maxEntries]
	}
}

// MostRecent returns the most recently accessed entry.
func (h *History) MostRecent() (Entry, bool) {
	if len(h.Entries) == 0 {
		return Entry{}, false
	}
	return h.Entries[0], true
}

// RemoveStale drops entries whose path no longer exists and reports how
// many were removed.
func (h *History) RemoveStale() int {
	before := len(h.Entries)
	h.Entries = slices.DeleteFunc(h.Entries, func(e Entry) bool {
		_, err := os.Stat(e.Path)
		return err != nil
	})
	return before - len(h.Entries)
}

func (h *History) sort() {
	slices.SortStableFunc(h.Entries, func(a, b Entry) int {
		return b.LastAccess.Compare(a.LastAccess)
	})
}

// RecordAccess loads file, records path and saves it.
func RecordAccess(path, project, worktree, file string) error {
	h, err := Load(file)
	if err != nil {
		return err
	}
	h.Record(path, project, worktree, time.Now().UTC())
	return h.Save(file)
}

// GetMostRecent returns the most recently picked path that still exists.
// Returns empty string if there is none.
func GetMostRecent(file string) (string, error) {
	h, err := Load(file)
	if err != nil {
		return "", err
	}
	h.RemoveStale()
	e, ok := h.MostRecent()
	if !ok {
		return "", nil
	}
	return e.Path, nil
}
