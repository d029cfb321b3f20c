package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// mkdirs creates directories under a temp dir and returns their paths.
func mkdirs(t *testing.T, names ...string) []string {
	t.Helper()
	base := t.TempDir()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(base, name)
		if err := os.MkdirAll(paths[i], 0o755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
	}
	return paths
}

func TestRecordAccess(t *testing.T) {
	t.Parallel()

	historyFile := filepath.Join(t.TempDir(), FileName)

	if err := RecordAccess("/path/to/worktree", "myrepo", "main", historyFile); err != nil {
		t.Fatalf("RecordAccess failed: %v", err)
	}

	h, err := Load(historyFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(h.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(h.Entries))
	}
	e := h.Entries[0]
	if e.Path != "/path/to/worktree" {
		t.Errorf("Path = %q, want %q", e.Path, "/path/to/worktree")
	}
	if e.Project != "myrepo" {
		t.Errorf("Project = %q, want %q", e.Project, "myrepo")
	}
	if e.Worktree != "main" {
		t.Errorf("Worktree = %q, want %q", e.Worktree, "main")
	}
	if e.AccessCount != 1 {
		t.Errorf("AccessCount = %d, want 1", e.AccessCount)
	}
	if e.LastAccess.IsZero() {
		t.Error("LastAccess should not be zero")
	}
}

func TestRecord_IncrementExisting(t *testing.T) {
	t.Parallel()

	h := &History{}
	now := time.Now()
	h.Record("/p/one", "one", "", now)
	h.Record("/p/two", "two", "", now.Add(time.Second))
	h.Record("/p/one", "one", "feat", now.Add(2*time.Second))

	if len(h.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(h.Entries))
	}
	first := h.Entries[0]
	if first.Path != "/p/one" || first.AccessCount != 2 || first.Worktree != "feat" {
		t.Errorf("first entry = %+v", first)
	}
}

func TestRecord_MaxCap(t *testing.T) {
	t.Parallel()

	h := &History{}
	base := time.Now().Add(-time.Hour)
	for i := range maxEntries {
		h.Record(filepath.Join("/p", "entry", string(rune('a'+i%26)), string(rune('0'+i/26))), "p", "", base.Add(time.Duration(i)*time.Second))
	}
	oldest := h.Entries[len(h.Entries)-1].Path

	h.Record("/p/new", "new", "", time.Now())

	if len(h.Entries) != maxEntries {
		t.Errorf("expected %d entries, got %d", maxEntries, len(h.Entries))
	}
	if h.Entries[0].Path != "/p/new" {
		t.Errorf("newest entry = %q, want /p/new", h.Entries[0].Path)
	}
	for _, e := range h.Entries {
		if e.Path == oldest {
			t.Errorf("oldest entry %q should have been evicted", oldest)
		}
	}
}

func TestGetMostRecent(t *testing.T) {
	t.Parallel()

	dirs := mkdirs(t, "old", "new")
	historyFile := filepath.Join(t.TempDir(), FileName)

	h := &History{}
	h.Record(dirs[0], "old", "", time.Now().Add(-time.Minute))
	h.Record(dirs[1], "new", "", time.Now())
	if err := h.Save(historyFile); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	mostRecent, err := GetMostRecent(historyFile)
	if err != nil {
		t.Fatalf("GetMostRecent failed: %v", err)
	}
	if mostRecent != dirs[1] {
		t.Errorf("expected %q, got %q", dirs[1], mostRecent)
	}
}

func TestGetMostRecent_SkipsDeletedPaths(t *testing.T) {
	t.Parallel()

	dirs := mkdirs(t, "kept", "deleted")
	historyFile := filepath.Join(t.TempDir(), FileName)

	h := &History{}
	h.Record(dirs[0], "kept", "", time.Now().Add(-time.Minute))
	h.Record(dirs[1], "deleted", "", time.Now())
	if err := h.Save(historyFile); err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(dirs[1]); err != nil {
		t.Fatal(err)
	}

	mostRecent, err := GetMostRecent(historyFile)
	if err != nil {
		t.Fatalf("GetMostRecent failed: %v", err)
	}
	if mostRecent != dirs[0] {
		t.Errorf("expected %q, got %q", dirs[0], mostRecent)
	}
}

func TestGetMostRecent_NoHistory(t *testing.T) {
	t.Parallel()

	mostRecent, err := GetMostRecent(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("GetMostRecent failed: %v", err)
	}
	if mostRecent != "" {
		t.Errorf("expected empty string, got %q", mostRecent)
	}
}

func TestLoad_Corrupted(t *testing.T) {
	t.Parallel()

	historyFile := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(historyFile, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	h, err := Load(historyFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(h.Entries) != 0 {
		t.Errorf("corrupted history should load empty, got %d entries", len(h.Entries))
	}
}

func TestRemoveStale(t *testing.T) {
	t.Parallel()

	dirs := mkdirs(t, "valid")
	h := &History{
		Entries: []Entry{
			{Path: dirs[0], Project: "repo", AccessCount: 1, LastAccess: time.Now()},
			{Path: "/nonexistent/path", Project: "repo", AccessCount: 1, LastAccess: time.Now()},
		},
	}

	if removed := h.RemoveStale(); removed != 1 {
		t.Errorf("RemoveStale() = %d, want 1", removed)
	}
	if len(h.Entries) != 1 || h.Entries[0].Path != dirs[0] {
		t.Errorf("remaining entries = %+v", h.Entries)
	}
}
