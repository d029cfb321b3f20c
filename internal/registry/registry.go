// Package registry manages the project registry at <configDir>/projects.json.
//
// The registry is loaded fresh on every invocation and rewritten in full after
// every mutation. Projects are unique by name and by canonical path.
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/raphi011/spm/internal/project"
	"github.com/raphi011/spm/internal/storage"
)

// FileName is the registry document name inside the config directory.
const FileName = "projects.json"

var (
	// ErrDuplicateName indicates a project with the same name is registered.
	ErrDuplicateName = errors.New("project name already exists")
	// ErrDuplicatePath indicates a project with the same path is registered.
	ErrDuplicatePath = errors.New("project path already registered")
	// ErrNotFound indicates no project has the requested name.
	ErrNotFound = errors.New("project not found")
	// ErrStorageCorrupt indicates the registry document exists but cannot be parsed.
	ErrStorageCorrupt = errors.New("registry file is corrupt")
	// ErrIO indicates the registry document could not be read or written.
	ErrIO = errors.New("registry i/o error")
)

// Path returns the registry document path inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, FileName)
}

// Storage holds all registered projects in insertion order.
type Storage struct {
	path     string
	projects []project.Project
}

// New returns an empty registry persisted at path. Nothing is written until
// the first mutation.
func New(path string) *Storage {
	return &Storage{path: path, projects: []project.Project{}}
}

// Load reads the registry from path.
// Returns an empty registry if the file doesn't exist.
func Load(path string) (*Storage, error) {
	var projects []project.Project
	if err := storage.LoadJSON(path, &projects); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(path), nil
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrStorageCorrupt, path, err)
	}
	if projects == nil {
		projects = []project.Project{}
	}
	return &Storage{path: path, projects: projects}, nil
}

// Save writes the full registry to disk atomically.
func (s *Storage) Save() error {
	if err := storage.SaveJSON(s.path, s.projects); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, s.path, err)
	}
	return nil
}

// FilePath returns the path the registry is persisted to.
func (s *Storage) FilePath() string {
	return s.path
}

// Add registers p and persists the registry.
// The registry is left unchanged if p's name or path is already taken.
func (s *Storage) Add(p project.Project) error {
	if _, ok := s.FindByName(p.Name); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
	}
	if _, ok := s.FindByPath(p.Path); ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, p.Path)
	}

	s.projects = append(s.projects, p)
	if err := s.Save(); err != nil {
		s.projects = s.projects[:len(s.projects)-1]
		return err
	}
	return nil
}

// Remove unregisters the project called name and persists the registry.
func (s *Storage) Remove(name string) error {
	i := slices.IndexFunc(s.projects, func(p project.Project) bool { return p.Name == name })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	s.projects = slices.Delete(s.projects, i, i+1)
	return s.Save()
}

// RemoveAll unregisters every project and persists the empty registry.
// Returns the removed projects.
func (s *Storage) RemoveAll() ([]project.Project, error) {
	removed := s.projects
	s.projects = []project.Project{}
	if err := s.Save(); err != nil {
		s.projects = removed
		return nil, err
	}
	return removed, nil
}

// RemoveAllFiltered unregisters every project sharing a tag with tags and
// persists the rest. An empty tags list removes everything.
// Returns the removed projects.
func (s *Storage) RemoveAllFiltered(tags []string) ([]project.Project, error) {
	if len(tags) == 0 {
		return s.RemoveAll()
	}

	var removed []project.Project
	kept := make([]project.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.HasAnyTag(tags) {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}

	previous := s.projects
	s.projects = kept
	if err := s.Save(); err != nil {
		s.projects = previous
		return nil, err
	}
	return removed, nil
}

// List returns all projects in insertion order. Callers must not modify the result.
func (s *Storage) List() []project.Project {
	return s.projects
}

// ListFiltered returns the projects sharing at least one tag with tags.
// An empty tags list returns every project.
func (s *Storage) ListFiltered(tags []string) []project.Project {
	if len(tags) == 0 {
		return s.projects
	}

	var matches []project.Project
	for _, p := range s.projects {
		if p.HasAnyTag(tags) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindByName looks up a project by name.
func (s *Storage) FindByName(name string) (*project.Project, bool) {
	for i := range s.projects {
		if s.projects[i].Name == name {
			return &s.projects[i], true
		}
	}
	return nil, false
}

// FindByPath looks up a project by its stored path.
func (s *Storage) FindByPath(path string) (*project.Project, bool) {
	for i := range s.projects {
		if s.projects[i].Path == path {
			return &s.projects[i], true
		}
	}
	return nil, false
}

// Update applies fn to the project called name and persists the registry.
func (s *Storage) Update(name string, fn func(*project.Project)) error {
	p, ok := s.FindByName(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	fn(p)
	return s.Save()
}

// AllNames returns every project name, sorted.
func (s *Storage) AllNames() []string {
	names := make([]string, len(s.projects))
	for i, p := range s.projects {
		names[i] = p.Name
	}
	slices.Sort(names)
	return names
}

// AllTags returns every tag used by any project, sorted and unique.
func (s *Storage) AllTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range s.projects {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	slices.Sort(tags)
	return tags
}
