package resolve

import (
	"errors"
	"fmt"

	"github.com/raphi011/spm/internal/format"
	"github.com/raphi011/spm/internal/git"
	"github.com/raphi011/spm/internal/log"
	"github.com/raphi011/spm/internal/project"
	"github.com/raphi011/spm/internal/ui/prompt"
)

var (
	// ErrNoProjects indicates there were no candidates to choose from.
	ErrNoProjects = errors.New("no projects available")
	// ErrCancelled indicates the user aborted a prompt.
	ErrCancelled = errors.New("selection cancelled")
)

// Prompt texts.
const (
	ProjectTitle  = "Select a project:"
	WorktreeTitle = "Select a worktree:"
	WorktreeHelp  = "you can skip this to pick the project root"
)

// Prompter asks the user to choose one option.
type Prompter interface {
	Select(req prompt.Request) (prompt.Result, error)
}

// WorktreeLister lists the linked worktrees of a bare repository.
type WorktreeLister interface {
	ListWorktrees(bareRepoPath string) ([]git.Worktree, error)
}

// Selection is the outcome of a resolution.
type Selection struct {
	Project  project.Project
	Path     string        // directory to switch to
	Worktree *git.Worktree // nil unless a worktree was chosen
}

// Resolver runs the selection flow.
type Resolver struct {
	Prompt    Prompter
	Worktrees WorktreeLister
	Log       *log.Logger // optional
}

// Resolve selects a project from candidates and resolves it to a path.
func (r *Resolver) Resolve(candidates []project.Project, query string) (Selection, error) {
	p, err := r.SelectProject(candidates, query)
	if err != nil {
		return Selection{}, err
	}
	return r.ResolvePath(p)
}

// SelectProject picks one project from candidates.
//
// A non-empty query matching exactly one project name is returned without
// prompting. A query matching several names pre-fills the prompt filter; a
// query matching none is dropped.
func (r *Resolver) SelectProject(candidates []project.Project, query string) (project.Project, error) {
	if len(candidates) == 0 {
		return project.Project{}, ErrNoProjects
	}

	filter := ""
	if query != "" {
		var matches []int
		for i, p := range candidates {
			if p.MatchesQuery(query) {
				matches = append(matches, i)
			}
		}
		switch len(matches) {
		case 0:
			r.debug("query matched no project, prompting without filter", "query", query)
		case 1:
			return candidates[matches[0]], nil
		default:
			filter = query
		}
	}

	options := make([]prompt.Option, len(candidates))
	for i, p := range candidates {
		options[i] = prompt.Option{Label: p.Name, Detail: format.ProjectDetail(p)}
	}

	res, err := r.Prompt.Select(prompt.Request{
		Title:   ProjectTitle,
		Options: options,
		Filter:  filter,
	})
	if err != nil {
		return project.Project{}, fmt.Errorf("select project: %w", err)
	}
	if !res.Chosen() || res.Index >= len(candidates) {
		return project.Project{}, ErrCancelled
	}
	return candidates[res.Index], nil
}

// ResolvePath returns the directory for p. Bare repositories with linked
// worktrees prompt for a worktree; skipping returns the stored path.
func (r *Resolver) ResolvePath(p project.Project) (Selection, error) {
	root := Selection{Project: p, Path: p.Path}
	if !p.IsBareRepo {
		return root, nil
	}

	worktrees, err := r.Worktrees.ListWorktrees(p.Path)
	if err != nil {
		r.debug("listing worktrees failed, using project root", "project", p.Name, "error", err)
		return root, nil
	}
	if len(worktrees) == 0 {
		return root, nil
	}

	options := make([]prompt.Option, len(worktrees))
	for i, wt := range worktrees {
		options[i] = prompt.Option{Label: wt.String(), Filter: wt.Name}
	}

	res, err := r.Prompt.Select(prompt.Request{
		Title:     WorktreeTitle,
		Help:      WorktreeHelp,
		Options:   options,
		Skippable: true,
	})
	if err != nil {
		return Selection{}, fmt.Errorf("select worktree: %w", err)
	}

	switch {
	case res.Cancelled:
		return Selection{}, ErrCancelled
	case res.Skipped:
		return root, nil
	case res.Index < 0 || res.Index >= len(worktrees):
		return Selection{}, ErrCancelled
	}

	wt := worktrees[res.Index]
	return Selection{Project: p, Path: wt.Path, Worktree: &wt}, nil
}

func (r *Resolver) debug(msg string, args ...any) {
	if r.Log != nil {
		r.Log.Debug(msg, args...)
	}
}
