package git

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// ErrRepository indicates a repository could not be opened.
var ErrRepository = errors.New("cannot open repository")

// worktreesDir is the directory inside a git directory holding linked worktree metadata.
const worktreesDir = "worktrees"

// branchRefPrefix is stripped from branch names for display.
const branchRefPrefix = "refs/heads/"

// Worktree is a linked worktree of a repository.
type Worktree struct {
	Name   string // worktree identifier under <gitdir>/worktrees
	Path   string // checkout directory
	Branch string // symbolic HEAD target, e.g. refs/heads/main; empty if detached or unknown
}

// ShortBranch returns the branch without the refs/heads/ prefix.
func (w Worktree) ShortBranch() string {
	return strings.TrimPrefix(w.Branch, branchRefPrefix)
}

// String renders "name [branch]" when the branch is known, "name (path)" otherwise.
func (w Worktree) String() string {
	if w.Branch != "" {
		return fmt.Sprintf("%s [%s]", w.Name, w.ShortBranch())
	}
	return fmt.Sprintf("%s (%s)", w.Name, w.Path)
}

// SkippedWorktree records a worktree entry that could not be read.
type SkippedWorktree struct {
	Name string
	Err  error
}

// IsBareRepo reports whether path opens as a bare repository.
// Any failure to open or read the repository config yields false.
func IsBareRepo(path string) bool {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return false
	}
	cfg, err := repo.Config()
	if err != nil {
		return false
	}
	return cfg.Core.IsBare
}

// ListWorktrees returns the linked worktrees of the repository at bareRepoPath,
// sorted by name. Entries that cannot be opened are left out.
func ListWorktrees(bareRepoPath string) ([]Worktree, error) {
	worktrees, _, err := ListWorktreesWithSkipped(bareRepoPath)
	return worktrees, err
}

// ListWorktreesWithSkipped is ListWorktrees but also reports the entries that
// were left out and why.
func ListWorktreesWithSkipped(bareRepoPath string) ([]Worktree, []SkippedWorktree, error) {
	repo, err := gogit.PlainOpen(bareRepoPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %v", ErrRepository, bareRepoPath, err)
	}

	gitDir, err := repoFilesystem(repo)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %v", ErrRepository, bareRepoPath, err)
	}

	entries, err := gitDir.ReadDir(worktreesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("%w %s: read worktrees: %v", ErrRepository, bareRepoPath, err)
	}

	var worktrees []Worktree
	var skipped []SkippedWorktree
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		wt, err := readWorktree(gitDir, entry.Name())
		if err != nil {
			skipped = append(skipped, SkippedWorktree{Name: entry.Name(), Err: err})
			continue
		}
		worktrees = append(worktrees, wt)
	}

	slices.SortFunc(worktrees, func(a, b Worktree) int { return strings.Compare(a.Name, b.Name) })
	return worktrees, skipped, nil
}

// readWorktree resolves the checkout of worktree name and reads its HEAD.
func readWorktree(gitDir billy.Filesystem, name string) (Worktree, error) {
	adminDir := gitDir.Join(worktreesDir, name)

	data, err := util.ReadFile(gitDir, gitDir.Join(adminDir, "gitdir"))
	if err != nil {
		return Worktree{}, fmt.Errorf("read gitdir: %w", err)
	}

	// gitdir holds the path of the checkout's .git file.
	dotGit := strings.TrimSpace(string(data))
	if dotGit == "" {
		return Worktree{}, fmt.Errorf("empty gitdir file")
	}
	if !filepath.IsAbs(dotGit) {
		dotGit = filepath.Join(gitDir.Root(), adminDir, dotGit)
	}
	checkout := filepath.Dir(filepath.Clean(dotGit))

	repo, err := gogit.PlainOpenWithOptions(checkout, &gogit.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return Worktree{}, fmt.Errorf("open %s: %w", checkout, err)
	}

	return Worktree{
		Name:   name,
		Path:   checkout,
		Branch: symbolicHead(repo),
	}, nil
}

// symbolicHead returns the ref HEAD points at, or "" when HEAD is detached
// or unreadable.
func symbolicHead(repo *gogit.Repository) string {
	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil || head.Type() != plumbing.SymbolicReference {
		return ""
	}
	return head.Target().String()
}

// repoFilesystem returns the filesystem rooted at the repository's git directory.
func repoFilesystem(repo *gogit.Repository) (billy.Filesystem, error) {
	s, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return nil, fmt.Errorf("unsupported storage %T", repo.Storer)
	}
	return s.Filesystem(), nil
}

// Inspector exposes the package functions as methods for callers that take
// an interface.
type Inspector struct {
	// OnSkip, if set, is called for every worktree left out of a listing.
	OnSkip func(repoPath string, skipped SkippedWorktree)
}

// IsBareRepo reports whether path is a bare repository.
func (Inspector) IsBareRepo(path string) bool {
	return IsBareRepo(path)
}

// ListWorktrees lists the linked worktrees of the repository at path.
func (i Inspector) ListWorktrees(path string) ([]Worktree, error) {
	worktrees, skipped, err := ListWorktreesWithSkipped(path)
	if i.OnSkip != nil {
		for _, s := range skipped {
			i.OnSkip(path, s)
		}
	}
	return worktrees, err
}
