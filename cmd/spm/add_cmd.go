package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/spm/internal/git"
	"github.com/raphi011/spm/internal/log"
	"github.com/raphi011/spm/internal/output"
	"github.com/raphi011/spm/internal/project"
)

func newAddCmd() *cobra.Command {
	var (
		name string
		tags []string
	)

	cmd := &cobra.Command{
		Use:     "add [path]",
		Short:   "Register a project",
		GroupID: GroupRegistry,
		Args:    cobra.MaximumNArgs(1),
		Long: `Register a directory as a project.

The path defaults to the current directory and is stored with symlinks
resolved. The name defaults to the directory name. Bare git repositories
are detected on add; picking one later offers its worktrees.`,
		Example: `  spm add                      # Register the current directory
  spm add ~/code/blog          # Register a path
  spm add . -n api -t work,go  # Custom name and tags`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			path, err := canonicalPath(path)
			if err != nil {
				return err
			}

			if name == "" {
				name = defaultName(path)
			}

			isBare := git.Inspector{}.IsBareRepo(path)
			l.Debug("adding project", "name", name, "path", path, "bare", isBare)

			p := project.New(name, path, isBare)
			if len(tags) > 0 {
				p = p.WithTags(tags)
			}

			reg, err := loadRegistry(ctx)
			if err != nil {
				return err
			}
			if err := reg.Add(p); err != nil {
				return err
			}

			out.Printf("Project '%s' added\n", name)
			if isBare {
				out.Println("  (bare repository detected)")
			}
			out.Printf("  Path: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Comma-separated tags")
	cmd.RegisterFlagCompletionFunc("tags", completeTags)

	return cmd
}

// canonicalPath returns the absolute, symlink-free form of path.
// The path must exist.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return resolved, nil
}

func defaultName(path string) string {
	base := filepath.Base(path)
	if base == string(filepath.Separator) || base == "." {
		return "unknown"
	}
	return base
}
