package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/spm/internal/log"
	"github.com/raphi011/spm/internal/output"
	"github.com/raphi011/spm/internal/project"
	"github.com/raphi011/spm/internal/resolve"
	"github.com/raphi011/spm/internal/ui/prompt"
)

// removeTitle is the prompt shown when no project name is given.
const removeTitle = "Select project to remove:"

func newRemoveCmd() *cobra.Command {
	var (
		all   bool
		tags  []string
		force bool
	)

	cmd := &cobra.Command{
		Use:               "remove [name]",
		Short:             "Unregister a project",
		Aliases:           []string{"rm"},
		GroupID:           GroupRegistry,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeProjectNames,
		Long: `Unregister a project. Files on disk are never touched.

Without a name the project is chosen interactively (optionally among those
tagged with -t). With --all every project, or every project carrying one
of the -t tags, is removed after confirmation.`,
		Example: `  spm remove blog          # Unregister by name
  spm rm                   # Choose interactively
  spm rm --all -t archive  # Remove everything tagged archive
  spm rm --all -f          # Clear the registry without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if all && len(args) > 0 {
				return errors.New("cannot combine a project name with --all")
			}

			reg, err := loadRegistry(ctx)
			if err != nil {
				return err
			}

			if all {
				targets := reg.ListFiltered(tags)
				if len(targets) == 0 {
					out.Println("No projects to remove")
					return nil
				}
				if !force {
					ok, err := confirmRemoval(prompterFromContext(ctx), len(targets))
					if err != nil {
						return err
					}
					if !ok {
						l.Println("Cancelled")
						return nil
					}
				}

				var removed []project.Project
				if len(tags) == 0 {
					removed, err = reg.RemoveAll()
				} else {
					removed, err = reg.RemoveAllFiltered(tags)
				}
				if err != nil {
					return err
				}
				for _, p := range removed {
					out.Printf("Project %s removed\n", p.Name)
				}
				return nil
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			} else {
				candidates := reg.ListFiltered(tags)
				if len(candidates) == 0 {
					out.Println("No projects to remove")
					return nil
				}
				name, err = selectProjectName(ctx, candidates, removeTitle)
				if err != nil {
					return err
				}
			}

			if err := reg.Remove(name); err != nil {
				return err
			}
			out.Printf("Project '%s' removed\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Remove all projects (or all matching -t)")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Restrict to projects with any of these tags")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation for --all")
	cmd.RegisterFlagCompletionFunc("tags", completeTags)

	return cmd
}

func confirmRemoval(p prompter, n int) (bool, error) {
	noun := "projects"
	if n == 1 {
		noun = "project"
	}
	result, err := p.Confirm(fmt.Sprintf("Remove %d %s from the registry?", n, noun))
	if err != nil {
		if errors.Is(err, prompt.ErrNotTerminal) {
			return false, fmt.Errorf("%w (use --force to skip confirmation)", err)
		}
		return false, err
	}
	if result.Cancelled {
		return false, resolve.ErrCancelled
	}
	return result.Confirmed, nil
}
