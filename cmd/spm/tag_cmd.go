package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/raphi011/spm/internal/output"
	"github.com/raphi011/spm/internal/project"
)

func newTagCmd() *cobra.Command {
	var (
		remove      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:               "tag [project] <tag>...",
		Short:             "Add or remove project tags",
		GroupID:           GroupRegistry,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeTagArgs,
		Long: `Add tags to a project, or remove them with -r.

Adding a tag the project already has, or removing one it does not have,
is not an error. With -i the project is chosen interactively and every
argument is a tag.`,
		Example: `  spm tag blog writing hugo  # Add two tags
  spm tag blog hugo -r       # Remove a tag
  spm tag -i archive         # Choose the project interactively`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			reg, err := loadRegistry(ctx)
			if err != nil {
				return err
			}

			var name string
			tags := args
			if interactive {
				p, err := newResolver(ctx).SelectProject(reg.List(), "")
				if err != nil {
					return err
				}
				name = p.Name
			} else {
				name, tags = args[0], args[1:]
			}
			if len(tags) == 0 {
				return errors.New("at least one tag is required")
			}

			err = reg.Update(name, func(p *project.Project) {
				for _, tag := range tags {
					if remove {
						p.RemoveTag(tag)
					} else {
						p.AddTag(tag)
					}
				}
			})
			if err != nil {
				return err
			}

			if remove {
				out.Printf("Tags removed from '%s'\n", name)
			} else {
				out.Printf("Tags added to '%s'\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&remove, "remove", "r", false, "Remove the tags instead of adding them")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the project interactively")

	return cmd
}
