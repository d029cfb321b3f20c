package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/spm/internal/format"
	"github.com/raphi011/spm/internal/output"
	"github.com/raphi011/spm/internal/project"
	"github.com/raphi011/spm/internal/ui/static"
)

func newListCmd() *cobra.Command {
	var (
		tags       []string
		jsonOutput bool
		table      bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List projects",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List registered projects in the order they were added.

With -t, only projects carrying at least one of the given tags are shown.`,
		Example: `  spm list              # One project per line
  spm list -t work,oss  # Projects tagged work or oss
  spm list --table      # Table with tags and age
  spm list --json       # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			reg, err := loadRegistry(ctx)
			if err != nil {
				return err
			}
			projects := reg.ListFiltered(tags)

			if jsonOutput {
				if projects == nil {
					projects = []project.Project{}
				}
				return out.JSON(projects)
			}

			if len(projects) == 0 {
				out.Println("No projects found")
				return nil
			}

			if table {
				out.Print(static.ProjectTable(projects, time.Now()))
				return nil
			}

			for _, p := range projects {
				out.Println(format.ProjectLine(p))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Filter by tags (any match)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&table, "table", false, "Output as a table")
	cmd.MarkFlagsMutuallyExclusive("json", "table")
	cmd.RegisterFlagCompletionFunc("tags", completeTags)

	return cmd
}
