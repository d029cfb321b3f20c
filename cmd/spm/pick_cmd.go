package main

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/spm/internal/config"
	"github.com/raphi011/spm/internal/history"
	"github.com/raphi011/spm/internal/log"
	"github.com/raphi011/spm/internal/output"
)

func newPickCmd() *cobra.Command {
	var (
		tags []string
		copyPath bool
		last     bool
	)

	cmd := &cobra.Command{
		Use:               "pick [query]",
		Short:             "Select a project and print its path",
		GroupID:           GroupCore,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeProjectNames,
		Long: `Select a project interactively and print its path.

A query that matches exactly one project name selects it without prompting.
A query matching several names pre-fills the filter. For bare repositories
with worktrees a second prompt picks the worktree; skip it (esc) to use the
repository itself.

Install the shell wrapper ('spm init') to change into the printed path.`,
		Example: `  spm pick             # Choose from all projects
  spm pick blog        # Jump straight to "blog" if unambiguous
  spm pick -t work     # Choose among projects tagged work
  spm pick --copy      # Also copy the path to the clipboard
  spm pick --last      # Print the previously picked path again`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			historyFile := config.PathsFromContext(ctx).HistoryFile()

			var path string
			if last {
				if len(args) > 0 || len(tags) > 0 {
					return errors.New("--last takes no query or tags")
				}
				recent, err := history.GetMostRecent(historyFile)
				if err != nil {
					return err
				}
				if recent == "" {
					return errors.New("no previous pick")
				}
				path = recent
			} else {
				query := ""
				if len(args) > 0 {
					query = args[0]
				}

				reg, err := loadRegistry(ctx)
				if err != nil {
					return err
				}

				sel, err := newResolver(ctx).Resolve(reg.ListFiltered(tags), query)
				if err != nil {
					return err
				}
				l.Debug("picked", "project", sel.Project.Name, "path", sel.Path)

				worktree := ""
				if sel.Worktree != nil {
					worktree = sel.Worktree.Name
				}
				if err := history.RecordAccess(sel.Path, sel.Project.Name, worktree, historyFile); err != nil {
					l.Warn("could not record pick history", "error", err)
				}
				path = sel.Path
			}

			out.Println(path)

			if copyPath {
				if err := clipboard.WriteAll(path); err != nil {
					l.Warn("could not copy path to clipboard", "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Only offer projects with any of these tags")
	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the path to the clipboard")
	cmd.Flags().BoolVarP(&last, "last", "l", false, "Print the most recently picked path")
	cmd.RegisterFlagCompletionFunc("tags", completeTags)

	return cmd
}
