package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/spm/internal/config"
	"github.com/raphi011/spm/internal/log"
	"github.com/raphi011/spm/internal/output"
	"github.com/raphi011/spm/internal/resolve"
	"github.com/raphi011/spm/internal/storage"
	"github.com/raphi011/spm/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCore     = "core"
	GroupRegistry = "registry"
	GroupConfig   = "config"
)

// Exit codes
const (
	exitOK         = 0
	exitError      = 1
	exitNoProjects = 2
	exitCancelled  = 130
)

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "spm",
		Short: "Side project manager",
		Long: `spm keeps a registry of your local projects and takes you to them.

Projects can be tagged and filtered. Bare git repositories are resolved to
one of their worktrees when picked. Install the shell wrapper with 'spm init'
so that 'spm pick' changes directory.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l := log.New(cmd.ErrOrStderr(), verbose, quiet)
			ctx = log.WithLogger(ctx, l)
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())

			paths := config.PathsFromContext(ctx)
			ctx = config.WithPaths(ctx, paths)

			// A broken config file must not lock the user out of the registry.
			cfg, err := config.Load(paths.ConfigFile())
			if err != nil {
				l.Warn("using default configuration", "error", err)
			}
			styles.Init(cfg.Theme)
			ctx = config.WithConfig(ctx, &cfg)

			l.Debug("config directory", "path", paths.ConfigDir)
			cmd.SetContext(ctx)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupRegistry, Title: "Registry Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	cmd.AddCommand(newPickCmd())
	cmd.AddCommand(newListCmd())

	// Registry commands
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newTagCmd())

	// Config commands
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute runs the command tree against the process environment and exits.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	ctx = config.WithPaths(ctx, config.Paths{ConfigDir: storage.ConfigDir(os.Getenv)})

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes args and returns the process exit code. Errors are reported
// on stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	code := exitCode(err)
	switch code {
	case exitOK, exitCancelled:
	case exitNoProjects:
		fmt.Fprintln(stderr, err)
	default:
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Run 'spm -h' for help")
	}
	return code
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, resolve.ErrCancelled):
		return exitCancelled
	case errors.Is(err, resolve.ErrNoProjects):
		return exitNoProjects
	default:
		return exitError
	}
}
