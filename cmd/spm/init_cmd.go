package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/raphi011/spm/internal/config"
	"github.com/raphi011/spm/internal/output"
	"github.com/raphi011/spm/internal/shell"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "init [shell]",
		Short:     "Output shell wrapper function",
		GroupID:   GroupConfig,
		ValidArgs: config.ValidShells,
		Args:      cobra.MaximumNArgs(1),
		Long: `Output shell wrapper function that makes 'spm pick' change directories.

Without this wrapper, 'spm pick' only prints the path (since subprocesses
cannot change the parent shell's directory). The wrapper intercepts
'spm pick' and performs the actual directory change.

The shell defaults to the default_shell setting. With use_zellij enabled,
picking inside a zellij session opens a new tab instead.`,
		Example: `  eval "$(spm init bash)"           # add to ~/.bashrc
  eval "$(spm init zsh)"            # add to ~/.zshrc
  spm init fish | source            # add to ~/.config/fish/config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			if cfg == nil {
				def := config.Default()
				cfg = &def
			}

			name := string(cfg.DefaultShell)
			if len(args) > 0 {
				name = args[0]
			}
			if name == "" {
				return errors.New("no shell given and default_shell is not set (spm config set default_shell <shell>)")
			}
			sh, err := config.ParseShell(name)
			if err != nil {
				return err
			}

			hook, err := shell.Generate(sh, shell.Options{UseZellij: cfg.UseZellij})
			if err != nil {
				return err
			}
			output.FromContext(ctx).Print(hook)
			return nil
		},
	}

	return cmd
}
