package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/spm/internal/config"
	"github.com/raphi011/spm/internal/output"
)

// notSet is printed for keys without a value.
const notSet = "(not set)"

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage spm configuration.

Settings live in config.toml next to the project registry:
  use_zellij     open picked projects in a new zellij tab (true/false)
  default_shell  shell used by 'spm init' without an argument (zsh, bash, fish)
  theme          prompt colors (default, none, dracula, nord, catppuccin)`,
		Example: `  spm config get default_shell
  spm config set use_zellij true
  spm config list
  spm config path`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Print a configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(config.PathsFromContext(ctx).ConfigFile())
			if err != nil {
				return err
			}
			value, ok, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			if !ok {
				value = notSet
			}
			output.FromContext(ctx).Println(value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a configuration value",
		Long: `Change a configuration value.

An empty value unsets default_shell and theme.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigSet,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := config.PathsFromContext(ctx).ConfigFile()

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			key, value := args[0], args[1]
			if err := cfg.Set(key, value); err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			output.FromContext(ctx).Printf("%s=%s\n", key, value)
			return nil
		},
	}
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg, err := config.Load(config.PathsFromContext(ctx).ConfigFile())
			if err != nil {
				return err
			}
			for _, key := range config.Keys {
				value, ok, err := cfg.Get(key)
				if err != nil {
					return err
				}
				if !ok {
					value = notSet
				}
				out.Printf("%s=%s\n", key, value)
			}
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	var projects bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			paths := config.PathsFromContext(ctx)
			path := paths.ConfigFile()
			if projects {
				path = paths.ProjectsFile()
			}
			output.FromContext(ctx).Println(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&projects, "projects", false, "Print the project registry path instead")

	return cmd
}
