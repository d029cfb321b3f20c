package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/spm/internal/config"
)

// completeProjectNames completes the first positional argument with
// registered project names.
func completeProjectNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := loadRegistry(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return reg.AllNames(), cobra.ShellCompDirectiveNoFileComp
}

// completeTags completes tag flags with every tag in use.
func completeTags(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg, err := loadRegistry(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return reg.AllTags(), cobra.ShellCompDirectiveNoFileComp
}

// completeTagArgs completes `tag`: a project name first, then tags. With
// -i every argument is a tag.
func completeTagArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if len(args) == 0 && !interactive {
		return completeProjectNames(cmd, args, toComplete)
	}
	return completeTags(cmd, args, toComplete)
}

// completeConfigSet completes a key, then the values valid for it.
func completeConfigSet(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return config.Keys, cobra.ShellCompDirectiveNoFileComp
	case 1:
		switch args[0] {
		case "use_zellij":
			return []string{"true", "false"}, cobra.ShellCompDirectiveNoFileComp
		case "default_shell":
			return config.ValidShells, cobra.ShellCompDirectiveNoFileComp
		case "theme":
			return config.ValidThemes, cobra.ShellCompDirectiveNoFileComp
		}
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
