package main

import (
	"context"
	"fmt"

	"github.com/raphi011/spm/internal/config"
	"github.com/raphi011/spm/internal/git"
	"github.com/raphi011/spm/internal/log"
	"github.com/raphi011/spm/internal/project"
	"github.com/raphi011/spm/internal/registry"
	"github.com/raphi011/spm/internal/resolve"
	"github.com/raphi011/spm/internal/ui/prompt"
)

// prompter is what commands need from the terminal.
type prompter interface {
	resolve.Prompter
	Confirm(msg string) (prompt.ConfirmResult, error)
}

type prompterKey struct{}

// withPrompter replaces the terminal prompter, used by tests.
func withPrompter(ctx context.Context, p prompter) context.Context {
	return context.WithValue(ctx, prompterKey{}, p)
}

func prompterFromContext(ctx context.Context) prompter {
	if p, ok := ctx.Value(prompterKey{}).(prompter); ok {
		return p
	}
	return prompt.Terminal{}
}

// loadRegistry loads the registry from the configured directory.
func loadRegistry(ctx context.Context) (*registry.Storage, error) {
	reg, err := registry.Load(config.PathsFromContext(ctx).ProjectsFile())
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	return reg, nil
}

// newResolver wires the selection flow to the terminal and go-git.
func newResolver(ctx context.Context) *resolve.Resolver {
	l := log.FromContext(ctx)
	return &resolve.Resolver{
		Prompt: prompterFromContext(ctx),
		Worktrees: git.Inspector{OnSkip: func(repoPath string, s git.SkippedWorktree) {
			l.Debug("skipping worktree", "repo", repoPath, "worktree", s.Name, "error", s.Err)
		}},
		Log: l,
	}
}

// selectProjectName prompts for one of projects and returns its name.
func selectProjectName(ctx context.Context, projects []project.Project, title string) (string, error) {
	options := make([]prompt.Option, len(projects))
	for i, p := range projects {
		options[i] = prompt.Option{Label: p.Name, Detail: p.Path}
	}

	res, err := prompterFromContext(ctx).Select(prompt.Request{Title: title, Options: options})
	if err != nil {
		return "", err
	}
	if !res.Chosen() || res.Index >= len(projects) {
		return "", resolve.ErrCancelled
	}
	return projects[res.Index].Name, nil
}
