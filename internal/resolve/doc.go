// Package resolve turns a set of candidate projects into one filesystem path.
//
// Resolution has two stages:
//
//   - Project: a query that matches exactly one project name (substring,
//     case-sensitive) selects it directly. Otherwise the user picks from a
//     fuzzy prompt, pre-filtered with the query when it matched several
//     projects.
//   - Path: a regular project resolves to its stored path. A bare repository
//     offers its linked worktrees in a skippable prompt; skipping, an empty
//     worktree list, or a failure to list worktrees all fall back to the
//     stored path.
//
// Prompts are reached through the [Prompter] interface so the flow can be
// driven without a terminal.
package resolve
