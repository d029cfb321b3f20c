// Package prompt provides the interactive terminal prompts.
//
// All prompts render to stderr so stdout stays free for data, e.g. the
// path printed by `spm pick` that the shell hook captures.
//
// Available prompts:
//   - [Select]: fuzzy-filtered single choice, optionally skippable
//   - [Confirm]: Yes/No confirmation prompt
//
// [Terminal] adapts [Select] to callers that take a prompter interface and
// refuses to run without a terminal.
package prompt
