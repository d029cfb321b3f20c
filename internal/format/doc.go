// Package format renders projects as text.
//
// # List Lines
//
// [ProjectLine] renders one project per line for `spm list`:
//
//	name (bare) - /path/to/project [tag1, tag2]
//
// The " (bare)" marker and the tag list are left out when not applicable.
//
// # Prompt Details
//
// [ProjectDetail] is the dimmed text shown next to a project name in the
// selection prompt, and [TableRow] the row for `spm list --table`.
package format
