// Package git inspects repositories on disk with go-git.
//
// No git binary is required. The package answers two questions for the
// selection flow:
//
//   - [IsBareRepo]: is a registered path a bare repository?
//   - [ListWorktrees]: which linked worktrees does a bare repository have,
//     and which branch is each one on?
//
// # Worktree Metadata
//
// A linked worktree is registered in the repository's git directory under
// worktrees/<name>/. The gitdir file in that directory holds the path to the
// checkout's .git file, and the checkout's .git file points back at
// worktrees/<name>. Each checkout has its own HEAD while sharing refs and
// objects with the repository through the commondir file.
//
// Bare detection never fails: anything that cannot be opened is reported as
// not bare. Worktree listing fails only when the bare repository itself cannot
// be opened; individual broken worktrees are skipped.
package git
