// Package config handles loading, validation and editing of spm settings.
//
// Settings live in config.toml inside the spm config directory (see
// storage.ConfigDir). A missing file means defaults.
//
// # Keys
//
//   - use_zellij: open a zellij tab instead of cd-ing when inside zellij
//     (bool, default false)
//   - default_shell: shell used by `spm init` without an argument
//     ("zsh", "bash" or "fish"; unset by default)
//   - theme: prompt color theme (default "default")
//
// Keys are read and written by name through [Config.Get] and [Config.Set],
// which back the `spm config` command.
package config
