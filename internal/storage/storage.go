// Package storage resolves the per-user spm directory and provides atomic
// file operations for the JSON documents stored there.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Environment variables consulted by ConfigDir, highest priority first.
const (
	EnvConfigDir     = "SPM_CONFIG_DIR"
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
)

// AppName is the directory name used below the user config directory.
const AppName = "spm"

// ConfigDir returns the spm configuration directory for the given
// environment. It does not create the directory.
//
//   - $SPM_CONFIG_DIR, used as is
//   - $XDG_CONFIG_HOME/spm
//   - os.UserConfigDir()/spm
//   - ~/.config/spm
func ConfigDir(getenv func(string) string) string {
	if dir := getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if xdg := getenv(EnvXDGConfigHome); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join("~", ".config", AppName)
}

// SaveJSON atomically writes data as indented JSON to path.
func SaveJSON(path string, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, jsonData)
}

// WriteFileAtomic writes data to path.
// It ensures the parent directory exists, writes to a temp file,
// then renames to the final path.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}

// LoadJSON reads JSON from path into dest.
// Returns an error matching os.ErrNotExist if the file doesn't exist.
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}
