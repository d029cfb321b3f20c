package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/spm/internal/storage"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// ErrUnknownKey is returned by Get and Set for keys that do not exist.
var ErrUnknownKey = errors.New("unknown config key")

// Shell is a shell spm can generate hooks for.
type Shell string

const (
	ShellZsh  Shell = "zsh"
	ShellBash Shell = "bash"
	ShellFish Shell = "fish"
)

func (s Shell) String() string { return string(s) }

// Config holds the user settings.
type Config struct {
	UseZellij    bool   `toml:"use_zellij"`
	DefaultShell Shell  `toml:"default_shell,omitempty"`
	Theme        string `toml:"theme,omitempty"`
}

// Keys lists the configuration keys in display order.
var Keys = []string{"use_zellij", "default_shell", "theme"}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{}
}

// Path returns the configuration file path inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, FileName)
}

// Load reads the configuration from path.
// Returns Default() if the file doesn't exist (no error).
// Returns an error if the file exists but is unreadable or invalid.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enum-valued settings.
func (c Config) Validate() error {
	if err := validateEnum(string(c.DefaultShell), "default_shell", ValidShells); err != nil {
		return err
	}
	return validateEnum(c.Theme, "theme", ValidThemes)
}

// Save writes the configuration to path atomically.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := storage.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Get returns the value of key. ok is false when the key is unset.
func (c Config) Get(key string) (value string, ok bool, err error) {
	switch key {
	case "use_zellij":
		return strconv.FormatBool(c.UseZellij), true, nil
	case "default_shell":
		return string(c.DefaultShell), c.DefaultShell != "", nil
	case "theme":
		return c.Theme, c.Theme != "", nil
	default:
		return "", false, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownKey, key, formatOptions(Keys))
	}
}

// Set parses value and assigns it to key. An empty value unsets
// default_shell and theme.
func (c *Config) Set(key, value string) error {
	switch key {
	case "use_zellij":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid use_zellij %q: must be true or false", value)
		}
		c.UseZellij = b
	case "default_shell":
		if err := validateEnum(value, "default_shell", ValidShells); err != nil {
			return err
		}
		c.DefaultShell = Shell(value)
	case "theme":
		if err := validateEnum(value, "theme", ValidThemes); err != nil {
			return err
		}
		c.Theme = value
	default:
		return fmt.Errorf("%w: %s (valid: %s)", ErrUnknownKey, key, formatOptions(Keys))
	}
	return nil
}
