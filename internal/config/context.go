package config

import (
	"context"
	"os"

	"github.com/raphi011/spm/internal/history"
	"github.com/raphi011/spm/internal/registry"
	"github.com/raphi011/spm/internal/storage"
)

type configKey struct{}
type pathsKey struct{}

// Paths locates the files spm reads and writes.
type Paths struct {
	ConfigDir string
}

// ProjectsFile returns the registry document path.
func (p Paths) ProjectsFile() string {
	return registry.Path(p.ConfigDir)
}

// HistoryFile returns the pick history path.
func (p Paths) HistoryFile() string {
	return history.Path(p.ConfigDir)
}

// ConfigFile returns the configuration file path.
func (p Paths) ConfigFile() string {
	return Path(p.ConfigDir)
}

// WithConfig returns a new context with cfg stored in it.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the Config from context, or nil if none is stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

// WithPaths returns a new context with p stored in it.
func WithPaths(ctx context.Context, p Paths) context.Context {
	return context.WithValue(ctx, pathsKey{}, p)
}

// PathsFromContext returns the Paths from context. Without stored paths the
// config directory is derived from the process environment.
func PathsFromContext(ctx context.Context) Paths {
	if p, ok := ctx.Value(pathsKey{}).(Paths); ok && p.ConfigDir != "" {
		return p
	}
	return Paths{ConfigDir: storage.ConfigDir(os.Getenv)}
}
