// Package config loads the optional user configuration file. Every load
// failure falls back to defaults so a broken config never blocks the tool.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/markorr321/GraphModuleStatus/internal/gallery"
)

var homedirFunc = homedir.Dir

// Config is the user-tunable configuration.
type Config struct {
	// TrackedModules lists the module names the status command reports on.
	TrackedModules []string `toml:"tracked_modules"`
	// DefaultScope preselects the install scope in the interactive flow.
	DefaultScope string `toml:"default_scope"`
	// Quiet suppresses the update prompt after a status report.
	Quiet bool `toml:"quiet"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TrackedModules: []string{"Microsoft.Graph", "Microsoft.Graph.Beta"},
		DefaultScope:   string(gallery.ScopeAllUsers),
	}
}

// DefaultPath returns the config file location under the user's home.
func DefaultPath() (string, error) {
	home, err := homedirFunc()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "graphmodulestatus", "config.toml"), nil
}

// Load reads the config at path. A missing file returns defaults with a nil
// error; an unreadable or invalid file returns defaults along with the error
// so callers can warn and continue.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Scope maps DefaultScope to a gallery scope, falling back to AllUsers on
// unknown values.
func (c Config) Scope() gallery.Scope {
	if c.DefaultScope == string(gallery.ScopeCurrentUser) {
		return gallery.ScopeCurrentUser
	}
	return gallery.ScopeAllUsers
}
