package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/kennyg/bm/internal/bookmark"
)

// Layout under the user's home directory:
// Bookmarks: ~/.cache/bm-bookmark
// Config:    ~/.config/bm/config.yaml (optional)

// Paths holds the various paths bm uses
type Paths struct {
	// Home is the user's home directory
	Home string

	// ConfigFile is ~/.config/bm/config.yaml
	ConfigFile string

	// StorageFile is ~/.cache/bm-bookmark
	StorageFile string
}

// Config is the optional user configuration
type Config struct {
	// Storage overrides the bookmark file location; ~ expands to Home
	Storage string `yaml:"storage"`

	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Storage, validation.When(c.Storage != "", validation.By(notBlank))),
		validation.Field(&c.LogLevel, validation.In(slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError)),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{LogLevel: slog.LevelWarn}
}

// GetPaths returns the standard paths for bm
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return PathsForHome(home), nil
}

// PathsForHome returns the standard paths rooted at home
func PathsForHome(home string) *Paths {
	return &Paths{
		Home:        home,
		ConfigFile:  filepath.Join(home, ".config", bookmark.ConfigDir, bookmark.ConfigFile),
		StorageFile: filepath.Join(home, filepath.FromSlash(bookmark.StorageFile)),
	}
}

// Load reads the config file at path.
// A missing file yields Default(); a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// StoragePath picks the bookmark file: override first, then the config
// file's storage setting, then the default location.
func (p *Paths) StoragePath(cfg *Config, override string) string {
	switch {
	case override != "":
		return ExpandHome(override, p.Home)
	case cfg != nil && cfg.Storage != "":
		return ExpandHome(cfg.Storage, p.Home)
	default:
		return p.StorageFile
	}
}

// ExpandHome replaces a leading ~ with home
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
