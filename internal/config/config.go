// Package config resolves exoplaneteu settings from defaults, an optional
// TOML file and EXOPLANETEU_* environment variables. Command-line flags are
// applied on top by the cli package.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/exoplaneteu/exoplaneteu/pkg/buildinfo"
	"github.com/exoplaneteu/exoplaneteu/pkg/catalog"
	"github.com/exoplaneteu/exoplaneteu/pkg/errors"
	"github.com/exoplaneteu/exoplaneteu/pkg/fetch"
)

const (
	appName  = "exoplaneteu"
	fileName = "config.toml"

	EnvCacheDir   = "EXOPLANETEU_CACHE_DIR"
	EnvURL        = "EXOPLANETEU_URL"
	EnvMaxAgeDays = "EXOPLANETEU_MAX_AGE_DAYS"
	EnvTimeout    = "EXOPLANETEU_TIMEOUT"
)

// Config holds the resolved settings.
type Config struct {
	// CacheDir holds the artifact. Empty means ~/.pyexoplaneteu.
	CacheDir string `toml:"cache_dir"`

	URL        string        `toml:"url"`
	MaxAgeDays float64       `toml:"max_age_days"`
	Timeout    time.Duration `toml:"timeout"` // zero: no timeout
	UserAgent  string        `toml:"user_agent"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		URL:        fetch.DefaultURL,
		MaxAgeDays: catalog.DefaultMaxAgeDays,
		UserAgent:  buildinfo.UserAgent(),
	}
}

// Path returns the config file location: $XDG_CONFIG_HOME/exoplaneteu/config.toml,
// falling back to ~/.config/exoplaneteu/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "resolve home directory")
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load resolves the configuration. An explicit path must exist; when path
// is empty the default location is tried and a missing file is ignored.
// Environment variables override the file.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	if err := cfg.loadFile(path, explicit); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCacheDir); ok && v != "" {
		c.CacheDir = v
	}
	if v, ok := lookup(EnvURL); ok && v != "" {
		c.URL = v
	}
	if v, ok := lookup(EnvMaxAgeDays); ok && v != "" {
		days, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s", EnvMaxAgeDays)
		}
		c.MaxAgeDays = days
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s", EnvTimeout)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks the resolved settings.
func (c Config) Validate() error {
	if c.MaxAgeDays <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max age must be positive, got %g days", c.MaxAgeDays)
	}
	if c.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout cannot be negative")
	}
	return errors.ValidateURL(c.URL)
}

// Policy returns the freshness policy for MaxAgeDays.
func (c Config) Policy() catalog.Policy {
	return catalog.Policy{MaxAgeDays: c.MaxAgeDays}
}
