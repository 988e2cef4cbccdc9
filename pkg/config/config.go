// Package config loads the optional artifactitems TOML configuration file.
//
// No file is read unless one is named explicitly, so a bare invocation keeps
// its fixed behavior. Values from the file fill in options the command line
// left unset.
//
//	input = "files"
//	format = "xml"
//	exclude_declared = "workbench-distro/pom.xml"
//
//	[verify]
//	base_url = "https://repo1.maven.org/maven2"
//	concurrency = 8
//	cache_ttl = "24h"
package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
	"github.com/matzehuels/artifactitems/pkg/render"
)

// Defaults.
const (
	DefaultInput       = "files"
	DefaultFormat      = render.FormatXML
	DefaultBaseURL     = "https://repo1.maven.org/maven2"
	DefaultConcurrency = 8
	DefaultCacheTTL    = 24 * time.Hour
)

// Config mirrors the configuration file.
type Config struct {
	Input           string `toml:"input"`
	Output          string `toml:"output"`
	Format          string `toml:"format"`
	Repository      string `toml:"repository"`
	ExcludeDeclared string `toml:"exclude_declared"`
	Verify          Verify `toml:"verify"`
}

// Verify configures remote availability checks.
type Verify struct {
	BaseURL     string   `toml:"base_url"`
	Concurrency int      `toml:"concurrency"`
	CacheTTL    Duration `toml:"cache_ttl"`
	CacheURL    string   `toml:"cache_url"`
}

// Duration is a time.Duration written as a Go duration string ("24h", "90m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:  DefaultInput,
		Format: DefaultFormat,
		Verify: Verify{
			BaseURL:     DefaultBaseURL,
			Concurrency: DefaultConcurrency,
			CacheTTL:    Duration{DefaultCacheTTL},
		},
	}
}

// Load reads the file at path on top of [Default] and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, apperrors.Wrap(apperrors.ErrCodeMissingInput, err, "config %s", path)
		}
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, apperrors.New(apperrors.ErrCodeInvalidConfig,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses TOML text on top of [Default] without validating it.
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "decode config")
	}
	return cfg, nil
}

// Validate checks option values.
func (c Config) Validate() error {
	if !render.IsFormat(c.Format) {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"unknown format %q (available: %s)", c.Format, strings.Join(render.Formats, ", "))
	}
	if c.Input != "" && c.Input != "-" {
		if err := apperrors.ValidatePath(c.Input); err != nil {
			return err
		}
	}
	if err := apperrors.ValidateURL(c.Verify.BaseURL); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "verify.base_url")
	}
	if c.Verify.Concurrency < 1 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig,
			"verify.concurrency must be at least 1, got %d", c.Verify.Concurrency)
	}
	if c.Verify.CacheTTL.Duration < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "verify.cache_ttl must not be negative")
	}
	if c.Verify.CacheURL != "" {
		if err := apperrors.ValidateCacheURL(c.Verify.CacheURL); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "verify.cache_url")
		}
	}
	return nil
}
