package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/artifactitems/pkg/buildinfo"
	"github.com/matzehuels/artifactitems/pkg/cache"
	"github.com/matzehuels/artifactitems/pkg/config"
	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
	"github.com/matzehuels/artifactitems/pkg/repository"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "artifactitems"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// In is read when the input is "-".
	In io.Reader
	// Out receives generated output and command reports.
	Out io.Writer
	// Err receives progress indicators.
	Err io.Writer

	configPath string
}

// New creates a new CLI instance whose logger and progress output go to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without arguments, the root command converts ./files to XML on stdout.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.generateCommand()
	root.Use = appName
	root.Short = "Generate Maven <artifactItem> declarations from a repository listing"
	root.Long = `artifactitems reads a listing of files in a Maven repository layout, as
produced by "find . -type f" at the repository root, and prints one
maven-dependency-plugin <artifactItem> block per file.

By default it reads ./files and writes XML to stdout.`
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML configuration file")

	root.AddCommand(c.scanCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig returns the built-in defaults, overlaid with the --config file
// when one was given. Flags are applied by each command afterwards.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("loaded configuration", "path", c.configPath)
	return cfg, nil
}

// listingFlags selects where the listing comes from.
type listingFlags struct {
	input      string // Listing file; "-" reads stdin
	repository string // Directory to scan instead of reading a listing
}

func (f *listingFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.input, "input", "i", config.DefaultInput, `listing file ("-" reads stdin)`)
	fs.StringVarP(&f.repository, "repository", "r", "", "scan this repository directory instead of reading a listing")
}

// apply copies explicitly set flags over cfg.
func (f *listingFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("repository") {
		cfg.Repository = f.repository
	}
}

// withListing calls fn with the listing selected by cfg: a repository scan,
// stdin, or the input file. The input file is closed when fn returns.
func (c *CLI) withListing(cfg config.Config, fn func(io.Reader) error) error {
	switch {
	case cfg.Repository != "":
		paths, err := repository.Scan(cfg.Repository, repository.Options{})
		if err != nil {
			return err
		}
		c.Logger.Debug("scanned repository", "root", cfg.Repository, "files", len(paths))
		return fn(repository.Reader(paths))
	case cfg.Input == "-":
		return fn(c.In)
	default:
		f, err := os.Open(cfg.Input)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeMissingInput, err, "open %s", cfg.Input)
		}
		defer f.Close()
		return fn(f)
	}
}

// =============================================================================
// Cache
// =============================================================================

// newCache selects the verification cache: none, Redis at url, or the file
// cache in the user's cache directory.
func (c *CLI) newCache(ctx context.Context, noCache bool, url string) (cache.Cache, error) {
	switch {
	case noCache:
		return cache.NewNullCache(), nil
	case url != "":
		rc, err := cache.NewRedisCache(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("connect cache: %w", err)
		}
		c.Logger.Debug("using redis cache", "url", url)
		return rc, nil
	}

	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("using file cache", "dir", dir)
	return fc, nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/artifactitems/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
