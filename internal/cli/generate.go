package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/artifactitems/pkg/config"
	"github.com/matzehuels/artifactitems/pkg/convert"
	"github.com/matzehuels/artifactitems/pkg/pom"
	"github.com/matzehuels/artifactitems/pkg/render"
)

// generateOpts holds the flags of the root command.
type generateOpts struct {
	listing         listingFlags
	output          string // Output file; empty writes to stdout
	format          string // xml, json or gav
	excludeDeclared string // pom.xml whose artifactItems are skipped
}

// generateCommand creates the conversion command used as the root command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			opts.listing.apply(fs, &cfg)
			if fs.Changed("output") {
				cfg.Output = opts.output
			}
			if fs.Changed("format") {
				cfg.Format = opts.format
			}
			if fs.Changed("exclude-declared") {
				cfg.ExcludeDeclared = opts.excludeDeclared
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runGenerate(cfg)
		},
	}

	opts.listing.register(cmd.Flags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultFormat, "output format: xml, json, gav")
	cmd.Flags().StringVar(&opts.excludeDeclared, "exclude-declared", "", "skip artifacts already declared in this pom.xml")

	return cmd
}

// runGenerate converts the configured listing. The input is opened before the
// output so that a missing input leaves no output file behind.
func (c *CLI) runGenerate(cfg config.Config) error {
	r, err := render.New(cfg.Format)
	if err != nil {
		return err
	}

	convOpts := []convert.Option{convert.WithLogger(c.Logger)}
	if cfg.ExcludeDeclared != "" {
		items, err := pom.ReadFile(cfg.ExcludeDeclared)
		if err != nil {
			return err
		}
		c.Logger.Debug("loaded declared artifact items", "pom", cfg.ExcludeDeclared, "count", len(items))
		convOpts = append(convOpts, convert.WithExclude(pom.Keys(items)))
	}
	conv := convert.New(r, convOpts...)

	prog := newProgress(c.Logger)
	var stats convert.Stats
	err = c.withListing(cfg, func(in io.Reader) (err error) {
		w, closeOut, err := c.openOutput(cfg.Output)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeOut(); err == nil {
				err = cerr
			}
		}()
		stats, err = conv.Convert(in, w)
		return err
	})
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Generated %d artifact items", stats.Written)
	if stats.Excluded > 0 {
		msg += fmt.Sprintf(", %d already declared", stats.Excluded)
	}
	prog.done(msg)

	if cfg.Output != "" && cfg.Output != "-" {
		printSuccess(c.Out, "Wrote %d artifact items", stats.Written)
		printFile(c.Out, cfg.Output)
	}
	return nil
}

// openOutput returns the writer for path; empty or "-" selects Out.
func (c *CLI) openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return c.Out, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
