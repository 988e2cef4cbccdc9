package cli

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/artifactitems/pkg/config"
	"github.com/matzehuels/artifactitems/pkg/convert"
	"github.com/matzehuels/artifactitems/pkg/coord"
	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
	"github.com/matzehuels/artifactitems/pkg/integrations/maven"
	"github.com/matzehuels/artifactitems/pkg/observability"
)

// verifyOpts holds the flags of the verify command.
type verifyOpts struct {
	listing     listingFlags
	baseURL     string
	concurrency int
	noCache     bool
	refresh     bool
	cacheURL    string
}

// verifyResult is the outcome for one listing line.
type verifyResult struct {
	coord coord.Coordinate
	url   string
	found bool
}

// verifyCommand creates the command that checks a listing against a remote repository.
func (c *CLI) verifyCommand() *cobra.Command {
	var opts verifyOpts

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every listed artifact exists in a remote repository",
		Long: `Check, for every line of the listing, that the file the dependency plugin
would download exists in a remote Maven repository (Maven Central by
default). Answers are cached; use --refresh to re-check or --no-cache to
bypass the cache.

The command exits non-zero if any artifact is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			opts.listing.apply(fs, &cfg)
			if fs.Changed("base-url") {
				cfg.Verify.BaseURL = opts.baseURL
			}
			if fs.Changed("concurrency") {
				cfg.Verify.Concurrency = opts.concurrency
			}
			if fs.Changed("cache-url") {
				cfg.Verify.CacheURL = opts.cacheURL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runVerify(cmd.Context(), cfg, opts.noCache, opts.refresh)
		},
	}

	opts.listing.register(cmd.Flags())
	cmd.Flags().StringVar(&opts.baseURL, "base-url", config.DefaultBaseURL, "remote repository root")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", config.DefaultConcurrency, "number of concurrent checks")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached answers and re-check")
	cmd.Flags().StringVar(&opts.cacheURL, "cache-url", "", "Redis URL to cache answers in instead of the local cache directory")

	return cmd
}

func (c *CLI) runVerify(ctx context.Context, cfg config.Config, noCache, refresh bool) error {
	var coords []coord.Coordinate
	err := c.withListing(cfg, func(r io.Reader) error {
		var err error
		coords, err = convert.Collect(r)
		return err
	})
	if err != nil {
		return err
	}

	store, err := c.newCache(ctx, noCache, cfg.Verify.CacheURL)
	if err != nil {
		return err
	}
	defer store.Close()

	client := maven.NewClient(store, cfg.Verify.CacheTTL.Duration, cfg.Verify.BaseURL)

	stats := &verifyStats{logger: c.Logger}
	observability.SetCacheHooks(stats)
	observability.SetHTTPHooks(stats)
	defer observability.Reset()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, c.Err, fmt.Sprintf("Checking %d artifacts...", len(coords)))
	spinner.Start()

	results, err := c.checkAll(ctx, client, coords, cfg.Verify.Concurrency, refresh)
	if err != nil {
		spinner.StopWithError("Verification failed")
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Checked %d artifacts", len(results)))
	prog.done(fmt.Sprintf("Verified %d artifacts against %s (%d requests)",
		len(results), client.BaseURL(), stats.requests.Load()))

	missing := 0
	for _, res := range results {
		if res.found {
			printSuccess(c.Out, "%s", res.coord)
			continue
		}
		missing++
		printError(c.Out, "%s", res.coord)
		printDetail(c.Out, "%s", res.url)
	}
	printCounts(c.Out, len(results)-missing, missing, int(stats.hits.Load()))

	if missing > 0 {
		printWarning(c.Out, "%d of %d artifacts not available at %s", missing, len(results), client.BaseURL())
		return apperrors.New(apperrors.ErrCodeNotFound,
			"%d of %d artifacts not found at %s", missing, len(results), client.BaseURL())
	}
	return nil
}

// checkAll checks coords with at most limit requests in flight. Results are
// in input order. The first failing check cancels the rest.
func (c *CLI) checkAll(ctx context.Context, client *maven.Client, coords []coord.Coordinate, limit int, refresh bool) ([]verifyResult, error) {
	results := make([]verifyResult, len(coords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, a := range coords {
		g.Go(func() error {
			start := time.Now()
			found, err := client.Exists(gctx, a, refresh)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "check %s", a)
			}
			c.Logger.Debug("checked", "coordinate", a.String(), "found", found,
				"elapsed", time.Since(start).Round(time.Millisecond))
			results[i] = verifyResult{coord: a, url: client.ArtifactURL(a), found: found}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// verifyStats counts cache hits and requests made during one verify run.
type verifyStats struct {
	observability.NoopCacheHooks
	logger   *log.Logger
	hits     atomic.Int64
	requests atomic.Int64
}

func (s *verifyStats) OnCacheHit(context.Context, string) { s.hits.Add(1) }

func (s *verifyStats) OnRequest(context.Context, string, string, string) { s.requests.Add(1) }

func (s *verifyStats) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	s.logger.Debug("response", "method", method, "host", host, "path", path,
		"status", status, "elapsed", d.Round(time.Millisecond))
}

func (s *verifyStats) OnError(_ context.Context, method, host, path string, err error) {
	s.logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}
