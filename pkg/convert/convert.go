package convert

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/artifactitems/pkg/coord"
	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
	"github.com/matzehuels/artifactitems/pkg/render"
)

// DefaultInput is the listing file read when no input is given.
const DefaultInput = "files"

// maxLineLength bounds a single listing line.
const maxLineLength = 1 << 20

// Stats summarizes one conversion run.
type Stats struct {
	Lines    int // Lines read, including the failing one
	Written  int // Blocks rendered
	Excluded int // Lines skipped because their coordinate was already declared
}

// Option configures a [Converter].
type Option func(*Converter)

// WithLogger attaches a logger for per-line debug output.
func WithLogger(l *log.Logger) Option { return func(c *Converter) { c.logger = l } }

// WithExclude skips coordinates whose [coord.Coordinate.Key] is in keys.
func WithExclude(keys map[string]bool) Option { return func(c *Converter) { c.exclude = keys } }

// Converter renders every line of a listing.
// A Converter holds no per-run state and may be reused.
type Converter struct {
	renderer render.Renderer
	logger   *log.Logger
	exclude  map[string]bool
}

// New creates a Converter writing blocks with r.
func New(r render.Renderer, opts ...Option) *Converter {
	c := &Converter{renderer: r}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertFile converts the listing at path.
//
// If the file cannot be opened, ConvertFile returns a MISSING_INPUT error
// before writing anything. The file is closed on every return path.
func (c *Converter) ConvertFile(path string, w io.Writer) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, apperrors.Wrap(apperrors.ErrCodeMissingInput, err, "open %s", path)
	}
	defer f.Close()
	return c.Convert(f, w)
}

// Convert reads r line by line and writes one block per line to w.
//
// It stops at the first line that does not parse and returns a
// MALFORMED_LINE error; the cause is the coord sentinel for the failure mode.
func (c *Converter) Convert(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	err := scanLines(r, func(n int, a coord.Coordinate) error {
		stats.Lines = n
		if c.exclude[a.Key()] {
			stats.Excluded++
			c.debug("excluded", "line", n, "coordinate", a.String())
			return nil
		}
		if err := c.renderer.Render(w, a); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write line %d", n)
		}
		stats.Written++
		c.debug("rendered", "line", n, "coordinate", a.String())
		return nil
	}, func(n int) { stats.Lines = n })
	return stats, err
}

// Collect parses every line of r with the same rules as [Converter.Convert]
// and returns the coordinates in input order.
func Collect(r io.Reader) ([]coord.Coordinate, error) {
	var out []coord.Coordinate
	err := scanLines(r, func(_ int, a coord.Coordinate) error {
		out = append(out, a)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// scanLines parses r line by line and calls fn for each coordinate.
// onFail, if set, receives the number of the line that stopped the scan.
func scanLines(r io.Reader, fn func(n int, a coord.Coordinate) error, onFail func(n int)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()

		a, err := coord.Parse(line)
		if err != nil {
			if onFail != nil {
				onFail(n)
			}
			return apperrors.Wrap(apperrors.ErrCodeMalformedLine, errors.Unwrap(err), "line %d: %q", n, line)
		}
		if err := fn(n, a); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		if onFail != nil {
			onFail(n + 1)
		}
		return apperrors.Wrap(apperrors.ErrCodeMalformedLine, err, "read line %d", n+1)
	}
	return nil
}

func (c *Converter) debug(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}
