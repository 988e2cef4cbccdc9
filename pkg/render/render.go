package render

import (
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/artifactitems/pkg/coord"
	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
)

// Output format identifiers.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
	FormatGAV  = "gav"
)

// BuildDirToken is the Maven property left unexpanded in output directories.
const BuildDirToken = "${project.build.directory}"

// Formats lists the supported format identifiers.
var Formats = []string{FormatXML, FormatJSON, FormatGAV}

// Renderer writes one declaration block for a coordinate.
type Renderer interface {
	Render(w io.Writer, c coord.Coordinate) error
}

// New returns the renderer for format.
// An empty format selects [FormatXML].
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatXML:
		return XML{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatGAV:
		return GAV{}, nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
			"unknown format %q (available: %s)", format, strings.Join(Formats, ", "))
	}
}

// IsFormat reports whether format names a supported renderer.
func IsFormat(format string) bool {
	return format == "" || slices.Contains(Formats, strings.ToLower(format))
}

// OutputDirectory returns the directory the dependency plugin copies c into.
func OutputDirectory(c coord.Coordinate) string {
	return BuildDirToken + "/repository/" + c.Dir()
}
