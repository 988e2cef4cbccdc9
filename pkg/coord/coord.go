package coord

import (
	"errors"
	"strings"

	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
)

// Marker is the relative-path prefix every listing line starts with.
const Marker = "./"

// minSegments is group, artifactId, version and filename.
const minSegments = 4

// Sentinel causes for malformed lines.
var (
	ErrMissingMarker    = errors.New("path does not start with " + Marker)
	ErrTooFewSegments   = errors.New("path needs at least 4 segments: <group>/<artifactId>/<version>/<filename>.<type>")
	ErrMissingExtension = errors.New("filename has no extension")
	ErrEmptySegment     = errors.New("path contains an empty segment")
)

// Coordinate identifies one artifact file in a Maven-layout repository.
//
// A Coordinate is built once by [Parse] and never mutated afterwards.
// GroupPath always has at least one element.
type Coordinate struct {
	GroupPath  []string // Namespace segments, e.g. ["org", "example"]
	ArtifactID string   // e.g. "mylib"
	Version    string   // e.g. "1.0"
	Filename   string   // Leaf filename without extension, e.g. "mylib-1.0"
	Type       string   // Leaf filename extension, e.g. "jar"
}

// GroupID returns the dotted group namespace, e.g. "org.example".
func (c Coordinate) GroupID() string {
	return strings.Join(c.GroupPath, ".")
}

// GroupDir returns the group namespace as a slash-separated path, e.g. "org/example".
func (c Coordinate) GroupDir() string {
	return strings.Join(c.GroupPath, "/")
}

// Dir returns the repository directory holding the artifact,
// e.g. "org/example/mylib/1.0".
func (c Coordinate) Dir() string {
	return c.GroupDir() + "/" + c.ArtifactID + "/" + c.Version
}

// Key returns "groupId:artifactId:version:type", the identity used when
// matching coordinates against declarations that already exist.
func (c Coordinate) Key() string {
	return Key(c.GroupID(), c.ArtifactID, c.Version, c.Type)
}

// String returns the Maven command-line notation "groupId:artifactId:type:version".
func (c Coordinate) String() string {
	return c.GroupID() + ":" + c.ArtifactID + ":" + c.Type + ":" + c.Version
}

// Key builds a coordinate key from its parts. See [Coordinate.Key].
func Key(groupID, artifactID, version, typ string) string {
	return groupID + ":" + artifactID + ":" + version + ":" + typ
}

// Parse decomposes one listing line into a Coordinate.
//
// The line must start with "./" and contain at least four "/"-separated
// segments after it. All but the last three segments form the group path.
// The final segment is split at its last "." into filename and type, so
// "f.tar.gz" has type "gz". A single trailing carriage return is ignored.
func Parse(line string) (Coordinate, error) {
	line = strings.TrimSuffix(line, "\r")

	rest, ok := strings.CutPrefix(line, Marker)
	if !ok {
		return Coordinate{}, malformed(line, ErrMissingMarker)
	}

	segs := strings.Split(rest, "/")
	if len(segs) < minSegments {
		return Coordinate{}, malformed(line, ErrTooFewSegments)
	}
	for _, s := range segs {
		if s == "" {
			return Coordinate{}, malformed(line, ErrEmptySegment)
		}
	}

	leaf := segs[len(segs)-1]
	dot := strings.LastIndexByte(leaf, '.')
	if dot < 0 || dot == len(leaf)-1 {
		return Coordinate{}, malformed(line, ErrMissingExtension)
	}
	if dot == 0 {
		return Coordinate{}, malformed(line, ErrEmptySegment)
	}

	n := len(segs)
	return Coordinate{
		GroupPath:  segs[:n-3:n-3],
		ArtifactID: segs[n-3],
		Version:    segs[n-2],
		Filename:   leaf[:dot],
		Type:       leaf[dot+1:],
	}, nil
}

func malformed(line string, cause error) error {
	return apperrors.Wrap(apperrors.ErrCodeMalformedLine, cause, "%q", line)
}
