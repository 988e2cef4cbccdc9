package coord

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Coordinate
	}{
		{
			name: "minimum shape",
			line: "./g/a/v/f.t",
			want: Coordinate{GroupPath: []string{"g"}, ArtifactID: "a", Version: "v", Filename: "f", Type: "t"},
		},
		{
			name: "two group segments",
			line: "./org/example/mylib/1.0/mylib-1.0.jar",
			want: Coordinate{GroupPath: []string{"org", "example"}, ArtifactID: "mylib", Version: "1.0", Filename: "mylib-1.0", Type: "jar"},
		},
		{
			name: "deep group",
			line: "./net/sf/taverna/t2/core/workflowmodel-api/1.2/workflowmodel-api-1.2.pom",
			want: Coordinate{GroupPath: []string{"net", "sf", "taverna", "t2", "core"}, ArtifactID: "workflowmodel-api", Version: "1.2", Filename: "workflowmodel-api-1.2", Type: "pom"},
		},
		{
			name: "multiple dots split at last",
			line: "./g/a/v/f.tar.gz",
			want: Coordinate{GroupPath: []string{"g"}, ArtifactID: "a", Version: "v", Filename: "f.tar", Type: "gz"},
		},
		{
			name: "classifier in filename",
			line: "./org/example/mylib/1.0/mylib-1.0-sources.jar",
			want: Coordinate{GroupPath: []string{"org", "example"}, ArtifactID: "mylib", Version: "1.0", Filename: "mylib-1.0-sources", Type: "jar"},
		},
		{
			name: "carriage return stripped",
			line: "./g/a/v/f.jar\r",
			want: Coordinate{GroupPath: []string{"g"}, ArtifactID: "a", Version: "v", Filename: "f", Type: "jar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		cause error
	}{
		{"no marker", "org/example/mylib/1.0/mylib-1.0.jar", ErrMissingMarker},
		{"absolute path", "/org/example/mylib/1.0/mylib-1.0.jar", ErrMissingMarker},
		{"empty line", "", ErrMissingMarker},
		{"three segments", "./a/v/f.jar", ErrTooFewSegments},
		{"only marker", "./", ErrTooFewSegments},
		{"no extension", "./g/a/v/README", ErrMissingExtension},
		{"trailing dot", "./g/a/v/f.", ErrMissingExtension},
		{"double slash", "./g//a/v/f.jar", ErrEmptySegment},
		{"trailing slash", "./g/a/v/f.jar/", ErrEmptySegment},
		{"hidden file", "./g/a/v/.jar", ErrEmptySegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.line)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("Parse(%q) error = %v, want cause %v", tt.line, err, tt.cause)
			}
			if !apperrors.Is(err, apperrors.ErrCodeMalformedLine) {
				t.Errorf("Parse(%q) code = %v, want %v", tt.line, apperrors.GetCode(err), apperrors.ErrCodeMalformedLine)
			}
		})
	}
}

func TestCoordinateViews(t *testing.T) {
	c, err := Parse("./org/example/mylib/1.0/mylib-1.0.jar")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"GroupID", c.GroupID(), "org.example"},
		{"GroupDir", c.GroupDir(), "org/example"},
		{"Dir", c.Dir(), "org/example/mylib/1.0"},
		{"Key", c.Key(), "org.example:mylib:1.0:jar"},
		{"String", c.String(), "org.example:mylib:jar:1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}
