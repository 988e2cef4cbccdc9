package render

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/artifactitems/pkg/coord"
)

// JSON renders one JSON object per line.
type JSON struct{}

type jsonItem struct {
	GroupID         string `json:"groupId"`
	ArtifactID      string `json:"artifactId"`
	Version         string `json:"version"`
	Type            string `json:"type"`
	OutputDirectory string `json:"outputDirectory"`
}

// Render writes c as a single-line JSON object followed by a newline.
func (JSON) Render(w io.Writer, c coord.Coordinate) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonItem{
		GroupID:         c.GroupID(),
		ArtifactID:      c.ArtifactID,
		Version:         c.Version,
		Type:            c.Type,
		OutputDirectory: OutputDirectory(c),
	})
}
