package render

import (
	"io"

	"github.com/matzehuels/artifactitems/pkg/coord"
)

// GAV renders "groupId:artifactId:type:version", the form accepted by
// "mvn dependency:get -Dartifact=...".
type GAV struct{}

// Render writes the coordinate line for c.
func (GAV) Render(w io.Writer, c coord.Coordinate) error {
	_, err := io.WriteString(w, c.String()+"\n")
	return err
}
