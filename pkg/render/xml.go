package render

import (
	"io"
	"text/template"

	"github.com/matzehuels/artifactitems/pkg/coord"
)

// artifactItemTemplate is indented to sit inside
// <plugin><executions><execution><configuration><artifactItems>.
// Values are inserted verbatim, without XML escaping.
const artifactItemTemplate = `                                <artifactItem>
                                    <groupId>{{.GroupID}}</groupId>
                                    <artifactId>{{.ArtifactID}}</artifactId>
                                    <version>{{.Version}}</version>
                                    <type>{{.Type}}</type>
                                    <outputDirectory>{{.OutputDirectory}}</outputDirectory>
                                </artifactItem>
`

var artifactItem = template.Must(template.New("artifactItem").Parse(artifactItemTemplate))

// XML renders <artifactItem> elements for the maven-dependency-plugin.
type XML struct{}

type artifactItemData struct {
	GroupID         string
	ArtifactID      string
	Version         string
	Type            string
	OutputDirectory string
}

// Render writes the <artifactItem> block for c followed by a newline.
func (XML) Render(w io.Writer, c coord.Coordinate) error {
	return artifactItem.Execute(w, artifactItemData{
		GroupID:         c.GroupID(),
		ArtifactID:      c.ArtifactID,
		Version:         c.Version,
		Type:            c.Type,
		OutputDirectory: OutputDirectory(c),
	})
}
