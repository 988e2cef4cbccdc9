// Package render writes parsed coordinates as text declarations.
//
// # Overview
//
// A [Renderer] writes one block per [coord.Coordinate], followed by a newline,
// directly to the sink. Nothing is buffered between calls, so output order is
// the order of the calls.
//
// Available formats:
//   - [FormatXML]: an <artifactItem> element for maven-dependency-plugin
//   - [FormatJSON]: one JSON object per line
//   - [FormatGAV]: "groupId:artifactId:type:version" per line
//
// # Usage
//
//	r, err := render.New(render.FormatXML)
//	if err != nil {
//	    return err
//	}
//	c, _ := coord.Parse("./org/example/mylib/1.0/mylib-1.0.jar")
//	_ = r.Render(os.Stdout, c)
//
// # Output Directory
//
// The XML and JSON outputs carry an output directory of the form
//
//	${project.build.directory}/repository/<group-path>/<artifactId>/<version>
//
// The ${project.build.directory} token is written literally; Maven expands it
// when the declaration is pasted into a pom.xml.
//
// [coord.Coordinate]: github.com/matzehuels/artifactitems/pkg/coord.Coordinate
package render
