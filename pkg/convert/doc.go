// Package convert turns a repository listing into rendered declarations.
//
// A [Converter] reads its source one line at a time, parses each line with
// [coord.Parse], and immediately writes the rendered block to the sink. The
// pass is sequential and keeps no state between lines, so output order is
// input order and running it twice on the same input produces the same bytes.
//
// The first malformed line aborts the run with a MALFORMED_LINE error naming
// the line number. Blocks written for earlier lines stay written.
//
//	conv := convert.New(render.XML{})
//	stats, err := conv.ConvertFile("files", os.Stdout)
//
// [coord.Parse]: github.com/matzehuels/artifactitems/pkg/coord.Parse
package convert
