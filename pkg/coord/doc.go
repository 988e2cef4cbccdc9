// Package coord parses repository-relative file paths into Maven coordinates.
//
// # Overview
//
// A local Maven repository stores every artifact at
//
//	<group-as-path>/<artifactId>/<version>/<filename>.<type>
//
// Listing such a repository with "find -type f" yields lines like
//
//	./org/example/mylib/1.0/mylib-1.0.jar
//
// [Parse] turns one such line into a [Coordinate]:
//
//	c, err := coord.Parse("./org/example/mylib/1.0/mylib-1.0.jar")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.GroupID())  // org.example
//	fmt.Println(c.GroupDir()) // org/example
//	fmt.Println(c.Type)       // jar
//
// # Failure Modes
//
// Every parse failure is an [errors.Error] with code MALFORMED_LINE whose
// cause is one of [ErrMissingMarker], [ErrTooFewSegments],
// [ErrMissingExtension] or [ErrEmptySegment], so callers can distinguish them
// with the standard errors.Is.
//
// [errors.Error]: github.com/matzehuels/artifactitems/pkg/errors.Error
package coord
