// Package pkg provides the core libraries for artifactitems.
//
// # Overview
//
// artifactitems turns a listing of files in a Maven repository layout into
// <artifactItem> declarations for the maven-dependency-plugin. The pkg
// directory is organized into these areas:
//
//  1. [coord] - Parsing listing lines into Maven coordinates
//  2. [render] and [convert] - Writing declarations line by line
//  3. [repository] and [pom] - Producing listings and reading existing declarations
//  4. [integrations] - Checking artifacts against remote repositories
//  5. [cache], [httputil], [observability] - Infrastructure for remote checks
//  6. [config], [errors], [buildinfo] - Configuration, coded errors and version data
//
// # Data Flow
//
//	find . -type f  (or [repository.Scan])
//	         ↓
//	    [coord.Parse] (one Coordinate per line)
//	         ↓
//	    [render.Renderer] (XML, JSON or GAV)
//	         ↓
//	    stdout
//
// # Quick Start
//
//	r, _ := render.New(render.FormatXML)
//	stats, err := convert.New(r).ConvertFile(convert.DefaultInput, os.Stdout)
//
// [coord]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/coord
// [render]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/render
// [convert]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/convert
// [repository]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/repository
// [pom]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/pom
// [integrations]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/integrations
// [cache]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/observability
// [config]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/buildinfo
// [repository.Scan]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/repository#Scan
// [coord.Parse]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/coord#Parse
// [render.Renderer]: https://pkg.go.dev/github.com/matzehuels/artifactitems/pkg/render#Renderer
package pkg
