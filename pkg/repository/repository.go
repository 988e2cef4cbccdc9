// Package repository lists the files of a local Maven-layout repository.
//
// [Scan] produces the same listing as running "find -type f" at the
// repository root, sorted and with bookkeeping files (checksums, signatures,
// resolver metadata) removed unless [Options.All] is set. The listing feeds
// the converter directly through [Reader].
package repository

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/artifactitems/pkg/coord"
	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
)

// Options controls which files [Scan] reports.
type Options struct {
	All bool // Keep bookkeeping files
}

var bookkeepingSuffixes = []string{
	".sha1", ".md5", ".sha256", ".sha512", ".asc", ".lastUpdated",
}

var bookkeepingNames = map[string]bool{
	"_remote.repositories":       true,
	"_maven.repositories":        true,
	"resolver-status.properties": true,
}

// IsBookkeeping reports whether name is a repository bookkeeping file rather
// than an artifact.
func IsBookkeeping(name string) bool {
	if bookkeepingNames[name] {
		return true
	}
	if strings.HasPrefix(name, "maven-metadata") && strings.HasSuffix(name, ".xml") {
		return true
	}
	for _, s := range bookkeepingSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// Scan walks root and returns every regular file as a "./"-prefixed,
// "/"-separated path relative to root, sorted lexically.
//
// A missing or unreadable root is reported as MISSING_INPUT.
func Scan(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMissingInput, err, "repository %s", root)
	}
	if !info.IsDir() {
		return nil, apperrors.New(apperrors.ErrCodeMissingInput, "repository %s is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !opts.All && IsBookkeeping(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		paths = append(paths, coord.Marker+path.Clean(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMissingInput, err, "scan %s", root)
	}

	sort.Strings(paths)
	return paths, nil
}

// Reader returns the listing as newline-terminated lines.
func Reader(paths []string) io.Reader {
	if len(paths) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(paths, "\n") + "\n")
}
