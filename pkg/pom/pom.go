// Package pom reads artifactItem declarations from a Maven build descriptor.
//
// Rerunning the listing procedure after pasting a first batch of
// declarations would emit them again. [ReadArtifactItems] collects every
// <artifactItem> already present in a pom.xml, wherever it appears (plugin
// executions, pluginManagement, profiles), so the converter can skip them.
package pom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/artifactitems/pkg/coord"
	apperrors "github.com/matzehuels/artifactitems/pkg/errors"
)

// defaultType is the dependency plugin's default when <type> is omitted.
const defaultType = "jar"

// ArtifactItem is one declaration found in a pom.xml.
type ArtifactItem struct {
	GroupID         string `xml:"groupId"`
	ArtifactID      string `xml:"artifactId"`
	Version         string `xml:"version"`
	Type            string `xml:"type"`
	Classifier      string `xml:"classifier"`
	OutputDirectory string `xml:"outputDirectory"`
}

// Key returns the coordinate key of the item. See [coord.Key].
func (a ArtifactItem) Key() string {
	return coord.Key(a.GroupID, a.ArtifactID, a.Version, a.Type)
}

// ReadArtifactItems returns every <artifactItem> element in r, in document order.
// Whitespace around values is trimmed and an empty type becomes "jar".
func ReadArtifactItems(r io.Reader) ([]ArtifactItem, error) {
	dec := xml.NewDecoder(r)

	var items []ArtifactItem
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "parse pom")
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "artifactItem" {
			continue
		}

		var item ArtifactItem
		if err := dec.DecodeElement(&item, &start); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "parse artifactItem")
		}
		items = append(items, normalize(item))
	}
	return items, nil
}

// ReadFile reads the artifact items declared in the pom.xml at path.
func ReadFile(path string) ([]ArtifactItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMissingInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadArtifactItems(f)
}

// Keys returns the set of coordinate keys for items.
func Keys(items []ArtifactItem) map[string]bool {
	keys := make(map[string]bool, len(items))
	for _, it := range items {
		keys[it.Key()] = true
	}
	return keys
}

func normalize(a ArtifactItem) ArtifactItem {
	a.GroupID = strings.TrimSpace(a.GroupID)
	a.ArtifactID = strings.TrimSpace(a.ArtifactID)
	a.Version = strings.TrimSpace(a.Version)
	a.Type = strings.TrimSpace(a.Type)
	a.Classifier = strings.TrimSpace(a.Classifier)
	a.OutputDirectory = strings.TrimSpace(a.OutputDirectory)
	if a.Type == "" {
		a.Type = defaultType
	}
	return a
}
