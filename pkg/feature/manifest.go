package feature

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed manifests/*.yaml
var manifestFS embed.FS

// CurrentManifest is the manifest version shipped with this library.
const CurrentManifest = "1.0"

// Manifest describes the feature catalog for one protocol release.
type Manifest struct {
	Version     string          `yaml:"version"`
	Description string          `yaml:"description"`
	Features    []FeatureRecord `yaml:"features"`
}

// FeatureRecord is one catalog entry in a manifest.
type FeatureRecord struct {
	ID      uint8  `yaml:"id"`
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// LoadManifest loads an embedded manifest by version string (e.g. "1.0").
func LoadManifest(ver string) (*Manifest, error) {
	data, err := manifestFS.ReadFile("manifests/" + ver + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("manifest version %q not found: %w", ver, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", ver, err)
	}

	return &m, nil
}

// AvailableManifests returns the version strings of all embedded
// manifests, sorted.
func AvailableManifests() ([]string, error) {
	entries, err := manifestFS.ReadDir("manifests")
	if err != nil {
		return nil, fmt.Errorf("reading manifests directory: %w", err)
	}

	var versions []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			versions = append(versions, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// loadManifestCatalog builds a catalog whose version producers return
// the manifest's recorded version strings.
func loadManifestCatalog(ver string) (*Catalog, error) {
	m, err := LoadManifest(ver)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(m.Features))
	for _, rec := range m.Features {
		v := rec.Version // capture per record
		entries = append(entries, Entry{
			ID:      ID(rec.ID),
			Version: func() string { return v },
		})
	}

	return NewCatalog(entries)
}
