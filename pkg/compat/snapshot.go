package compat

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/parley-protocol/parley-go/pkg/feature"
)

// Separator joins per-feature version strings in the wire format.
const Separator = ";"

// legacySentinel is the literal announcement of releases that predate
// the versioned protocol. They are treated as 1.0.0 across the first
// three catalog features.
const (
	legacySentinel = "yes"
	legacyVersions = "1.0.0" + Separator + "1.0.0" + Separator + "1.0.0"
)

// ErrMissingRoot is returned by ParseSnapshot in strict mode when the
// wire string carries no root version. It indicates a transport bug or
// a corrupted payload; production builds skip the check and fall
// through to "feature absent, therefore incompatible".
var ErrMissingRoot = errors.New("missing root version")

// Snapshot is an immutable mapping from feature to its version,
// representing one endpoint's capabilities at a point in time. A
// feature absent from the mapping is unknown/unsupported by that
// endpoint, never defaulted.
type Snapshot struct {
	catalog  *feature.Catalog
	versions map[feature.ID]Version
}

// NewSnapshot builds a snapshot over the given catalog. The versions
// map is copied; entries for features the catalog does not track are
// dropped.
func NewSnapshot(cat *feature.Catalog, versions map[feature.ID]Version) Snapshot {
	copied := make(map[feature.ID]Version, len(versions))
	for f, v := range versions {
		if cat.Contains(f) {
			copied[f] = v
		}
	}
	return Snapshot{catalog: cat, versions: copied}
}

// ParseSnapshot parses a peer's wire string against the given catalog.
//
// Fewer parts than known features leave the trailing features absent.
// Extra parts beyond the known features are ignored, so a newer peer
// with more tracked features is never rejected here. The only error is
// ErrMissingRoot, and only in strict mode.
func ParseSnapshot(cat *feature.Catalog, s string) (Snapshot, error) {
	if s == legacySentinel {
		s = legacyVersions
	}

	parts := strings.Split(s, Separator)
	if StrictMode() {
		if len(parts) == 0 || strings.TrimSpace(parts[0]) == "" {
			return Snapshot{}, fmt.Errorf("%w in version string %q", ErrMissingRoot, s)
		}
	}

	versions := make(map[feature.ID]Version, len(parts))
	for i, f := range cat.Features() {
		if i >= len(parts) {
			break
		}
		versions[f] = ParseVersion(parts[i])
	}

	return Snapshot{catalog: cat, versions: versions}, nil
}

// currentSnapshot is built lazily exactly once per process; concurrent
// first access yields a single shared instance.
var currentSnapshot = sync.OnceValue(func() Snapshot {
	cat := feature.Default()
	versions := make(map[feature.ID]Version, cat.Len())
	for _, f := range cat.Features() {
		versions[f] = ParseVersion(cat.CurrentVersion(f))
	}
	return Snapshot{catalog: cat, versions: versions}
})

// Current returns this process's own snapshot over the default
// catalog. Every catalog feature is present in it.
func Current() Snapshot {
	return currentSnapshot()
}

// Get returns the version for a feature and whether the snapshot
// defines it.
func (s Snapshot) Get(f feature.ID) (Version, bool) {
	v, ok := s.versions[f]
	return v, ok
}

// Len returns the number of features the snapshot defines.
func (s Snapshot) Len() int {
	return len(s.versions)
}

// Equal reports whether two snapshots define the same per-feature
// versions.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.versions) != len(other.versions) {
		return false
	}
	for f, v := range s.versions {
		ov, ok := other.versions[f]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// String returns the canonical wire form: present feature versions
// joined by the separator in catalog order.
func (s Snapshot) String() string {
	if s.catalog == nil {
		return ""
	}
	parts := make([]string, 0, len(s.versions))
	for _, f := range s.catalog.Features() {
		if v, ok := s.versions[f]; ok {
			parts = append(parts, v.String())
		}
	}
	return strings.Join(parts, Separator)
}
