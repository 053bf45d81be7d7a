package feature

import (
	"errors"
	"fmt"
	"sync"
)

// Catalog errors.
var (
	ErrEmptyCatalog = errors.New("catalog must contain at least one feature")
	ErrRootNotFirst = errors.New("first catalog feature must be Root")
)

// VersionFunc produces the locally-running version string for a
// feature. It is called once per process, during current-snapshot
// construction.
type VersionFunc func() string

// Entry pairs a feature with its version producer.
type Entry struct {
	ID      ID
	Version VersionFunc
}

// Catalog is an ordered, non-empty enumeration of features with their
// version producers. The first entry is always Root. Catalogs are
// immutable after construction and safe for concurrent use.
type Catalog struct {
	ids       []ID
	producers map[ID]VersionFunc
}

// NewCatalog builds a catalog from ordered entries. The entry order
// defines wire-format positions.
func NewCatalog(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	if entries[0].ID != Root {
		return nil, fmt.Errorf("%w: got %s", ErrRootNotFirst, entries[0].ID)
	}

	ids := make([]ID, 0, len(entries))
	producers := make(map[ID]VersionFunc, len(entries))
	for _, e := range entries {
		if _, dup := producers[e.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog feature %s", e.ID)
		}
		if e.Version == nil {
			return nil, fmt.Errorf("feature %s has no version producer", e.ID)
		}
		ids = append(ids, e.ID)
		producers[e.ID] = e.Version
	}

	return &Catalog{ids: ids, producers: producers}, nil
}

// Features returns the feature IDs in catalog order. The returned
// slice must not be modified.
func (c *Catalog) Features() []ID {
	return c.ids
}

// Len returns the number of features in the catalog.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Contains reports whether the catalog tracks the given feature.
func (c *Catalog) Contains(f ID) bool {
	_, ok := c.producers[f]
	return ok
}

// CurrentVersion returns the locally-running version string for a
// feature, or "" if the catalog does not track it.
func (c *Catalog) CurrentVersion(f ID) string {
	producer, ok := c.producers[f]
	if !ok {
		return ""
	}
	return producer()
}

// defaultCatalog builds the catalog from the embedded manifest.
// The manifest is a build asset; failure to load it is a packaging
// bug, so first access panics rather than returning an error.
var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := loadManifestCatalog(CurrentManifest)
	if err != nil {
		panic(fmt.Sprintf("loading embedded feature manifest: %v", err))
	}
	return c
})

// Default returns the catalog described by the embedded manifest for
// the current protocol version. The catalog is built once and shared.
func Default() *Catalog {
	return defaultCatalog()
}
