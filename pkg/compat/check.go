package compat

import (
	"strings"

	"github.com/parley-protocol/parley-go/pkg/feature"
)

// IsCompatible reports whether the peer snapshot is compatible with
// this one for the requested feature, accepting any peer version.
func (s Snapshot) IsCompatible(other Snapshot, f feature.ID) bool {
	return s.IsCompatibleRange(other, f, Unbounded())
}

// IsCompatibleRange reports whether the peer snapshot is compatible
// with this one for the requested feature, with the peer's version
// additionally bounded by the acceptable range.
//
// The root feature's majors must match before anything else is
// considered; the root pre-check is unbounded and skips the minor
// comparison, which only applies at the specific-feature level.
func (s Snapshot) IsCompatibleRange(other Snapshot, f feature.ID, acceptable Range) bool {
	return s.isCompatibleRaw(other, feature.Root, Unbounded(), false) &&
		s.isCompatibleRaw(other, f, acceptable, true)
}

func (s Snapshot) isCompatibleRaw(other Snapshot, f feature.ID, acceptable Range, checkMinor bool) bool {
	ours, ok := s.Get(f)
	theirs, otherOK := other.Get(f)
	// A feature either side doesn't know is incompatible; absence is
	// never compatible by omission.
	if !ok || !otherOK {
		return false
	}

	if ours.Major != theirs.Major {
		return false
	}

	if StrictMode() {
		verifyf(acceptable.Contains(ours),
			"acceptable range %s does not contain our own %s version %s", acceptable, f, ours)
	}

	if !acceptable.Contains(theirs) {
		return false
	}

	// Minor bumps mark feature removals, so only an exact minor match
	// is safe when checking a specific feature. The patch component is
	// additive-only and never compared.
	return !checkMinor || ours.Minor == theirs.Minor
}

// CurrentCompatible reports whether a peer snapshot is compatible with
// this process's own snapshot for the requested feature and range.
func CurrentCompatible(other Snapshot, f feature.ID, acceptable Range) bool {
	return Current().IsCompatibleRange(other, f, acceptable)
}

// CurrentCompatibleString parses a peer's wire string and checks it
// against this process's own snapshot. A blank peer string is an
// ordinary incompatibility, not an error; the only error is a
// strict-mode parse failure.
func CurrentCompatibleString(other string, f feature.ID, acceptable Range) (bool, error) {
	if strings.TrimSpace(other) == "" {
		return false, nil
	}
	peer, err := ParseSnapshot(feature.Default(), other)
	if err != nil {
		return false, err
	}
	return CurrentCompatible(peer, f, acceptable), nil
}
