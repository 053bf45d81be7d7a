package compat

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed "major.minor.patch[-qualifier]" feature version.
// The qualifier is carried verbatim but never interpreted by the
// compatibility algorithm.
type Version struct {
	Major     uint32
	Minor     uint32
	Patch     uint32
	Qualifier string
}

// ParseVersion parses a feature version string. Parsing is best-effort
// and never fails: missing or non-numeric components degrade to 0.
// Rejecting malformed peer text outright would break forwards
// compatibility with unknown future peers, so the verdict logic is left
// to reject a degraded version via the major-mismatch path instead.
func ParseVersion(s string) Version {
	var v Version

	numeric := s
	if i := strings.IndexByte(s, '-'); i >= 0 {
		numeric = s[:i]
		v.Qualifier = s[i+1:]
	}

	parts := strings.Split(numeric, ".")
	if len(parts) > 0 {
		v.Major = parseComponent(parts[0])
	}
	if len(parts) > 1 {
		v.Minor = parseComponent(parts[1])
	}
	if len(parts) > 2 {
		v.Patch = parseComponent(parts[2])
	}

	return v
}

// parseComponent parses one numeric version component, falling back to
// 0 on malformed input.
func parseComponent(s string) uint32 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

// String returns the canonical "major.minor.patch[-qualifier]" form.
func (v Version) String() string {
	if v.Qualifier != "" {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.Qualifier)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
