package compat

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Range bounds which peer versions a caller accepts for a given check,
// independent of the major/minor equality rules. The zero value is
// unbounded (accepts anything >= 0).
type Range struct {
	constraints goversion.Constraints
	expr        string
}

// NewRange parses a range expression, e.g. ">= 1.2" or ">= 2.0, < 3.0".
func NewRange(expr string) (Range, error) {
	constraints, err := goversion.NewConstraint(expr)
	if err != nil {
		return Range{}, fmt.Errorf("invalid version range %q: %w", expr, err)
	}
	return Range{constraints: constraints, expr: expr}, nil
}

// Unbounded returns the range accepting any version >= 0.
func Unbounded() Range {
	return Range{}
}

// Contains reports whether the version falls inside the range. Only the
// numeric components participate; the qualifier is informational.
func (r Range) Contains(v Version) bool {
	if len(r.constraints) == 0 {
		return true
	}
	parsed := goversion.Must(goversion.NewVersion(
		fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)))
	return r.constraints.Check(parsed)
}

// String returns the range expression.
func (r Range) String() string {
	if r.expr == "" {
		return ">= 0"
	}
	return r.expr
}
