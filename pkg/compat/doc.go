// Package compat implements the partitioned compatibility-version
// model two endpoints use to decide whether they are feature-compatible
// before interoperating.
//
// # Wire format
//
// A compatibility snapshot serializes to the per-feature version
// strings joined by ';' in catalog order, e.g. "1.2.0;0.3.1;2.0.0-beta".
// Each feature version is "major.minor.patch" with an optional "-text"
// qualifier. The version components follow asymmetric rules:
//
//   - major: breaking-change boundary; only identical majors interoperate.
//   - minor: incremented for feature removals; a specific feature is only
//     compatible when minors match exactly. The root pre-check skips the
//     minor comparison.
//   - patch: incremented for additive changes; never compared.
//
// A receiver must accept any number of feature parts, even more than it
// knows about; extra parts are ignored (forwards compatibility with
// newer peers). Fewer parts than known features leave the trailing
// features absent, and absence is always incompatible.
//
// # Legacy peers
//
// Releases that predate the versioned protocol announce the literal
// string "yes". It is treated as "1.0.0" for the first three catalog
// features.
//
// # Strict mode
//
// SetStrictMode(true) enables assertion-style checks meant for
// development and test builds: a missing root version becomes a parse
// error, and a caller whose own version falls outside its declared
// acceptable range panics. Production builds leave strict mode off and
// fail open on the checks, never on the verdict logic.
package compat
