// Package feature defines the closed, ordered enumeration of
// independently-versioned protocol features and the catalog that maps
// each feature to the locally-running version.
//
// The enumeration order is significant: wire-format positions map to
// catalog order, and the first feature is always Root. Root gates all
// other features -- if two endpoints disagree on the Root major
// version, nothing else is compatible.
//
// Hosts normally use the default catalog, which is built from an
// embedded manifest. Hosts that track live feature versions can build
// a custom catalog with NewCatalog and per-feature version producers.
package feature
