// Package features holds the feature registry and decides which features are
// enabled on the current host.
//
// A feature is a named, conditionally enabled unit: source directories tagged
// with its slug are deployed into its target when its rule holds. Rules form a
// closed set (all, macos, linux, command, none) and are evaluated lazily, one
// feature at a time, so command checks only run for features a directory
// actually references.
//
// The registry is ordered. When a directory advertises several slugs, the
// first enabled feature in registry order governs it.
package features
