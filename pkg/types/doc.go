// Package types defines the interfaces shared across clink packages.
// The filesystem interface lives here so that both the link engine and the
// orchestrator can be driven by the OS implementation or a test double.
package types
