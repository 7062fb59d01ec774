// Package testutil provides utilities for testing clink components.
//
// Key components:
//   - FileTree / CreateFileTree: declarative source and target tree setup
//   - Symlink and path assertions for checking link results on disk
//   - Recorder: a linkgroup.Reporter that captures progress events
//   - FaultFS: a types.FS wrapper that injects errors for chosen operations
//
// Usage guidelines:
//   - Tests run against the real filesystem inside t.TempDir(); symlink
//     semantics are the point of the code under test
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
