// Package filesystem provides filesystem implementations for clink.
//
// This package contains implementations of the types.FS interface. Only the
// OS filesystem is provided: link management depends on real symlink
// semantics (Lstat, Readlink) that in-memory filesystems do not model.
package filesystem
