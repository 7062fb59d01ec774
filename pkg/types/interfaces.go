package types

import (
	"io/fs"
)

// FS is the filesystem interface required for clink operations.
// Link groups and the orchestrator never touch the disk except through it.
type FS interface {
	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Remove deletes a single file, symlink or empty directory.
	Remove(name string) error

	// Lstat must not follow a final symlink.
	Lstat(name string) (fs.FileInfo, error)
}
