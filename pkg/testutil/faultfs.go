package testutil

import (
	"io/fs"

	"github.com/santikid/clink/pkg/filesystem"
	"github.com/santikid/clink/pkg/types"
)

// FaultFS wraps a types.FS and fails selected operations on selected paths.
// Faults are keyed by operation name ("Lstat", "Symlink", "MkdirAll",
// "Remove", "ReadDir", "Readlink") and exact path.
type FaultFS struct {
	types.FS
	faults map[string]map[string]error
	// Calls counts mutating operations that reached the wrapped FS.
	Calls map[string]int
}

// NewFaultFS wraps the OS filesystem.
func NewFaultFS() *FaultFS {
	return &FaultFS{
		FS:     filesystem.NewOS(),
		faults: make(map[string]map[string]error),
		Calls:  make(map[string]int),
	}
}

// Fail makes op on path return err.
func (f *FaultFS) Fail(op, path string, err error) *FaultFS {
	if f.faults[op] == nil {
		f.faults[op] = make(map[string]error)
	}
	f.faults[op][path] = err
	return f
}

func (f *FaultFS) fault(op, path string) error {
	return f.faults[op][path]
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.fault("Lstat", name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultFS) Readlink(name string) (string, error) {
	if err := f.fault("Readlink", name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault("ReadDir", name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.fault("MkdirAll", path); err != nil {
		return err
	}
	f.Calls["MkdirAll"]++
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if err := f.fault("Symlink", newname); err != nil {
		return err
	}
	f.Calls["Symlink"]++
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultFS) Remove(name string) error {
	if err := f.fault("Remove", name); err != nil {
		return err
	}
	f.Calls["Remove"]++
	return f.FS.Remove(name)
}

var _ types.FS = (*FaultFS)(nil)
