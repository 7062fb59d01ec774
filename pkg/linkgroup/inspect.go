package linkgroup

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// State classifies what occupies a source's slot in the target tree.
type State string

const (
	// StateMissing means nothing exists at the link path.
	StateMissing State = "missing"
	// StateLinked means a symlink to the expected source exists.
	StateLinked State = "linked"
	// StateConflict means something the group does not own is in the way.
	StateConflict State = "conflict"
)

// Entry is the inspection result for one source.
type Entry struct {
	Source Source
	Link   string
	State  State
	// Reason explains a conflict.
	Reason string
}

// LinkPath returns where the symlink for s lives.
func (g *LinkGroup) LinkPath(s Source) string {
	return filepath.Join(g.target, s.File)
}

// inspect examines the link path for s without following a final symlink.
func (g *LinkGroup) inspect(s Source) Entry {
	link := g.LinkPath(s)
	entry := Entry{Source: s, Link: link}

	info, err := g.fs.Lstat(link)
	switch {
	case os.IsNotExist(err):
		entry.State = StateMissing
		return entry
	case err != nil:
		entry.State = StateConflict
		entry.Reason = err.Error()
		return entry
	case info.Mode()&fs.ModeSymlink == 0:
		entry.State = StateConflict
		entry.Reason = fmt.Sprintf("%s exists and is not a symlink", describeMode(info.Mode()))
		return entry
	}

	dest, err := g.fs.Readlink(link)
	if err != nil {
		entry.State = StateConflict
		entry.Reason = err.Error()
		return entry
	}
	if resolveLinkDest(link, dest) != filepath.Clean(s.Path()) {
		entry.State = StateConflict
		entry.Reason = fmt.Sprintf("symlink points to %s", dest)
		return entry
	}

	entry.State = StateLinked
	return entry
}

// resolveLinkDest anchors a relative link text at the link's directory.
func resolveLinkDest(link, dest string) string {
	if filepath.IsAbs(dest) {
		return filepath.Clean(dest)
	}
	return filepath.Join(filepath.Dir(link), dest)
}

func describeMode(mode fs.FileMode) string {
	switch {
	case mode.IsDir():
		return "directory"
	case mode.IsRegular():
		return "file"
	default:
		return "special file"
	}
}

// Status inspects every source's link path without modifying anything.
func (g *LinkGroup) Status() []Entry {
	entries := make([]Entry, 0, len(g.sources))
	for _, s := range g.sources {
		entries = append(entries, g.inspect(s))
	}
	return entries
}

// conflicts returns the inspections and the relative paths in conflict.
func (g *LinkGroup) conflicts() ([]Entry, []string) {
	entries := g.Status()
	var conflicts []string
	for _, e := range entries {
		if e.State == StateConflict {
			g.logger.Debug().Str("file", e.Source.File).Str("reason", e.Reason).Msg("Target conflict")
			conflicts = append(conflicts, e.Source.File)
		}
	}
	return entries, conflicts
}
