package linkgroup

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/santikid/clink/pkg/errors"
	"github.com/santikid/clink/pkg/filesystem"
	"github.com/santikid/clink/pkg/logging"
	"github.com/santikid/clink/pkg/types"
)

// Source is one file contributed to a group: a base directory and the file's
// path relative to it.
type Source struct {
	Base string
	File string
}

// Path returns the absolute path of the source file.
func (s Source) Path() string {
	return filepath.Join(s.Base, s.File)
}

// LinkGroup aggregates every source tree deployed into one target directory.
// Each relative path belongs to at most one base directory.
type LinkGroup struct {
	target   string
	sources  []Source
	fs       types.FS
	reporter Reporter
	logger   zerolog.Logger
}

// Option configures a LinkGroup.
type Option func(*LinkGroup)

// WithFS sets the filesystem the group operates on.
func WithFS(fsys types.FS) Option {
	return func(g *LinkGroup) { g.fs = fsys }
}

// WithReporter sets the receiver of progress events.
func WithReporter(r Reporter) Option {
	return func(g *LinkGroup) { g.reporter = r }
}

// New creates an empty group for target.
func New(target string, opts ...Option) *LinkGroup {
	g := &LinkGroup{
		target:   filepath.Clean(target),
		fs:       filesystem.NewOS(),
		reporter: NopReporter{},
		logger:   logging.GetLogger("linkgroup").With().Str("target", target).Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Target returns the directory the group links into.
func (g *LinkGroup) Target() string {
	return g.target
}

// Sources returns a copy of the group's sources.
func (g *LinkGroup) Sources() []Source {
	out := make([]Source, len(g.sources))
	copy(out, g.sources)
	return out
}

// AddSource merges every regular file below dir into the group. If any
// relative path is already claimed by the group, nothing is added and a
// MERGE_CONFLICT error lists the colliding paths.
func (g *LinkGroup) AddSource(dir string) error {
	base, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve source %s", dir)
	}

	files, err := g.regularFiles(base)
	if err != nil {
		return err
	}

	claimed := make(map[string]bool, len(g.sources))
	for _, s := range g.sources {
		claimed[s.File] = true
	}

	var conflicts []string
	for _, f := range files {
		if claimed[f] {
			conflicts = append(conflicts, f)
		}
	}
	if len(conflicts) > 0 {
		g.logger.Debug().Str("source", base).Strs("conflicts", conflicts).Msg("Source conflicts with group")
		return errors.Conflict(errors.ErrMergeConflict, g.target, conflicts).
			WithDetail("source", base)
	}

	for _, f := range files {
		g.sources = append(g.sources, Source{Base: base, File: f})
	}
	g.logger.Debug().Str("source", base).Int("files", len(files)).Msg("Added source")
	return nil
}

// regularFiles lists every regular file below root, relative to root and
// sorted. Directories are descended; symlinks and special files are skipped.
func (g *LinkGroup) regularFiles(root string) ([]string, error) {
	var files []string

	var walk func(rel string) error
	walk = func(rel string) error {
		dir := filepath.Join(root, rel)
		entries, err := g.fs.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read source directory %s", dir)
		}
		for _, entry := range entries {
			child := filepath.Join(rel, entry.Name())
			switch mode := entry.Type(); {
			case mode.IsDir():
				if err := walk(child); err != nil {
					return err
				}
			case mode.IsRegular():
				files = append(files, child)
			case mode&fs.ModeSymlink != 0:
				g.logger.Trace().Str("path", child).Msg("Skipping symlink in source")
			default:
				g.logger.Trace().Str("path", child).Msg("Skipping special file in source")
			}
		}
		return nil
	}

	if err := walk(""); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
