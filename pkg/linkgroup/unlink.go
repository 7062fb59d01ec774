package linkgroup

import (
	"io/fs"
	"path/filepath"

	"github.com/santikid/clink/pkg/errors"
	"github.com/santikid/clink/pkg/logging"
	"github.com/santikid/clink/pkg/paths"
)

// Unlink removes every link in the target that points at one of the group's
// sources. Anything else found at a link path (nothing, a regular file, a
// symlink elsewhere) is left untouched.
//
// Unless leaveOrphans is set, directories emptied by a removal are pruned
// walking upward, stopping at the first non-empty directory and never
// touching the target itself or anything outside it.
func (g *LinkGroup) Unlink(leaveOrphans bool) error {
	defer logging.LogOperationStart(g.logger, "unlink")()

	for _, s := range g.sources {
		e := g.inspect(s)
		if e.State != StateLinked {
			g.logger.Debug().
				Str("link", e.Link).
				Str("state", string(e.State)).
				Str("reason", e.Reason).
				Msg("Not owned by this group, skipping")
			continue
		}

		if err := g.fs.Remove(e.Link); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "could not remove link %s", e.Link).
				WithDetail(errors.DetailTarget, g.target)
		}
		g.logger.Info().Str("link", e.Link).Msg("Removed symlink")
		g.reporter.Unlinked(e.Link)

		if leaveOrphans {
			continue
		}
		if err := g.pruneEmptyParents(e.Link); err != nil {
			return err
		}
	}
	return nil
}

// pruneEmptyParents removes empty ancestors of link strictly below the target.
// The walk stops at anything that is not a real directory, so a symlinked
// directory in the target is never removed.
func (g *LinkGroup) pruneEmptyParents(link string) error {
	for dir := filepath.Dir(link); paths.IsWithin(g.target, dir); dir = filepath.Dir(dir) {
		info, err := g.fs.Lstat(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "could not inspect directory %s", dir).
				WithDetail(errors.DetailTarget, g.target)
		}
		if info.Mode()&fs.ModeSymlink != 0 || !info.IsDir() {
			g.logger.Debug().Str("dir", dir).Msg("Not a plain directory, stopping prune")
			return nil
		}

		entries, err := g.fs.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "could not read directory %s", dir).
				WithDetail(errors.DetailTarget, g.target)
		}
		if len(entries) > 0 {
			return nil
		}

		if err := g.fs.Remove(dir); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "could not remove directory %s", dir).
				WithDetail(errors.DetailTarget, g.target)
		}
		g.logger.Info().Str("dir", dir).Msg("Removed empty directory")
		g.reporter.Pruned(dir)
	}
	return nil
}
