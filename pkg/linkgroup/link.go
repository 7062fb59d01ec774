package linkgroup

import (
	"os"
	"path/filepath"

	"github.com/santikid/clink/pkg/errors"
	"github.com/santikid/clink/pkg/logging"
)

// Link creates a symlink in the target for every source.
//
// All link paths are inspected first. If any of them is occupied by a
// non-symlink, by a symlink to somewhere else, or cannot be inspected, a
// TARGET_CONFLICT error lists them and nothing is created. Links that are
// already correct are left alone. Any failure while creating directories or
// links aborts the run.
func (g *LinkGroup) Link() error {
	defer logging.LogOperationStart(g.logger, "link")()

	entries, conflicts := g.conflicts()
	if len(conflicts) > 0 {
		return errors.Conflict(errors.ErrTargetConflict, g.target, conflicts)
	}

	for _, e := range entries {
		source := e.Source.Path()

		if e.State == StateLinked {
			g.reporter.AlreadyLinked(source, e.Link)
			continue
		}

		parent := filepath.Dir(e.Link)
		if err := g.fs.MkdirAll(parent, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "could not create parent tree for link %s", e.Link).
				WithDetail(errors.DetailTarget, g.target)
		}

		if err := g.fs.Symlink(source, e.Link); err != nil {
			if os.IsExist(err) {
				g.logger.Debug().Str("link", e.Link).Msg("Link appeared concurrently, leaving it")
				continue
			}
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "could not link %s to %s", source, e.Link).
				WithDetail(errors.DetailTarget, g.target)
		}

		g.logger.Info().Str("source", source).Str("link", e.Link).Msg("Created symlink")
		g.reporter.Linked(source, e.Link)
	}
	return nil
}
