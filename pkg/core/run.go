package core

import (
	"github.com/santikid/clink/pkg/errors"
	"github.com/santikid/clink/pkg/linkgroup"
	"github.com/santikid/clink/pkg/logging"
)

// ActionKind selects what a run does to every group.
type ActionKind string

const (
	// ActionLink creates the links for every group
	ActionLink ActionKind = "link"
	// ActionUnlink removes the links every group owns
	ActionUnlink ActionKind = "unlink"
)

// Action is a requested run.
type Action struct {
	Kind ActionKind
	// LeaveOrphans keeps directories emptied by unlink.
	LeaveOrphans bool
}

// Run builds the groups for opts and applies action to each, in order.
// The first error stops the run; groups already processed keep their changes.
func Run(opts Options, action Action) error {
	logger := logging.GetLogger("core.run")
	logger.Info().
		Str("action", string(action.Kind)).
		Str("root", opts.Root).
		Bool("leaveOrphans", action.LeaveOrphans).
		Msg("Starting run")

	if action.Kind != ActionLink && action.Kind != ActionUnlink {
		return errors.Newf(errors.ErrInvalidInput, "unknown action %q", action.Kind)
	}

	groups, err := BuildGroups(opts)
	if err != nil {
		return err
	}

	for _, g := range groups {
		var err error
		switch action.Kind {
		case ActionLink:
			err = g.Link()
		case ActionUnlink:
			err = g.Unlink(action.LeaveOrphans)
		}
		if err != nil {
			logger.Error().Err(err).Str("target", g.Target()).Msg("Run aborted")
			return err
		}
	}

	logger.Info().Int("groups", len(groups)).Msg("Run complete")
	return nil
}

// GroupStatus is the read-only state of one target.
type GroupStatus struct {
	Target  string
	Entries []linkgroup.Entry
}

// Conflicts counts entries in conflict.
func (s GroupStatus) Conflicts() int {
	n := 0
	for _, e := range s.Entries {
		if e.State == linkgroup.StateConflict {
			n++
		}
	}
	return n
}

// Status inspects every group without changing anything.
func Status(opts Options) ([]GroupStatus, error) {
	groups, err := BuildGroups(opts)
	if err != nil {
		return nil, err
	}

	out := make([]GroupStatus, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupStatus{Target: g.Target(), Entries: g.Status()})
	}
	return out, nil
}
