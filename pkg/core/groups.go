package core

import (
	"os"
	"path/filepath"

	"github.com/santikid/clink/pkg/errors"
	"github.com/santikid/clink/pkg/features"
	"github.com/santikid/clink/pkg/filesystem"
	"github.com/santikid/clink/pkg/linkgroup"
	"github.com/santikid/clink/pkg/logging"
	"github.com/santikid/clink/pkg/paths"
	"github.com/santikid/clink/pkg/slugs"
	"github.com/santikid/clink/pkg/types"
)

// Options contains everything a run needs.
type Options struct {
	// Root is the directory scanned for feature directories. Relative
	// targets are resolved against it. Defaults to the working directory.
	Root string

	Features features.FeatureList

	// Host evaluates enablement rules. The zero value means the running host.
	Host features.Host

	// FS defaults to the OS filesystem.
	FS types.FS

	// Reporter receives progress events. Defaults to silence.
	Reporter linkgroup.Reporter
}

func (o Options) withDefaults() (Options, error) {
	if o.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return o, errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		o.Root = wd
	}
	root, err := filepath.Abs(o.Root)
	if err != nil {
		return o, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", o.Root)
	}
	o.Root = root

	if o.Host.OS == "" && o.Host.RunCommand == nil {
		o.Host = features.CurrentHost()
	}
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Reporter == nil {
		o.Reporter = linkgroup.NopReporter{}
	}
	return o, nil
}

// candidate is a feature directory in the root and the slugs it advertises.
type candidate struct {
	name  string
	slugs []string
}

// candidates lists the directories in root carrying a slug marker, by name.
func candidates(root string, fsys types.FS) ([]candidate, error) {
	logger := logging.GetLogger("core.scan")

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", root)
	}

	var out []candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		set, ok := slugs.Extract(entry.Name())
		if !ok {
			logger.Trace().Str("dir", entry.Name()).Msg("No slug marker, skipping")
			continue
		}
		out = append(out, candidate{name: entry.Name(), slugs: set})
	}
	return out, nil
}

// BuildGroups assembles one link group per resolved target from the
// directories in opts.Root. Groups are returned in the order their targets
// are first seen; directories are visited in name order.
func BuildGroups(opts Options) ([]*linkgroup.LinkGroup, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("core.groups")

	dirs, err := candidates(opts.Root, opts.FS)
	if err != nil {
		return nil, err
	}

	var order []*linkgroup.LinkGroup
	byTarget := make(map[string]*linkgroup.LinkGroup)

	for _, dir := range dirs {
		feature, ok := opts.Features.FirstEnabledMatch(dir.slugs, opts.Host)
		if !ok {
			logger.Debug().Str("dir", dir.name).Strs("slugs", dir.slugs).Msg("No enabled feature, skipping")
			continue
		}

		target, err := paths.ExpandTarget(feature.Target, opts.Root)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "cannot expand target of feature %q", feature.Slug).
				WithDetail("slug", feature.Slug)
		}

		group, seen := byTarget[target]
		if !seen {
			group = linkgroup.New(target,
				linkgroup.WithFS(opts.FS),
				linkgroup.WithReporter(opts.Reporter))
			byTarget[target] = group
			order = append(order, group)
		}

		if err := group.AddSource(filepath.Join(opts.Root, dir.name)); err != nil {
			return nil, err
		}
		logger.Debug().
			Str("dir", dir.name).
			Str("feature", feature.Slug).
			Str("target", target).
			Msg("Directory assigned to target")
	}

	return order, nil
}
