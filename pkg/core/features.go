package core

import (
	"github.com/santikid/clink/pkg/paths"
	"github.com/santikid/clink/pkg/slugs"
)

// FeatureStatus describes one registry entry as seen from the root.
type FeatureStatus struct {
	Slug    string `yaml:"slug" toml:"slug" json:"slug"`
	Target  string `yaml:"target" toml:"target" json:"target"`
	Enabled string `yaml:"enabled" toml:"enabled" json:"enabled"`

	// Active is the rule's result on the host.
	Active bool `yaml:"active" toml:"active" json:"active"`

	// Resolved is the expanded target, empty if expansion failed.
	Resolved string `yaml:"resolved,omitempty" toml:"resolved,omitempty" json:"resolved,omitempty"`
	Error    string `yaml:"error,omitempty" toml:"error,omitempty" json:"error,omitempty"`

	// Directories are the marked directories in the root naming this slug.
	Directories []string `yaml:"directories,omitempty" toml:"directories,omitempty" json:"directories,omitempty"`
}

// Features evaluates every feature in registry order. Unlike a run, every
// rule is evaluated, including commands.
func Features(opts Options) ([]FeatureStatus, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	dirs, err := candidates(opts.Root, opts.FS)
	if err != nil {
		return nil, err
	}

	out := make([]FeatureStatus, 0, len(opts.Features))
	for _, f := range opts.Features {
		status := FeatureStatus{
			Slug:    f.Slug,
			Target:  f.Target,
			Enabled: f.Enabled.String(),
			Active:  f.IsEnabled(opts.Host),
		}

		if resolved, err := paths.ExpandTarget(f.Target, opts.Root); err != nil {
			status.Error = err.Error()
		} else {
			status.Resolved = resolved
		}

		for _, d := range dirs {
			if slugs.Contains(d.slugs, f.Slug) {
				status.Directories = append(status.Directories, d.name)
			}
		}
		out = append(out, status)
	}
	return out, nil
}
