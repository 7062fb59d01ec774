package features

import (
	"strings"

	"github.com/santikid/clink/pkg/errors"
	"github.com/santikid/clink/pkg/slugs"
)

// Feature ties a slug to a target template and an enablement rule.
type Feature struct {
	Slug    string `koanf:"slug" yaml:"slug" toml:"slug" json:"slug"`
	Target  string `koanf:"target" yaml:"target" toml:"target" json:"target"`
	Enabled Rule   `koanf:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
}

// IsEnabled evaluates the feature's rule on h.
func (f Feature) IsEnabled(h Host) bool {
	return f.Enabled.Evaluate(h)
}

// FeatureList is an ordered registry of features. Order is match priority:
// earlier features win.
type FeatureList []Feature

// FilterEnabled returns the features enabled on h, in order.
func (l FeatureList) FilterEnabled(h Host) FeatureList {
	var out FeatureList
	for _, f := range l {
		if f.IsEnabled(h) {
			out = append(out, f)
		}
	}
	return out
}

// FilterSlugs returns the features whose slug is in the given set, in order.
func (l FeatureList) FilterSlugs(set []string) FeatureList {
	var out FeatureList
	for _, f := range l {
		if slugs.Contains(set, f.Slug) {
			out = append(out, f)
		}
	}
	return out
}

// FirstMatch returns the earliest feature whose slug is in the given set.
// Registry order decides, not the order of set.
func (l FeatureList) FirstMatch(set []string) (Feature, bool) {
	for _, f := range l {
		if slugs.Contains(set, f.Slug) {
			return f, true
		}
	}
	return Feature{}, false
}

// FirstEnabledMatch is FilterEnabled(h).FirstMatch(set) without evaluating
// rules of features that set does not reference. Rules are evaluated on every
// call; nothing is cached.
func (l FeatureList) FirstEnabledMatch(set []string, h Host) (Feature, bool) {
	for _, f := range l {
		if slugs.Contains(set, f.Slug) && f.IsEnabled(h) {
			return f, true
		}
	}
	return Feature{}, false
}

// Validate checks slugs are present and unique and targets are set.
func (l FeatureList) Validate() error {
	seen := make(map[string]bool, len(l))
	for i, f := range l {
		if strings.TrimSpace(f.Slug) == "" {
			return errors.Newf(errors.ErrConfigValid, "feature #%d has an empty slug", i+1)
		}
		if strings.ContainsAny(f.Slug, "},") {
			return errors.Newf(errors.ErrConfigValid, "feature slug %q can never match a directory marker", f.Slug).
				WithDetail("slug", f.Slug)
		}
		if seen[f.Slug] {
			return errors.Newf(errors.ErrConfigValid, "duplicate feature slug %q", f.Slug).
				WithDetail("slug", f.Slug)
		}
		seen[f.Slug] = true

		if strings.TrimSpace(f.Target) == "" {
			return errors.Newf(errors.ErrConfigValid, "feature %q has no target", f.Slug).
				WithDetail("slug", f.Slug)
		}
	}
	return nil
}
