// Test Type: Unit Test
// Description: Tests for feature enablement, filtering and matching

package features_test

import (
	"strings"
	"testing"

	"github.com/santikid/clink/pkg/features"
	"github.com/santikid/clink/pkg/slugs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost returns a host on goos whose commands succeed when listed in ok,
// recording every command line it is asked to run.
func fakeHost(goos string, ok ...string) (features.Host, *[]string) {
	var calls []string
	return features.Host{
		OS: goos,
		RunCommand: func(name string, args []string) bool {
			command := strings.Join(append([]string{name}, args...), " ")
			calls = append(calls, command)
			for _, c := range ok {
				if c == command {
					return true
				}
			}
			return false
		},
	}, &calls
}

func TestRule_Evaluate(t *testing.T) {
	mac, _ := fakeHost("darwin", "has-brew")
	linux, _ := fakeHost("linux")

	tests := []struct {
		name string
		rule features.Rule
		host features.Host
		want bool
	}{
		{"none_is_false", features.Never(), mac, false},
		{"zero_value_is_none", features.Rule{}, mac, false},
		{"all_is_true", features.Always(), linux, true},
		{"macos_on_mac", features.OnMacOS(), mac, true},
		{"macos_on_linux", features.OnMacOS(), linux, false},
		{"linux_on_linux", features.OnLinux(), linux, true},
		{"linux_on_mac", features.OnLinux(), mac, false},
		{"command_success", features.WhenCommand("has-brew"), mac, true},
		{"command_failure", features.WhenCommand("has-brew"), linux, false},
		{"command_without_runner", features.WhenCommand("x"), features.Host{OS: "linux"}, false},
		{"command_with_args", features.WhenCommand("test", "-d", "/opt"), mac, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Evaluate(tt.host))
		})
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		input   string
		want    features.Rule
		wantErr bool
	}{
		{input: "all", want: features.Always()},
		{input: "MacOS", want: features.OnMacOS()},
		{input: " linux ", want: features.OnLinux()},
		{input: "none", want: features.Never()},
		{input: "command:which brew", want: features.WhenCommand("which brew")},
		{input: "Command: is-work-laptop", want: features.WhenCommand("is-work-laptop")},
		{input: "command:", wantErr: true},
		{input: "command", wantErr: true},
		{input: "windows", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := features.ParseRule(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRule_CommandRunsLiterally(t *testing.T) {
	var gotName string
	var gotArgs []string
	h := features.Host{
		OS: "linux",
		RunCommand: func(name string, args []string) bool {
			gotName, gotArgs = name, args
			return true
		},
	}

	rule, err := features.ParseRule(`command:/opt/My Tools/has-work`)
	require.NoError(t, err)
	assert.True(t, rule.Evaluate(h))
	assert.Equal(t, "/opt/My Tools/has-work", gotName)
	assert.Empty(t, gotArgs)

	assert.True(t, features.WhenCommand("test", "-d", "/opt").Evaluate(h))
	assert.Equal(t, "test", gotName)
	assert.Equal(t, []string{"-d", "/opt"}, gotArgs)
}

func TestSplitArgs(t *testing.T) {
	args, err := features.SplitArgs(`-d "/opt/My Tools" 'x y'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"-d", "/opt/My Tools", "x y"}, args)

	_, err = features.SplitArgs(`"unbalanced`)
	assert.Error(t, err)
}

func TestRule_WithArgsHasNoTextForm(t *testing.T) {
	rule := features.WhenCommand("test", "-d", "/opt/My Tools")
	assert.Equal(t, `command:test -d '/opt/My Tools'`, rule.String())

	_, err := rule.MarshalText()
	assert.Error(t, err)
}

func TestRule_TextRoundTrip(t *testing.T) {
	for _, rule := range []features.Rule{
		features.Always(), features.Never(), features.OnMacOS(), features.OnLinux(),
		features.WhenCommand("/opt/My Tools/has-work"),
	} {
		text, err := rule.MarshalText()
		require.NoError(t, err)

		var parsed features.Rule
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, rule, parsed)
	}
	assert.Equal(t, "none", features.Rule{}.String())
}

func registry() features.FeatureList {
	return features.FeatureList{
		{Slug: "mac", Target: "~/.config", Enabled: features.OnMacOS()},
		{Slug: "linux", Target: "~/.config", Enabled: features.OnLinux()},
		{Slug: "work", Target: "~/work", Enabled: features.WhenCommand("is-work")},
		{Slug: "all", Target: "~", Enabled: features.Always()},
		{Slug: "off", Target: "~", Enabled: features.Never()},
	}
}

func slugsOf(l features.FeatureList) []string {
	var out []string
	for _, f := range l {
		out = append(out, f.Slug)
	}
	return out
}

func TestFeatureList_FilterEnabled(t *testing.T) {
	mac, _ := fakeHost("darwin", "is-work")
	linux, _ := fakeHost("linux")

	assert.Equal(t, []string{"mac", "work", "all"}, slugsOf(registry().FilterEnabled(mac)))
	assert.Equal(t, []string{"linux", "all"}, slugsOf(registry().FilterEnabled(linux)))
	assert.Empty(t, features.FeatureList{}.FilterEnabled(mac))
}

func TestFeatureList_FilterSlugs(t *testing.T) {
	got := registry().FilterSlugs([]string{"all", "mac", "unknown"})
	assert.Equal(t, []string{"mac", "all"}, slugsOf(got), "registry order is preserved")
	assert.Empty(t, registry().FilterSlugs(nil))
}

func TestFeatureList_FirstMatch(t *testing.T) {
	t.Run("registry_order_wins", func(t *testing.T) {
		f, ok := registry().FirstMatch([]string{"linux", "mac"})
		require.True(t, ok)
		assert.Equal(t, "mac", f.Slug)
	})

	t.Run("only_members_of_set", func(t *testing.T) {
		f, ok := registry().FirstMatch([]string{"off"})
		require.True(t, ok)
		assert.Equal(t, "off", f.Slug)
	})

	t.Run("no_match", func(t *testing.T) {
		_, ok := registry().FirstMatch([]string{"nope", ""})
		assert.False(t, ok)
	})
}

func TestFeatureList_FirstEnabledMatch(t *testing.T) {
	t.Run("skips_disabled_features", func(t *testing.T) {
		linux, _ := fakeHost("linux")
		f, ok := registry().FirstEnabledMatch([]string{"mac", "linux"}, linux)
		require.True(t, ok)
		assert.Equal(t, "linux", f.Slug)
	})

	t.Run("agrees_with_filter_then_match", func(t *testing.T) {
		mac, _ := fakeHost("darwin")
		set := []string{"linux", "work", "all", "mac"}

		lazy, lazyOK := registry().FirstEnabledMatch(set, mac)
		eager, eagerOK := registry().FilterEnabled(mac).FirstMatch(set)
		assert.Equal(t, eagerOK, lazyOK)
		assert.Equal(t, eager, lazy)
	})

	t.Run("only_runs_commands_for_referenced_features", func(t *testing.T) {
		mac, calls := fakeHost("darwin", "is-work")
		f, ok := registry().FirstEnabledMatch([]string{"mac"}, mac)
		require.True(t, ok)
		assert.Equal(t, "mac", f.Slug)
		assert.Empty(t, *calls)

		_, _ = registry().FirstEnabledMatch([]string{"work"}, mac)
		_, _ = registry().FirstEnabledMatch([]string{"work"}, mac)
		assert.Equal(t, []string{"is-work", "is-work"}, *calls, "no caching between calls")
	})

	t.Run("none_enabled", func(t *testing.T) {
		linux, _ := fakeHost("linux")
		_, ok := registry().FirstEnabledMatch([]string{"mac", "off", "work"}, linux)
		assert.False(t, ok)
	})
}

func TestFeatureList_Validate(t *testing.T) {
	tests := []struct {
		name    string
		list    features.FeatureList
		wantErr string
	}{
		{
			name: "valid",
			list: registry(),
		},
		{
			name:    "empty_slug",
			list:    features.FeatureList{{Slug: " ", Target: "~"}},
			wantErr: "empty slug",
		},
		{
			name:    "comma_in_slug",
			list:    features.FeatureList{{Slug: "a,b", Target: "~"}},
			wantErr: "never match",
		},
		{
			name:    "closing_brace_in_slug",
			list:    features.FeatureList{{Slug: "a}", Target: "~"}},
			wantErr: "never match",
		},
		{
			name: "opening_brace_in_slug",
			list: features.FeatureList{{Slug: "{a", Target: "~"}},
		},
		{
			name: "duplicate_slug",
			list: features.FeatureList{
				{Slug: "a", Target: "~"},
				{Slug: "a", Target: "~/x"},
			},
			wantErr: "duplicate feature slug",
		},
		{
			name:    "missing_target",
			list:    features.FeatureList{{Slug: "a"}},
			wantErr: "no target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.list.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFeatureList_BraceSlugMatches(t *testing.T) {
	list := features.FeatureList{{Slug: "{a", Target: "~", Enabled: features.Always()}}
	require.NoError(t, list.Validate())

	set, ok := slugs.Extract("{{a}x")
	require.True(t, ok)
	linux, _ := fakeHost("linux")
	f, found := list.FirstEnabledMatch(set, linux)
	require.True(t, found)
	assert.Equal(t, "{a", f.Slug)
}
