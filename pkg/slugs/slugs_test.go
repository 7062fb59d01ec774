// Test Type: Unit Test
// Description: Tests for directory name marker parsing

package slugs_test

import (
	"testing"

	"github.com/santikid/clink/pkg/slugs"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   []string
		wantOK bool
	}{
		{
			name:   "single_slug",
			input:  "{all}shell",
			want:   []string{"all"},
			wantOK: true,
		},
		{
			name:   "multiple_slugs_keep_order",
			input:  "{mac,linux}app",
			want:   []string{"mac", "linux"},
			wantOK: true,
		},
		{
			name:   "empty_marker",
			input:  "{}app",
			want:   []string{""},
			wantOK: true,
		},
		{
			name:   "empty_segments_kept",
			input:  "{a,,b}x",
			want:   []string{"a", "", "b"},
			wantOK: true,
		},
		{
			name:   "marker_only",
			input:  "{work}",
			want:   []string{"work"},
			wantOK: true,
		},
		{
			name:   "no_marker",
			input:  "plain",
			wantOK: false,
		},
		{
			name:   "marker_not_at_start",
			input:  "app{mac}",
			wantOK: false,
		},
		{
			name:   "missing_close",
			input:  "{mac",
			wantOK: false,
		},
		{
			name:   "missing_open",
			input:  "mac}",
			wantOK: false,
		},
		{
			name:   "close_before_open",
			input:  "}{mac}",
			wantOK: false,
		},
		{
			name:   "second_close_ignored",
			input:  "{a}b}",
			want:   []string{"a"},
			wantOK: true,
		},
		{
			name:   "empty_name",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := slugs.Extract(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, slugs.Contains([]string{"mac", "linux"}, "linux"))
	assert.False(t, slugs.Contains([]string{"mac", "linux"}, "win"))
	assert.False(t, slugs.Contains(nil, ""))
	assert.True(t, slugs.Contains([]string{""}, ""))
}
