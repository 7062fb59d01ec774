// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, conflict details and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/santikid/clink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "config_error",
			code:    errors.ErrConfigValid,
			message: "invalid configuration",
			wantStr: "[CONFIG_INVALID] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDirCreate, "cannot create %s with mode %o", "dir", 0755)
	assert.Equal(t, "cannot create dir with mode 755", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrFileAccess, "cannot read").
		WithDetail("path", "/test/path").
		WithDetails(map[string]interface{}{"mode": 0644})

	assert.Equal(t, "/test/path", err.Details["path"])
	assert.Equal(t, 0644, err.Details["mode"])
}

func TestConflict(t *testing.T) {
	t.Run("merge_conflict", func(t *testing.T) {
		err := errors.Conflict(errors.ErrMergeConflict, "/home/u/.config", []string{"a/b.txt"})

		assert.True(t, errors.IsErrorCode(err, errors.ErrMergeConflict))
		assert.Equal(t, "/home/u/.config", err.Details[errors.DetailTarget])
		assert.Equal(t, "[MERGE_CONFLICT] conflicting sources in target /home/u/.config: a/b.txt", err.Error())
	})

	t.Run("target_conflict", func(t *testing.T) {
		err := errors.Conflict(errors.ErrTargetConflict, "/t", []string{"x", "y/z"})

		assert.Equal(t, "[TARGET_CONFLICT] conflicts in target /t: x, y/z", err.Error())
	})
}

func TestConflictPaths(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "conflict_error",
			err:  errors.Conflict(errors.ErrTargetConflict, "/t", []string{"a", "b"}),
			want: []string{"a", "b"},
		},
		{
			name: "other_clink_error",
			err:  errors.New(errors.ErrFileAccess, "denied"),
			want: nil,
		},
		{
			name: "standard_error",
			err:  stderrors.New("boom"),
			want: nil,
		},
		{
			name: "nil_error",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.ConflictPaths(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "non_clink_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrTargetConflict, errors.GetErrorCode(errors.New(errors.ErrTargetConflict, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var clinkErr *errors.ClinkError
	require.True(t, stderrors.As(configErr.Unwrap(), &clinkErr))
	assert.Equal(t, errors.ErrFileAccess, clinkErr.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
