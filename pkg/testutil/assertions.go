package testutil

import (
	"fmt"
	"os"
	"testing"
)

// AssertSymlink checks that link is a symlink whose text is dest.
func AssertSymlink(t *testing.T, link, dest string, msgAndArgs ...interface{}) {
	t.Helper()

	info, err := os.Lstat(link)
	if err != nil {
		t.Errorf("%sSymlink %s does not exist: %v", formatMessage(msgAndArgs...), link, err)
		return
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("%s%s is not a symlink (mode %v)", formatMessage(msgAndArgs...), link, info.Mode())
		return
	}
	got, err := os.Readlink(link)
	if err != nil {
		t.Errorf("%sCannot read symlink %s: %v", formatMessage(msgAndArgs...), link, err)
		return
	}
	if got != dest {
		t.Errorf("%sSymlink %s points to %s, want %s", formatMessage(msgAndArgs...), link, got, dest)
	}
}

// AssertNotExists checks that nothing, not even a dangling link, exists at path.
func AssertNotExists(t *testing.T, path string, msgAndArgs ...interface{}) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("%sExpected %s to not exist (lstat err: %v)", formatMessage(msgAndArgs...), path, err)
	}
}

// AssertRegularFile checks that path is a regular file with the given content.
func AssertRegularFile(t *testing.T, path, content string, msgAndArgs ...interface{}) {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("%sFile does not exist: %s", formatMessage(msgAndArgs...), path)
		return
	}
	if !info.Mode().IsRegular() {
		t.Errorf("%s%s is not a regular file (mode %v)", formatMessage(msgAndArgs...), path, info.Mode())
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("%sCannot read %s: %v", formatMessage(msgAndArgs...), path, err)
		return
	}
	if string(data) != content {
		t.Errorf("%sFile %s content = %q, want %q", formatMessage(msgAndArgs...), path, data, content)
	}
}

// AssertDirExists checks that a directory exists.
func AssertDirExists(t *testing.T, path string, msgAndArgs ...interface{}) {
	t.Helper()
	info, err := os.Lstat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("%sDirectory does not exist: %s", formatMessage(msgAndArgs...), path)
	}
}

func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
	}
	return fmt.Sprint(msgAndArgs...) + ": "
}
