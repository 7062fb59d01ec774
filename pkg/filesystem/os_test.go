package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	require.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("hello world"), 0644))

	info, err := fs.Lstat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.True(t, info.Mode().IsRegular())

	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))
	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755), "MkdirAll is idempotent")

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sub", entries[0].Name())
	assert.Equal(t, "test.txt", entries[1].Name())

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Lstat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS_Symlinks(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	source := filepath.Join(tmpDir, "source")
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.WriteFile(source, []byte("data"), 0644))
	require.NoError(t, fs.Symlink(source, link))

	dest, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, source, dest)

	linfo, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.True(t, linfo.Mode()&os.ModeSymlink != 0)

	require.NoError(t, fs.Remove(link))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(source)
	assert.NoError(t, err, "removing the link must keep the source")
}

func TestOSFS_RemoveNonEmptyDir(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "d", "e"), 0755))

	assert.Error(t, fs.Remove(filepath.Join(tmpDir, "d")))
	require.NoError(t, fs.Remove(filepath.Join(tmpDir, "d", "e")))
}
