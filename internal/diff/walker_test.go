package diff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, root string, relPath string, content string) {
	t.Helper()
	fullPath := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
}

func TestTreeWalker_CollectsRegularFiles(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	writeTestFile(t, root, "a.txt", "hello")
	writeTestFile(t, root, "sub/dir/b.txt", "world")

	filter, err := NewPathFilter(nil, nil, nil)
	require.NoError(t, err)

	// WHEN
	entries, warnings, err := NewTreeWalker(root, filter).Walk()

	// THEN
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries["a.txt"].RelativePath)
	assert.Equal(t, int64(5), entries["a.txt"].Size)
	assert.Equal(t, "Text", entries["a.txt"].Type)
	assert.Equal(t, "sub/dir/b.txt", entries["sub/dir/b.txt"].RelativePath)
}

func TestTreeWalker_IgnoredDirPrunesSubtree(t *testing.T) {
	// GIVEN a whitelisted extension below an ignored directory
	root := t.TempDir()
	writeTestFile(t, root, "src/keep.ts", "keep")
	writeTestFile(t, root, "node_modules/lib/index.ts", "ignore me")

	filter, err := NewPathFilter([]string{"node_modules"}, nil, []string{".ts"})
	require.NoError(t, err)

	// WHEN
	entries, _, err := NewTreeWalker(root, filter).Walk()

	// THEN files below an ignored directory never appear, whitelist or not
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries, "src/keep.ts")
}

func TestTreeWalker_IgnoredFilePatterns(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	writeTestFile(t, root, "main.py", "print()")
	writeTestFile(t, root, "main.pyc", "\x00\x01")

	filter, err := NewPathFilter(nil, []string{"*.pyc"}, nil)
	require.NoError(t, err)

	// WHEN
	entries, _, err := NewTreeWalker(root, filter).Walk()

	// THEN
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries, "main.py")
}

func TestTreeWalker_SymlinksAreSkipped(t *testing.T) {
	// GIVEN a symlinked file and a symlinked directory
	root := t.TempDir()
	writeTestFile(t, root, "real.txt", "real")
	writeTestFile(t, root, "sub/file.txt", "sub")
	require.NoError(t, os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(root, "sub"), filepath.Join(root, "sublink")))

	filter, err := NewPathFilter(nil, nil, nil)
	require.NoError(t, err)

	// WHEN
	entries, _, err := NewTreeWalker(root, filter).Walk()

	// THEN
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Contains(t, entries, "real.txt")
	assert.Contains(t, entries, "sub/file.txt")
}

func TestTreeWalker_MissingRootIsFatal(t *testing.T) {
	// GIVEN
	filter, err := NewPathFilter(nil, nil, nil)
	require.NoError(t, err)

	// WHEN
	_, _, err = NewTreeWalker(filepath.Join(t.TempDir(), "does-not-exist"), filter).Walk()

	// THEN
	assert.Error(t, err)
}

func TestTreeWalker_FileAsRootIsFatal(t *testing.T) {
	// GIVEN
	root := t.TempDir()
	writeTestFile(t, root, "file.txt", "content")

	filter, err := NewPathFilter(nil, nil, nil)
	require.NoError(t, err)

	// WHEN
	_, _, err = NewTreeWalker(filepath.Join(root, "file.txt"), filter).Walk()

	// THEN
	assert.Error(t, err)
}
