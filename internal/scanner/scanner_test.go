package scanner

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for file discovery:
// - Files matching a pattern are found at any depth
// - Matching is against the full base name, not a substring
// - The root .gitignore prunes directories so their contents are never visited
// - A nested .gitignore excludes files beneath its directory, cumulatively
// - A nested .gitignore does not affect siblings of its directory
// - Extra ignore globs exclude paths on top of .gitignore rules

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func mkFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestFindFiles_MatchesAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	mkFile(t, filepath.Join(root, "Dockerfile"))
	mkFile(t, filepath.Join(root, "services", "api", "Dockerfile"))

	d, err := New(root, nil, discard())
	require.NoError(t, err)

	files, err := d.FindFiles([]string{"Dockerfile"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "Dockerfile"),
		filepath.Join(root, "services", "api", "Dockerfile"),
	}, files)
}

func TestFindFiles_FullNameNotSubstring(t *testing.T) {
	root := t.TempDir()
	mkFile(t, filepath.Join(root, "tasks.json"))
	mkFile(t, filepath.Join(root, "mytasks.json"))
	mkFile(t, filepath.Join(root, "tasks.json.bak"))

	d, err := New(root, nil, discard())
	require.NoError(t, err)

	files, err := d.FindFiles([]string{"tasks.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "tasks.json")}, files)
}

func TestFindFiles_RootGitignorePrunes(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("vendor\n"), 0644))
	mkFile(t, filepath.Join(root, "vendor", "Dockerfile"))
	mkFile(t, filepath.Join(root, "Dockerfile"))

	d, err := New(root, nil, discard())
	require.NoError(t, err)

	files, err := d.FindFiles([]string{"Dockerfile"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "Dockerfile")}, files)
}

func TestFindFiles_NestedGitignore(t *testing.T) {
	root := t.TempDir()
	mkFile(t, filepath.Join(root, "Dockerfile"))
	mkFile(t, filepath.Join(root, "sub", "Dockerfile"))
	mkFile(t, filepath.Join(root, "sub", "deep", "Dockerfile"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", ".gitignore"), []byte("Dockerfile\n"), 0644))

	d, err := New(root, nil, discard())
	require.NoError(t, err)

	files, err := d.FindFiles([]string{"Dockerfile"})
	require.NoError(t, err)
	// The nested rules exclude sub/Dockerfile and sub/deep/Dockerfile but
	// not the root's own Dockerfile.
	assert.Equal(t, []string{filepath.Join(root, "Dockerfile")}, files)
}

func TestFindFiles_NestedGitignoreDoesNotAffectSiblings(t *testing.T) {
	root := t.TempDir()
	mkFile(t, filepath.Join(root, "a", "Dockerfile"))
	mkFile(t, filepath.Join(root, "b", "Dockerfile"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", ".gitignore"), []byte("Dockerfile\n"), 0644))

	d, err := New(root, nil, discard())
	require.NoError(t, err)

	files, err := d.FindFiles([]string{"Dockerfile"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "b", "Dockerfile")}, files)
}

func TestFindFiles_ExtraIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	mkFile(t, filepath.Join(root, "Dockerfile"))
	mkFile(t, filepath.Join(root, "examples", "Dockerfile"))

	d, err := New(root, []string{"examples"}, discard())
	require.NoError(t, err)

	files, err := d.FindFiles([]string{"Dockerfile"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "Dockerfile")}, files)
}

func TestFindFiles_GlobPatterns(t *testing.T) {
	root := t.TempDir()
	mkFile(t, filepath.Join(root, "Dockerfile"))
	mkFile(t, filepath.Join(root, "Dockerfile.api"))
	mkFile(t, filepath.Join(root, "Dockerfile.worker"))

	d, err := New(root, nil, discard())
	require.NoError(t, err)

	files, err := d.FindFiles([]string{"Dockerfile.*"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "Dockerfile.api"),
		filepath.Join(root, "Dockerfile.worker"),
	}, files)
}
