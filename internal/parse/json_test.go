package parse

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the tolerant JSON parser:
// - Strict JSON parses without touching the rewriter
// - Line and block comments are stripped on the retry pass
// - A // sequence inside a string literal survives untouched
// - Trailing commas before ] and } are tolerated
// - Irrecoverable garbage is logged and yields no data
// - A missing file is logged and yields no data

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJSONFile_StrictDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tasks.json", `{"version": "2.0.0", "tasks": []}`)

	v, ok := JSONFile(path, discard())
	require.True(t, ok)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2.0.0", m["version"])
}

func TestJSONFile_StripsComments(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tasks.json", `{
		// build configuration
		"label": "build", /* inline */
		"command": "make"
	}`)

	v, ok := JSONFile(path, discard())
	require.True(t, ok)

	m := v.(map[string]any)
	assert.Equal(t, "build", m["label"])
	assert.Equal(t, "make", m["command"])
}

func TestJSONFile_PreservesCommentLikeStrings(t *testing.T) {
	// A // inside a quoted value is content, not a comment.
	path := writeFile(t, t.TempDir(), "tasks.json", `{
		"label": "not // a comment",
		"url": "https://example.com", // real comment
	}`)

	v, ok := JSONFile(path, discard())
	require.True(t, ok)

	m := v.(map[string]any)
	assert.Equal(t, "not // a comment", m["label"])
	assert.Equal(t, "https://example.com", m["url"])
}

func TestJSONFile_TrailingCommas(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tasks.json", `{
		"tasks": [
			{"label": "build"},
		],
	}`)

	v, ok := JSONFile(path, discard())
	require.True(t, ok)

	m := v.(map[string]any)
	tasks := m["tasks"].([]any)
	require.Len(t, tasks, 1)
}

func TestJSONFile_GarbageYieldsNoData(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	path := writeFile(t, t.TempDir(), "tasks.json", `{"label": `)

	v, ok := JSONFile(path, logger)
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Contains(t, buf.String(), path)
}

func TestJSONFile_MissingFileYieldsNoData(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	_, ok := JSONFile(filepath.Join(t.TempDir(), "absent.json"), logger)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "absent.json")
}
