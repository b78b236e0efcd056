package parse

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the YAML parser:
// - Mappings decode to map[string]any so extractors can walk them
// - Malformed YAML is logged and yields no data

func TestYAMLFile_DecodesMappings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "docker-compose.yml", `
services:
  web:
    image: nginx:1.27
    ports:
      - "80:80"
`)

	v, ok := YAMLFile(path, discard())
	require.True(t, ok)

	root, ok := v.(map[string]any)
	require.True(t, ok)
	services, ok := root["services"].(map[string]any)
	require.True(t, ok)
	web := services["web"].(map[string]any)
	assert.Equal(t, "nginx:1.27", web["image"])
}

func TestYAMLFile_MalformedYieldsNoData(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	path := writeFile(t, t.TempDir(), "docker-compose.yml", "services:\n\t- broken")

	v, ok := YAMLFile(path, logger)
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Contains(t, buf.String(), path)
}
