package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the launch extractor:
// - Name and type are read from each configurations entry
// - Input references anywhere in a configuration render a sub-table
// - A bare configuration list is accepted

func TestLaunchConfigs_BasicFields(t *testing.T) {
	path := writeFile(t, t.TempDir(), "launch.json", `{
		"version": "0.2.0",
		"configurations": [
			{"name": "Debug API", "type": "go", "request": "launch"}
		]
	}`)

	configs := LaunchConfigs(path, discard())
	require.Len(t, configs, 1)
	assert.Equal(t, "Debug API", configs[0].Name)
	assert.Equal(t, "go", configs[0].Type)
	assert.Empty(t, configs[0].Inputs)
}

func TestLaunchConfigs_InputReferences(t *testing.T) {
	path := writeFile(t, t.TempDir(), "launch.json", `{
		"configurations": [
			{"name": "Attach", "type": "node", "port": "${input:debugPort}"}
		],
		"inputs": [
			{"id": "debugPort", "description": "Debugger port"}
		]
	}`)

	configs := LaunchConfigs(path, discard())
	require.Len(t, configs, 1)
	assert.Contains(t, configs[0].Inputs, "debugPort")
	assert.Contains(t, configs[0].Inputs, "Debugger port")
}

func TestLaunchConfigs_BareList(t *testing.T) {
	path := writeFile(t, t.TempDir(), "launch.json", `[
		{"name": "Run", "type": "python"}
	]`)

	configs := LaunchConfigs(path, discard())
	require.Len(t, configs, 1)
	assert.Equal(t, "python", configs[0].Type)
}
