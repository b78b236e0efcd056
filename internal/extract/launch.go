package extract

import (
	"log"

	"devinfo/internal/parse"
)

// LaunchConfig is one row of the VS Code launch configuration summary.
type LaunchConfig struct {
	Name   string
	Type   string
	Inputs string
}

// LaunchConfigs extracts the configurations of one launch.json. Like tasks
// files, a launch file may be a bare configuration list or an object with
// configurations plus input definitions.
func LaunchConfigs(path string, logger *log.Logger) []LaunchConfig {
	data, ok := parse.JSONFile(path, logger)
	if !ok {
		return nil
	}

	defs := make(map[string]map[string]any)
	var entries []any
	switch v := data.(type) {
	case map[string]any:
		defs = inputDefinitions(v)
		entries, _ = v["configurations"].([]any)
	case []any:
		entries = v
	}

	configs := make([]LaunchConfig, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		configs = append(configs, LaunchConfig{
			Name:   stringField(m, "name"),
			Type:   stringField(m, "type"),
			Inputs: inputsTable(inputIDs(m), defs),
		})
	}
	return configs
}
