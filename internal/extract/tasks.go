package extract

import (
	"log"
	"path/filepath"

	"devinfo/internal/parse"
)

// Task is one presentation-ready row of the VS Code tasks summary.
type Task struct {
	Label   string
	Detail  string
	Command string // base executable name, backtick-quoted
	Inputs  string // inline table of referenced input definitions
}

// Tasks extracts the task entries of one tasks.json. The file may hold a
// bare task list or an object carrying tasks plus input definitions.
func Tasks(path string, logger *log.Logger) []Task {
	data, ok := parse.JSONFile(path, logger)
	if !ok {
		return nil
	}

	defs := make(map[string]map[string]any)
	var entries []any
	switch v := data.(type) {
	case map[string]any:
		defs = inputDefinitions(v)
		entries, _ = v["tasks"].([]any)
	case []any:
		entries = v
	}

	tasks := make([]Task, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		command := stringField(m, "command")
		if command != "" {
			command = "`" + filepath.Base(command) + "`"
		}
		tasks = append(tasks, Task{
			Label:   stringField(m, "label"),
			Detail:  stringField(m, "detail"),
			Command: command,
			Inputs:  inputsTable(inputIDs(m), defs),
		})
	}
	return tasks
}
