package parse

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLFile loads a YAML document into a dynamic value. Mappings decode to
// map[string]any and sequences to []any. Failures are logged and reported as
// no data.
func YAMLFile(path string, logger *log.Logger) (any, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Printf("Error reading %s: %v", path, err)
		return nil, false
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		logger.Printf("Error reading %s: %v", path, err)
		return nil, false
	}
	return v, true
}
