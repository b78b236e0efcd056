package parse

import (
	"encoding/json"
	"log"
	"os"

	"github.com/tidwall/jsonc"
)

// JSONFile reads a JSON document that may carry editor-style relaxations:
// // and /* */ comments plus trailing commas before array and object closers.
// A strict parse is attempted first so well-formed documents never pass
// through the rewriter. Failures are logged and reported as no data.
func JSONFile(path string, logger *log.Logger) (any, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Printf("Error reading %s: %v", path, err)
		return nil, false
	}

	var v any
	if err := json.Unmarshal(data, &v); err == nil {
		return v, true
	}

	// jsonc blanks comments and trailing commas but leaves string literals
	// untouched, so a // inside a quoted value survives.
	if err := json.Unmarshal(jsonc.ToJSON(data), &v); err != nil {
		logger.Printf("Error reading %s even after cleaning: %v", path, err)
		return nil, false
	}
	return v, true
}
