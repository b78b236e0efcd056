// Package extract turns parsed configuration records into presentation-ready
// summary rows. Every extractor degrades gracefully: a missing or unparseable
// file contributes no data instead of failing the run.
package extract

import (
	"fmt"
	"regexp"
	"sort"
)

var inputRefPattern = regexp.MustCompile(`\$\{input:([^}]+)\}`)

// inputIDs walks an arbitrary decoded value and collects every input
// identifier referenced through a ${input:NAME} placeholder, at any nesting
// depth. The result is sorted.
func inputIDs(v any) []string {
	seen := make(map[string]struct{})
	collectInputIDs(v, seen)

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func collectInputIDs(v any, seen map[string]struct{}) {
	switch val := v.(type) {
	case map[string]any:
		for _, child := range val {
			collectInputIDs(child, seen)
		}
	case []any:
		for _, child := range val {
			collectInputIDs(child, seen)
		}
	case string:
		for _, m := range inputRefPattern.FindAllStringSubmatch(val, -1) {
			seen[m[1]] = struct{}{}
		}
	}
}

// stringField returns the string held under key, or "" when the key is
// absent or holds a non-string.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// toString renders a scalar the way the summary tables print it. nil becomes
// the empty string rather than "<nil>".
func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
