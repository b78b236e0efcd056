package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for dynamic value helpers:
// - inputIDs finds ${input:NAME} at any nesting depth and sorts the result
// - inputIDs ignores non-string leaves
// - formatOptions marks the default in lists and scalars
// - toString renders nil as the empty string

func TestInputIDs_DeeplyNested(t *testing.T) {
	v := map[string]any{
		"args": []any{
			map[string]any{
				"env": map[string]any{
					"TARGET": "${input:target}",
				},
			},
			"${input:region} and ${input:target}",
		},
		"count": 3,
	}

	assert.Equal(t, []string{"region", "target"}, inputIDs(v))
}

func TestInputIDs_NoReferences(t *testing.T) {
	assert.Empty(t, inputIDs(map[string]any{"label": "build", "enabled": true}))
}

func TestFormatOptions_ListWithDefault(t *testing.T) {
	got := formatOptions([]any{"staging", "production"}, "production")
	assert.Equal(t, "`staging` `production`✓", got)
}

func TestFormatOptions_ListWithoutDefault(t *testing.T) {
	got := formatOptions([]any{"a", "b"}, nil)
	assert.Equal(t, "`a` `b`", got)
}

func TestFormatOptions_Scalar(t *testing.T) {
	assert.Equal(t, "`debug✓`", formatOptions("debug", "debug"))
	assert.Equal(t, "`debug`", formatOptions("debug", "release"))
}

func TestFormatOptions_Absent(t *testing.T) {
	assert.Empty(t, formatOptions(nil, "x"))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", toString(nil))
	assert.Equal(t, "8080", toString(8080))
	assert.Equal(t, "text", toString("text"))
}
