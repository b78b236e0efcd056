package extract

import (
	"strings"

	"devinfo/internal/render"
)

// inputDefinitions indexes the inputs list of an editor config file by id.
// Entries without an id are skipped.
func inputDefinitions(data map[string]any) map[string]map[string]any {
	defs := make(map[string]map[string]any)
	list, _ := data["inputs"].([]any)
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := m["id"].(string)
		if !ok {
			continue
		}
		defs[id] = m
	}
	return defs
}

// inputsTable renders the referenced input definitions as an inline table.
// Referenced ids without a definition still get a row so the reference stays
// visible.
func inputsTable(ids []string, defs map[string]map[string]any) string {
	if len(ids) == 0 {
		return ""
	}
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		def, ok := defs[id]
		if !ok {
			rows = append(rows, []string{id, "", ""})
			continue
		}
		desc := strings.TrimSpace(stringField(def, "description"))
		rows = append(rows, []string{id, desc, formatOptions(def["options"], def["default"])})
	}
	return render.InlineTable([]string{"Name", "Description", "Options"}, rows)
}

// formatOptions backticks each declared option, marking the one equal to the
// default with a trailing check. A scalar options value is rendered as a
// single backticked entry with the check inside the backticks.
func formatOptions(options, def any) string {
	if options == nil {
		return ""
	}
	hasDefault := toString(def) != ""

	if list, ok := options.([]any); ok {
		formatted := make([]string, 0, len(list))
		for _, opt := range list {
			s := toString(opt)
			if hasDefault && s == toString(def) {
				formatted = append(formatted, "`"+s+"`✓")
			} else {
				formatted = append(formatted, "`"+s+"`")
			}
		}
		return strings.Join(formatted, " ")
	}

	s := toString(options)
	if s == "" {
		return ""
	}
	if hasDefault && s == toString(def) {
		return "`" + s + "✓`"
	}
	return "`" + s + "`"
}
