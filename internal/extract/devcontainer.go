package extract

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"devinfo/internal/parse"
	"devinfo/internal/render"
)

const marketplaceURL = "https://marketplace.visualstudio.com/items?itemName="

// Devcontainer summarizes the editor extensions a devcontainer definition
// installs.
type Devcontainer struct {
	Extensions string // inline table of marketplace links
	File       string // path relative to the scan root
}

// DevcontainerAt extracts the extension list of one devcontainer.json.
// A missing customizations.vscode.extensions path is treated as an empty
// extension list. Repeated identifiers keep their first-seen position.
func DevcontainerAt(path, rootDir string, logger *log.Logger) (Devcontainer, bool) {
	data, ok := parse.JSONFile(path, logger)
	if !ok {
		return Devcontainer{}, false
	}
	m, ok := data.(map[string]any)
	if !ok {
		return Devcontainer{}, false
	}

	var extensions []string
	if customizations, ok := m["customizations"].(map[string]any); ok {
		if vscode, ok := customizations["vscode"].(map[string]any); ok {
			if list, ok := vscode["extensions"].([]any); ok {
				for _, item := range list {
					if s, ok := item.(string); ok {
						extensions = append(extensions, s)
					}
				}
			}
		}
	}

	rel, err := filepath.Rel(rootDir, path)
	if err != nil {
		rel = path
	}

	return Devcontainer{
		Extensions: extensionsTable(dedupe(extensions)),
		File:       filepath.ToSlash(rel),
	}, true
}

// dedupe drops repeated items keeping first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// extensionsTable maps each extension identifier to its marketplace page.
func extensionsTable(extensions []string) string {
	rows := make([][]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		link := fmt.Sprintf(`<a href="%s%s" target="_blank">%s</a>`, marketplaceURL, ext, ext)
		rows = append(rows, []string{ext, link})
	}
	return render.InlineTable([]string{"Name", "Store Link"}, rows)
}
