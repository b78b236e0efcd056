package render

import (
	"fmt"
	"os"
	"strings"
)

// Patcher owns the region of a document bounded by its sentinel markers.
type Patcher struct {
	StartMarker string
	EndMarker   string
}

// Apply writes section into the marker-bounded region of the document at
// path. An existing document keeps everything outside the region; a document
// without markers gets the region appended after two blank lines; a missing
// document is created holding only the region. Re-applying the same section
// is a byte-level no-op.
func (p Patcher) Apply(path, section string) error {
	wrapped := p.StartMarker + "\n" + section + "\n" + p.EndMarker

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		content := string(data)
		start := strings.Index(content, p.StartMarker)
		end := strings.Index(content, p.EndMarker)
		if start >= 0 && end > start {
			content = content[:start] + wrapped + content[end+len(p.EndMarker):]
		} else {
			content = content + "\n\n" + wrapped
		}
		return os.WriteFile(path, []byte(content), 0644)
	case os.IsNotExist(err):
		return os.WriteFile(path, []byte(wrapped), 0644)
	default:
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
}
