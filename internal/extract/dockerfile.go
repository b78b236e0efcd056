package extract

import (
	"log"
	"path/filepath"
	"strings"

	"devinfo/internal/parse"
)

// BuildFileRecord is one row of the Dockerfiles summary.
type BuildFileRecord struct {
	File         string // path relative to the scan root
	BaseImage    string
	ExposedPorts string // comma-joined
}

// BuildFileAt parses the Dockerfile at path. A parse failure still yields a
// row naming the file, with the extracted fields empty.
func BuildFileAt(path, rootDir string, logger *log.Logger) BuildFileRecord {
	bf, _ := parse.Dockerfile(path, logger)

	rel, err := filepath.Rel(rootDir, path)
	if err != nil {
		rel = path
	}

	return BuildFileRecord{
		File:         filepath.ToSlash(rel),
		BaseImage:    bf.BaseImage,
		ExposedPorts: strings.Join(bf.ExposedPorts, ", "),
	}
}
