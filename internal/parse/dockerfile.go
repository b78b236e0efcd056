package parse

import (
	"bufio"
	"log"
	"os"
	"strings"
)

// BuildFile holds the fields extracted from a Dockerfile.
type BuildFile struct {
	BaseImage    string
	ExposedPorts []string
}

// Dockerfile scans a Dockerfile line by line. Keyword matching is
// case-insensitive. The first FROM wins, so later stages of a multi-stage
// build do not mask the base image; EXPOSE ports accumulate across lines.
func Dockerfile(path string, logger *log.Logger) (BuildFile, bool) {
	f, err := os.Open(path)
	if err != nil {
		logger.Printf("Error reading Dockerfile %s: %v", path, err)
		return BuildFile{}, false
	}
	defer f.Close()

	var bf BuildFile
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(strings.TrimSpace(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		switch strings.ToUpper(fields[0]) {
		case "FROM":
			if bf.BaseImage == "" && len(fields) >= 2 {
				bf.BaseImage = fields[1]
			}
		case "EXPOSE":
			bf.ExposedPorts = append(bf.ExposedPorts, fields[1:]...)
		}
	}
	if err := sc.Err(); err != nil {
		logger.Printf("Error reading Dockerfile %s: %v", path, err)
		return BuildFile{}, false
	}
	return bf, true
}
