// Package scanner walks a project tree honoring layered .gitignore rules and
// returns the files whose names match configured patterns.
package scanner

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"
)

// compiledPattern pairs the original pattern text with its compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// localSpec is a .gitignore loaded from an intermediate directory; its rules
// match paths relative to that directory.
type localSpec struct {
	dir  string
	spec *ignore.GitIgnore
}

// Discovery finds configuration files under a root directory. The root
// .gitignore prunes whole subtrees, and every .gitignore met during descent
// adds exclusions for everything beneath its directory.
type Discovery struct {
	rootDir string
	global  *ignore.GitIgnore
	extra   []compiledPattern
	logger  *log.Logger
}

// New builds a Discovery rooted at rootDir. extraIgnore holds path glob
// patterns excluded in addition to any .gitignore rules.
func New(rootDir string, extraIgnore []string, logger *log.Logger) (*Discovery, error) {
	d := &Discovery{rootDir: rootDir, logger: logger}

	gitignorePath := filepath.Join(rootDir, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		spec, err := ignore.CompileIgnoreFile(gitignorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s: %w", gitignorePath, err)
		}
		d.global = spec
	}

	for _, pattern := range extraIgnore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		d.extra = append(d.extra, compiledPattern{pattern: pattern, glob: g})
	}
	return d, nil
}

// FindFiles returns every file under the root whose base name matches one of
// the given patterns, in walk order. Matching is against the full name, not a
// substring.
func (d *Discovery) FindFiles(patterns []string) ([]string, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, compiledPattern{pattern: pattern, glob: g})
	}

	var matches []string
	if err := d.walk(d.rootDir, nil, compiled, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (d *Discovery) walk(dir string, locals []localSpec, patterns []compiledPattern, matches *[]string) error {
	// The root .gitignore is already loaded as the global spec; only
	// intermediate directories contribute local specs. One that cannot be
	// read contributes no exclusions and traversal continues.
	if dir != d.rootDir {
		localPath := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(localPath); err == nil {
			spec, err := ignore.CompileIgnoreFile(localPath)
			if err != nil {
				d.logger.Printf("Error processing %s: %v", localPath, err)
			} else {
				locals = append(locals, localSpec{dir: dir, spec: spec})
			}
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if d.excluded(path, locals) {
			continue
		}
		if entry.IsDir() {
			if err := d.walk(path, locals, patterns, matches); err != nil {
				return err
			}
			continue
		}
		for _, cp := range patterns {
			if cp.glob.Match(entry.Name()) {
				*matches = append(*matches, path)
				break
			}
		}
	}
	return nil
}

// excluded applies the root .gitignore, the accumulated local .gitignore
// specs, and the configured extra patterns. Excluded directories are pruned
// by the caller, so their contents are never visited.
func (d *Discovery) excluded(path string, locals []localSpec) bool {
	rel, err := filepath.Rel(d.rootDir, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	if d.global != nil && d.global.MatchesPath(rel) {
		return true
	}
	for _, ls := range locals {
		lrel, err := filepath.Rel(ls.dir, path)
		if err != nil {
			continue
		}
		if ls.spec.MatchesPath(filepath.ToSlash(lrel)) {
			return true
		}
	}
	for _, cp := range d.extra {
		if cp.glob.Match(rel) {
			return true
		}
	}
	return false
}
