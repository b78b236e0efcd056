package report

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// Watcher regenerates the summary whenever a relevant file under the scan
// root changes. Events are debounced so an editor save burst triggers a
// single rebuild.
type Watcher struct {
	gen          *Generator
	watcher      *fsnotify.Watcher
	patterns     []glob.Glob
	composeBase  string
	debounceTime time.Duration
	logger       *log.Logger
}

// NewWatcher creates a file watcher covering every directory under the
// generator's root except .git.
func NewWatcher(gen *Generator) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	var patterns []glob.Glob
	for _, group := range [][]string{
		gen.cfg.Patterns.Dockerfile,
		gen.cfg.Patterns.Tasks,
		gen.cfg.Patterns.Launch,
		gen.cfg.Patterns.Devcontainer,
	} {
		for _, pattern := range group {
			g, err := glob.Compile(pattern)
			if err != nil {
				fsw.Close()
				return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
			}
			patterns = append(patterns, g)
		}
	}

	w := &Watcher{
		gen:          gen,
		watcher:      fsw,
		patterns:     patterns,
		composeBase:  filepath.Base(gen.cfg.Compose.Path),
		debounceTime: 500 * time.Millisecond,
		logger:       gen.logger,
	}

	if err := w.addDirectoriesRecursively(gen.rootDir); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			// New directories need watching before their contents change.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirectoriesRecursively(event.Name); err != nil {
						w.logger.Printf("Error watching %s: %v", event.Name, err)
					}
				}
			}
			if !w.relevant(event.Name) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(w.debounceTime)
			} else {
				debounce.Stop()
				debounce.Reset(w.debounceTime)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			if _, err := w.gen.Run(); err != nil {
				w.logger.Printf("Regeneration failed: %v", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Printf("Watcher error: %v", err)
		}
	}
}

// relevant reports whether a change to the named file can alter the summary.
func (w *Watcher) relevant(name string) bool {
	base := filepath.Base(name)
	if base == ".gitignore" || base == w.composeBase {
		return true
	}
	for _, g := range w.patterns {
		if g.Match(base) {
			return true
		}
	}
	return false
}

func (w *Watcher) addDirectoriesRecursively(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}
