// Package report wires discovery, extraction and rendering together and
// patches the generated summary into the target document.
package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"devinfo/internal/config"
	"devinfo/internal/extract"
	"devinfo/internal/render"
	"devinfo/internal/scanner"
)

// Stats counts what one run found.
type Stats struct {
	Tasks           int
	LaunchConfigs   int
	Devcontainers   int
	Dockerfiles     int
	ComposeFiles    int
	ComposeServices int
}

// Generator runs the extraction pipeline for one project root.
type Generator struct {
	cfg      *config.Config
	rootDir  string
	logger   *log.Logger
	progress ProgressReporter
}

// New creates a Generator. A nil logger falls back to the standard logger and
// a nil progress reporter discards events.
func New(cfg *config.Config, rootDir string, logger *log.Logger, progress ProgressReporter) (*Generator, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}
	if logger == nil {
		logger = log.Default()
	}
	if progress == nil {
		progress = NoopProgress{}
	}
	return &Generator{cfg: cfg, rootDir: abs, logger: logger, progress: progress}, nil
}

// RootDir returns the resolved scan root.
func (g *Generator) RootDir() string {
	return g.rootDir
}

// Run generates the summary and patches it into the output document. The
// patch is the last step: a failure during extraction leaves the document
// untouched.
func (g *Generator) Run() (*Stats, error) {
	content, stats, err := g.Content()
	if err != nil {
		return nil, err
	}

	patcher := render.Patcher{
		StartMarker: g.cfg.Output.StartMarker,
		EndMarker:   g.cfg.Output.EndMarker,
	}
	if err := patcher.Apply(g.cfg.Output.Path, content); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", g.cfg.Output.Path, err)
	}
	g.logger.Printf("Development info updated in %s", g.cfg.Output.Path)
	return stats, nil
}

// Content builds the markdown that goes between the sentinel markers. A root
// with no recognized configuration files yields the empty string.
func (g *Generator) Content() (string, *Stats, error) {
	start := time.Now()
	g.progress.OnDiscoveryStart()

	disc, err := scanner.New(g.rootDir, g.cfg.Patterns.Ignore, g.logger)
	if err != nil {
		return "", nil, err
	}

	dockerfiles, err := disc.FindFiles(g.cfg.Patterns.Dockerfile)
	if err != nil {
		return "", nil, err
	}
	tasksFiles, err := disc.FindFiles(g.cfg.Patterns.Tasks)
	if err != nil {
		return "", nil, err
	}
	launchFiles, err := disc.FindFiles(g.cfg.Patterns.Launch)
	if err != nil {
		return "", nil, err
	}
	devcontainerFiles, err := disc.FindFiles(g.cfg.Patterns.Devcontainer)
	if err != nil {
		return "", nil, err
	}

	// The compose path resolves against the working directory, not the
	// scanned root.
	composePath := g.cfg.Compose.Path
	compose := extract.ComposeAt(composePath, g.rootDir, g.logger)
	dockerfiles = mergeDockerfiles(dockerfiles, extract.ComposeDockerfiles(composePath, g.logger))

	total := len(dockerfiles) + len(tasksFiles) + len(launchFiles) + len(devcontainerFiles)
	g.progress.OnDiscoveryComplete(total)
	g.progress.OnExtractionStart(total)

	var tasks []extract.Task
	for _, path := range tasksFiles {
		tasks = append(tasks, extract.Tasks(path, g.logger)...)
		g.progress.OnFileProcessed(path)
	}

	var launches []extract.LaunchConfig
	for _, path := range launchFiles {
		launches = append(launches, extract.LaunchConfigs(path, g.logger)...)
		g.progress.OnFileProcessed(path)
	}

	var devcontainers []extract.Devcontainer
	for _, path := range devcontainerFiles {
		if dev, ok := extract.DevcontainerAt(path, g.rootDir, g.logger); ok {
			devcontainers = append(devcontainers, dev)
		}
		g.progress.OnFileProcessed(path)
	}

	var buildFiles []extract.BuildFileRecord
	for _, path := range dockerfiles {
		buildFiles = append(buildFiles, extract.BuildFileAt(path, g.rootDir, g.logger))
		g.progress.OnFileProcessed(path)
	}

	stats := &Stats{
		Tasks:           len(tasks),
		LaunchConfigs:   len(launches),
		Devcontainers:   len(devcontainers),
		Dockerfiles:     len(buildFiles),
		ComposeServices: len(compose.Services),
	}
	if len(compose.Services) > 0 {
		stats.ComposeFiles = 1
	}

	var b strings.Builder
	writeSection := func(title string, headers []string, rows [][]string) {
		table := render.MarkdownTable(headers, rows)
		if table == "" {
			return
		}
		b.WriteString("## " + title + "\n")
		b.WriteString(table)
		b.WriteString("\n\n")
	}

	composeRows := make([][]string, 0, len(compose.Services))
	for _, svc := range compose.Services {
		composeRows = append(composeRows, []string{svc.Service, svc.Image, svc.Ports, svc.Volumes, svc.Environment})
	}
	writeSection("Docker Compose Configurations",
		[]string{"Service", "Image", "Ports", "Volumes", "Injected ENV variables"}, composeRows)

	taskRows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		taskRows = append(taskRows, []string{task.Label, task.Detail, task.Command, task.Inputs})
	}
	writeSection("VS Code Tasks", []string{"Name", "Description", "Command", "Inputs"}, taskRows)

	launchRows := make([][]string, 0, len(launches))
	for _, lc := range launches {
		launchRows = append(launchRows, []string{lc.Name, lc.Type, lc.Inputs})
	}
	writeSection("VS Code Launch Configurations", []string{"Name", "Type", "Inputs"}, launchRows)

	devRows := make([][]string, 0, len(devcontainers))
	for _, dev := range devcontainers {
		devRows = append(devRows, []string{dev.Extensions})
	}
	writeSection("Devcontainer Configurations", []string{"Extensions"}, devRows)

	dockerfileRows := make([][]string, 0, len(buildFiles))
	for _, bf := range buildFiles {
		dockerfileRows = append(dockerfileRows, []string{bf.File, bf.BaseImage, bf.ExposedPorts})
	}
	writeSection("Dockerfiles", []string{"File", "Base Image", "Exposed Ports"}, dockerfileRows)

	if g.cfg.Unified {
		rows := [][]string{
			{"VS Code Tasks", fmt.Sprintf("%d tasks found", stats.Tasks)},
			{"VS Code Launch", fmt.Sprintf("%d launch configurations found", stats.LaunchConfigs)},
			{"Devcontainer", fmt.Sprintf("%d devcontainer configs found", stats.Devcontainers)},
			{"Dockerfiles", fmt.Sprintf("%d Dockerfiles found", stats.Dockerfiles)},
			{"Docker Compose", fmt.Sprintf("%d docker-compose files found", stats.ComposeFiles)},
		}
		writeSection("Unified Configuration Summary", []string{"Config Type", "Details"}, rows)
	}

	g.progress.OnComplete(stats, time.Since(start))
	return b.String(), stats, nil
}

// mergeDockerfiles unions compose-referenced build files into the discovered
// set, deduplicating while keeping discovery order first.
func mergeDockerfiles(discovered, referenced []string) []string {
	seen := make(map[string]struct{}, len(discovered))
	out := make([]string, 0, len(discovered)+len(referenced))
	for _, path := range discovered {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	for _, path := range referenced {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	return out
}
