package extract

import (
	"log"
	"path/filepath"
	"sort"
	"strings"

	"devinfo/internal/parse"
	"devinfo/internal/render"
)

// ComposeService is one service row of the compose summary.
type ComposeService struct {
	Service     string
	Image       string // "(custom)" when the service builds from source
	Ports       string // comma-joined
	Volumes     string // inline table
	Environment string // inline table of host-injected variables
	Build       any    // raw build specification, passed through
}

// Compose summarizes one docker-compose file.
type Compose struct {
	File     string
	Services []ComposeService
}

// ComposeAt extracts a summary row per declared service, sorted by service
// name so output is stable across runs. A missing or unparseable file yields
// an empty record.
func ComposeAt(path, rootDir string, logger *log.Logger) Compose {
	c := Compose{File: path}
	if rel, err := filepath.Rel(rootDir, path); err == nil {
		c.File = filepath.ToSlash(rel)
	}

	services, ok := composeServices(path, logger)
	if !ok {
		return c
	}

	for _, name := range sortedKeys(services) {
		svc, ok := services[name].(map[string]any)
		if !ok {
			continue
		}
		image := "(custom)"
		if v, ok := svc["image"]; ok {
			image = toString(v)
		}
		c.Services = append(c.Services, ComposeService{
			Service:     name,
			Image:       image,
			Ports:       joinPorts(svc["ports"]),
			Volumes:     volumesTable(svc["volumes"]),
			Environment: environmentTable(svc["environment"]),
			Build:       svc["build"],
		})
	}
	return c
}

// ComposeDockerfiles resolves every service's build.dockerfile reference to
// an absolute path, so build files with non-default names still get reported.
// References resolve against the compose file's directory.
func ComposeDockerfiles(path string, logger *log.Logger) []string {
	services, ok := composeServices(path, logger)
	if !ok {
		return nil
	}

	var paths []string
	for _, name := range sortedKeys(services) {
		svc, ok := services[name].(map[string]any)
		if !ok {
			continue
		}
		build, ok := svc["build"].(map[string]any)
		if !ok {
			continue
		}
		dockerfile, ok := build["dockerfile"].(string)
		if !ok {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(filepath.Dir(path), dockerfile))
		if err != nil {
			continue
		}
		paths = append(paths, abs)
	}
	return paths
}

func composeServices(path string, logger *log.Logger) (map[string]any, bool) {
	data, ok := parse.YAMLFile(path, logger)
	if !ok {
		return nil, false
	}
	root, ok := data.(map[string]any)
	if !ok {
		return nil, false
	}
	services, ok := root["services"].(map[string]any)
	return services, ok
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// joinPorts renders a declared port list. YAML may decode bare numeric ports
// as integers, so entries are stringified individually.
func joinPorts(v any) string {
	list, ok := v.([]any)
	if !ok {
		return ""
	}
	ports := make([]string, 0, len(list))
	for _, item := range list {
		ports = append(ports, toString(item))
	}
	return strings.Join(ports, ", ")
}

// volumesTable splits host:container:mode entries into an inline table; a
// bare "." host is shown as the project directory. Long-form volume maps are
// not summarized.
func volumesTable(v any) string {
	list, ok := v.([]any)
	if !ok {
		return ""
	}
	rows := make([][]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		parts := strings.SplitN(s, ":", 3)
		host, container, mode := parts[0], "", ""
		if len(parts) > 1 {
			container = parts[1]
		}
		if len(parts) > 2 {
			mode = parts[2]
		}
		if host == "." {
			host = "(Project directory)"
		}
		rows = append(rows, []string{host, container, mode})
	}
	return render.InlineTable([]string{"Host", "Container", "Mode"}, rows)
}

// environmentTable lists the variables whose value is injected from the host
// through a ${VAR} substitution. The environment may be declared as a mapping
// or as a list of KEY=VALUE strings.
func environmentTable(v any) string {
	env := make(map[string]string)
	switch val := v.(type) {
	case map[string]any:
		for key, raw := range val {
			if s, ok := raw.(string); ok {
				env[key] = s
			}
		}
	case []any:
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if key, value, found := strings.Cut(s, "="); found {
				env[key] = value
			}
		}
	}

	var keys []string
	for key, value := range env {
		if strings.Contains(value, "${") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{"`$" + key + "`"})
	}
	return render.InlineTable([]string{"Host ENV variable"}, rows)
}
