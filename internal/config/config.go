package config

// Config is the complete devinfo configuration. It can be loaded from
// .devinfo.yml at the scanned root with environment variable overrides.
type Config struct {
	Patterns PatternsConfig `yaml:"patterns" mapstructure:"patterns"`
	Compose  ComposeConfig  `yaml:"compose" mapstructure:"compose"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Unified  bool           `yaml:"unified" mapstructure:"unified"`
}

// PatternsConfig names the files each extractor scans for. Patterns match
// the file's full base name; glob syntax is allowed.
type PatternsConfig struct {
	Dockerfile   []string `yaml:"dockerfile" mapstructure:"dockerfile"`
	Tasks        []string `yaml:"tasks" mapstructure:"tasks"`
	Launch       []string `yaml:"launch" mapstructure:"launch"`
	Devcontainer []string `yaml:"devcontainer" mapstructure:"devcontainer"`
	Ignore       []string `yaml:"ignore" mapstructure:"ignore"` // path globs excluded on top of .gitignore rules
}

// ComposeConfig locates the docker-compose file. The path is resolved
// against the process working directory, not the scanned root; this matches
// the historical behavior of the tool.
type ComposeConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// OutputConfig controls where the summary lands and which sentinel markers
// bound the patched region.
type OutputConfig struct {
	Path        string `yaml:"path" mapstructure:"path"`
	StartMarker string `yaml:"start_marker" mapstructure:"start_marker"`
	EndMarker   string `yaml:"end_marker" mapstructure:"end_marker"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Patterns: PatternsConfig{
			Dockerfile:   []string{"Dockerfile"},
			Tasks:        []string{"tasks.json"},
			Launch:       []string{"launch.json"},
			Devcontainer: []string{"devcontainer.json"},
		},
		Compose: ComposeConfig{
			Path: "docker-compose.yml",
		},
		Output: OutputConfig{
			Path:        "README.md",
			StartMarker: "<!-- README_DEVINFO:START -->",
			EndMarker:   "<!-- README_DEVINFO:END -->",
		},
	}
}
