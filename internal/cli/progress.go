package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"devinfo/internal/report"
)

// CLIProgressReporter implements progress reporting with a progress bar.
type CLIProgressReporter struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{quiet: quiet}
}

func (c *CLIProgressReporter) OnDiscoveryStart() {
	if c.quiet {
		return
	}
	log.Println("Discovering configuration files...")
}

func (c *CLIProgressReporter) OnDiscoveryComplete(configFiles int) {
	if c.quiet {
		return
	}
	log.Printf("Processing %d configuration files\n", configFiles)
}

func (c *CLIProgressReporter) OnExtractionStart(totalFiles int) {
	if c.quiet || totalFiles == 0 {
		return
	}
	c.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Extracting"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnFileProcessed(path string) {
	if c.bar != nil {
		c.bar.Add(1)
	}
}

func (c *CLIProgressReporter) OnComplete(stats *report.Stats, elapsed time.Duration) {
	if c.quiet {
		return
	}
	log.Printf("Found %d tasks, %d launch configurations, %d devcontainers, %d Dockerfiles, %d compose services in %.2fs\n",
		stats.Tasks, stats.LaunchConfigs, stats.Devcontainers, stats.Dockerfiles,
		stats.ComposeServices, elapsed.Seconds())
}
