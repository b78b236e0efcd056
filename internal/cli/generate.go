package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"devinfo/internal/config"
	"devinfo/internal/report"
)

var (
	unifiedFlag bool
	quietFlag   bool
	watchFlag   bool
	outputFlag  string
	composeFlag string
)

func init() {
	rootCmd.Flags().BoolVar(&unifiedFlag, "unified", false, "Add a unified configuration summary table")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress output")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for configuration changes and regenerate")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Target document (default README.md in the working directory)")
	rootCmd.Flags().StringVar(&composeFlag, "compose-file", "", "docker-compose file, resolved against the working directory (default docker-compose.yml)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C; only watch mode blocks
	// long enough to need it.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	rootDir := "."
	if len(args) > 0 {
		rootDir = args[0]
	}

	cfg, err := loadConfig(rootDir)
	if err != nil {
		return err
	}
	if unifiedFlag {
		cfg.Unified = true
	}
	if outputFlag != "" {
		cfg.Output.Path = outputFlag
	}
	if composeFlag != "" {
		cfg.Compose.Path = composeFlag
	}

	flags := 0
	if verbose {
		flags = log.LstdFlags
	}
	logger := log.New(os.Stderr, "", flags)

	gen, err := report.New(cfg, rootDir, logger, NewCLIProgressReporter(quietFlag))
	if err != nil {
		return fmt.Errorf("failed to set up generator: %w", err)
	}

	if _, err := gen.Run(); err != nil {
		return err
	}

	if watchFlag {
		w, err := report.NewWatcher(gen)
		if err != nil {
			return fmt.Errorf("failed to start watch mode: %w", err)
		}
		if !quietFlag {
			logger.Printf("Watching %s for configuration changes...", gen.RootDir())
		}
		return w.Run(ctx)
	}
	return nil
}

// loadConfig prefers an explicit --config file over the project-root search.
func loadConfig(rootDir string) (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.LoadFromDir(rootDir)
}
