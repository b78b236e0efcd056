package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd generates the development info summary when invoked without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "devinfo [project-root]",
	Short: "Summarize developer tooling configuration into README.md",
	Long: `Devinfo scans a project tree for developer tooling configuration
(Dockerfiles, docker-compose services, VS Code tasks, launch configurations
and devcontainer definitions), extracts a structured summary and patches it
into README.md between sentinel markers.

Examples:
  # Summarize the current directory
  devinfo

  # Summarize another project and add the unified overview table
  devinfo ../service --unified

  # Keep the summary current while editing
  devinfo --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <project-root>/.devinfo.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SilenceUsage = true
}
