// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"saisatyanet/jobboard/internal/config"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Output string
	Force  bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, populated before any
	// subcommand runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "jobboard",
		Short: "Ingest a spreadsheet-backed job feed and serve its catalog views.",
		Long: `jobboard fetches a public Google Sheets CSV export of job postings,
normalizes it into a typed catalog and exposes filtered, sorted and
time-windowed views over a CLI and an HTTP API.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to jobboard!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Force, "force", "f", false, "Bypass the feed cache and refetch")
}
