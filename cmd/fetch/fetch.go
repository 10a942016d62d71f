// Package fetch implements the command that pulls the jobs feed once and
// prints or exports the normalized catalog.
package fetch

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"saisatyanet/jobboard/cmd/root"
	"saisatyanet/jobboard/internal/export"
	"saisatyanet/jobboard/internal/feed"
	"saisatyanet/jobboard/internal/feederror"
	"saisatyanet/jobboard/internal/logging"
)

// Cmd is the fetch command
var Cmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the jobs feed and print or export the normalized postings.",
	Long: `Fetch retrieves the configured jobs sheet, runs it through the parse and
map pipeline and prints the postings as JSON. With --output the postings are
written to a CSV file instead, with raw date values preserved.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	service := feed.NewService(root.Cfg, logger)

	result, err := service.Jobs.Fetch(cmd.Context(), root.SharedFlags.Force)
	if err != nil {
		kind, message := feederror.Classify(err)
		logger.WithError(err).Error("Fetch failed",
			logging.Field{Key: logging.FieldError, Value: string(kind)})
		cmd.PrintErrln(message)
		return err
	}

	logger.Info("Fetched postings",
		logging.Field{Key: logging.FieldCount, Value: len(result.Data)},
		logging.Field{Key: logging.FieldStale, Value: result.Stale})

	if root.SharedFlags.Output != "" {
		return export.WriteCSV(result.Data, root.SharedFlags.Output, logger)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Data)
}
