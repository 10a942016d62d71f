// Package exams implements the command that lists the published practice
// exams from the exam feed.
package exams

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"saisatyanet/jobboard/cmd/root"
	"saisatyanet/jobboard/internal/export"
	"saisatyanet/jobboard/internal/feed"
	"saisatyanet/jobboard/internal/feederror"
	"saisatyanet/jobboard/internal/logging"
	"saisatyanet/jobboard/internal/views"
)

// Cmd is the exams command
var Cmd = &cobra.Command{
	Use:   "exams",
	Short: "Fetch the exam feed and print the published practice exams.",
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	if root.Cfg.Feed.ExamsURL == "" {
		return fmt.Errorf("no exam feed configured: set feed.exams_url or JOBBOARD_FEED_EXAMS_URL")
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	service := feed.NewService(root.Cfg, logger)

	result, err := service.Exams.Fetch(cmd.Context(), root.SharedFlags.Force)
	if err != nil {
		_, message := feederror.Classify(err)
		cmd.PrintErrln(message)
		return err
	}

	published := views.PublishedExams(result.Data)
	logger.Info("Fetched exams",
		logging.Field{Key: logging.FieldCount, Value: len(published)})

	if root.SharedFlags.Output != "" {
		return export.WriteCSV(published, root.SharedFlags.Output, logger)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(published)
}
