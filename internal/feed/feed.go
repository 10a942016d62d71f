// Package feed wires the configured feeds into ready-to-use fetch clients.
// It is the single place where the parse, map, pin and cache stages are
// composed; commands and the HTTP API consume the assembled Service.
package feed

import (
	"saisatyanet/jobboard/internal/config"
	"saisatyanet/jobboard/internal/csvparse"
	"saisatyanet/jobboard/internal/fetcher"
	"saisatyanet/jobboard/internal/logging"
	"saisatyanet/jobboard/internal/models"
	"saisatyanet/jobboard/internal/sheetparser"
	"saisatyanet/jobboard/internal/store"
	"saisatyanet/jobboard/internal/views"
)

// Service bundles the feed clients for the application. Exams is nil when no
// exam feed is configured.
type Service struct {
	Jobs    *fetcher.Client[[]models.JobPosting]
	Exams   *fetcher.Client[[]models.MockExam]
	Virtual []views.VirtualFacet
}

// NewService assembles the fetch clients from configuration. The jobs
// pipeline prepends the pinned postings after mapping, so pinned entries are
// cached with the batch and never participate in column validation.
func NewService(cfg *config.Config, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	pinned := store.NewPinnedStore(cfg.Pinned.File, logger)

	jobs := fetcher.NewClient(cfg.Feed.JobsURL, func(records []csvparse.Record) ([]models.JobPosting, error) {
		postings, err := sheetparser.MapPostings(records, logger)
		if err != nil {
			return nil, err
		}
		return append(pinned.Load(), postings...), nil
	}, logger.WithField(logging.FieldFeed, "jobs"))
	jobs.TTL = cfg.CacheTTL()
	jobs.HTTPClient.Timeout = cfg.Timeout()

	service := &Service{
		Jobs:    jobs,
		Virtual: views.DefaultVirtualFacets(),
	}

	if cfg.Feed.ExamsURL != "" {
		exams := fetcher.NewClient(cfg.Feed.ExamsURL, func(records []csvparse.Record) ([]models.MockExam, error) {
			return sheetparser.MapExams(records, logger)
		}, logger.WithField(logging.FieldFeed, "exams"))
		exams.TTL = cfg.CacheTTL()
		exams.HTTPClient.Timeout = cfg.Timeout()
		service.Exams = exams
	}

	return service
}
