// Package store loads the pinned announcements that are injected ahead of the
// sheet-sourced postings.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"saisatyanet/jobboard/internal/dateutils"
	"saisatyanet/jobboard/internal/logging"
	"saisatyanet/jobboard/internal/models"

	"gopkg.in/yaml.v3"
)

// pinnedEntry is the YAML shape of one pinned posting. Dates are not part of
// the file: a pinned entry always receives the load-time clock as its start
// date so it sorts to the top of recency views, and never carries a deadline.
type pinnedEntry struct {
	ID             string `yaml:"id"`
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	Category       string `yaml:"category"`
	EmploymentType string `yaml:"employment_type"`
	Link           string `yaml:"link"`
}

type pinnedFile struct {
	Pinned []pinnedEntry `yaml:"pinned"`
}

// PinnedStore resolves pinned postings from a YAML file, falling back to the
// built-in announcement when no file is configured or found. Pinned postings
// bypass column validation entirely; they never came from the sheet.
type PinnedStore struct {
	File   string
	Clock  func() time.Time
	logger logging.Logger
}

// NewPinnedStore creates a store reading from the given file path. An empty
// path means "use the default locations". A nil logger gets a default.
func NewPinnedStore(file string, logger logging.Logger) *PinnedStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &PinnedStore{
		File:   file,
		Clock:  time.Now,
		logger: logger,
	}
}

// Load returns the pinned postings. A missing or unreadable file is not an
// error: the built-in default applies so the catalog never loses its pinned
// announcement to a config problem.
func (s *PinnedStore) Load() []models.JobPosting {
	path, err := s.findFile()
	if err != nil {
		s.logger.Debug("No pinned postings file, using built-in default")
		return s.defaultPinned()
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read pinned postings file, using built-in default")
		return s.defaultPinned()
	}

	var file pinnedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		s.logger.WithError(err).Warn("Failed to parse pinned postings file, using built-in default")
		return s.defaultPinned()
	}
	if len(file.Pinned) == 0 {
		return nil
	}

	now := s.Clock()
	postings := make([]models.JobPosting, 0, len(file.Pinned))
	for i, entry := range file.Pinned {
		postings = append(postings, models.JobPosting{
			ID:              defaultID(entry.ID, i),
			Title:           entry.Title,
			Description:     entry.Description,
			Category:        entry.Category,
			StartDate:       dateutils.RawDateFromTime(now),
			EmploymentType:  entry.EmploymentType,
			SourceSheetLink: entry.Link,
		})
	}

	s.logger.Info("Loaded pinned postings",
		logging.Field{Key: logging.FieldCount, Value: len(postings)})
	return postings
}

func (s *PinnedStore) findFile() (string, error) {
	candidates := []string{s.File}
	if s.File == "" {
		candidates = []string{"pinned.yaml", filepath.Join("config", "pinned.yaml")}
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", os.ErrNotExist
}

// defaultPinned is the announcement shipped with the application, kept for
// deployments that never configure a pinned file.
func (s *PinnedStore) defaultPinned() []models.JobPosting {
	return []models.JobPosting{
		{
			ID:              "static-rrb-group-d",
			Title:           "RRB Group - D City Intimation",
			Description:     "Direct link to RRB Group-D candidate login for city intimation, score card, and shortlist.",
			Category:        "RRB",
			StartDate:       dateutils.RawDateFromTime(s.Clock()),
			EmploymentType:  "Click Here",
			SourceSheetLink: "https://rrb.digialm.com//EForms/configuredHtml/33015/96410/login.html",
		},
	}
}

func defaultID(id string, index int) string {
	if id == "" {
		return fmt.Sprintf("pinned-%d", index)
	}
	return id
}
