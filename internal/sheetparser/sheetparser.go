// Package sheetparser maps raw sheet records onto typed entities and enforces
// the structural contract of the feed.
package sheetparser

import (
	"fmt"

	"saisatyanet/jobboard/internal/csvparse"
	"saisatyanet/jobboard/internal/dateutils"
	"saisatyanet/jobboard/internal/feederror"
	"saisatyanet/jobboard/internal/logging"
	"saisatyanet/jobboard/internal/models"
)

// RequiredHeaders are the columns a postings sheet must carry, in the order
// they are reported when missing. Lookup is against lower-cased trimmed keys.
var RequiredHeaders = []string{"job title", "description", "last date", "start date", "category"}

// MapPostings converts parsed sheet records into JobPosting entities.
//
// An empty record set is a valid "no postings" result. A non-empty set whose
// first record lacks any required column fails with a DataFormatError naming
// every missing column; that message reaches end users verbatim. Blank
// required fields fall back to sentinel values, optional columns pass through
// as-is.
func MapPostings(records []csvparse.Record, logger logging.Logger) ([]models.JobPosting, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if len(records) == 0 {
		logger.Info("Sheet contained no posting rows")
		return nil, nil
	}

	if missing := missingHeaders(records[0], RequiredHeaders); len(missing) > 0 {
		logger.Error("Postings sheet is missing required columns",
			logging.Field{Key: logging.FieldCount, Value: len(missing)})
		return nil, &feederror.DataFormatError{MissingColumns: missing}
	}

	postings := make([]models.JobPosting, 0, len(records))
	for index, row := range records {
		postings = append(postings, mapPostingRow(row, index))
	}

	logger.Info("Mapped posting rows",
		logging.Field{Key: logging.FieldCount, Value: len(postings)})
	return postings, nil
}

func mapPostingRow(row csvparse.Record, index int) models.JobPosting {
	employmentType := row["employment type"]
	if employmentType == "" {
		employmentType = row["job type"]
	}

	return models.JobPosting{
		ID:                defaultString(row["id"], fmt.Sprintf("job-%d", index)),
		Title:             defaultString(row["job title"], models.NoTitle),
		Description:       defaultString(row["description"], models.NoDescription),
		Category:          defaultString(row["category"], models.DefaultCategory),
		StartDate:         dateutils.RawDateFromString(row["start date"]),
		LastDate:          dateutils.RawDateFromString(row["last date"]),
		Salary:            row["salary"],
		Responsibilities:  row["responsibilities"],
		Location:          row["location"],
		EmploymentType:    employmentType,
		RequiredDocuments: row["required documents"],
		SourceSheetLink:   row["link"],
		BlogContent:       row["blog content"],
		SyllabusLink:      row["syllabuslink"],
	}
}

func missingHeaders(first csvparse.Record, required []string) []string {
	var missing []string
	for _, header := range required {
		if _, ok := first[header]; !ok {
			missing = append(missing, header)
		}
	}
	return missing
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
