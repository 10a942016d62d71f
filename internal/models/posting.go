// Package models defines the typed entities produced by the ingestion pipeline.
package models

import (
	"saisatyanet/jobboard/internal/dateutils"
)

// Sentinel values substituted for blank required fields. Downstream views use
// them to exclude incomplete postings rather than rendering empty strings.
const (
	NoTitle         = "No Title"
	NoDescription   = "No Description"
	DefaultCategory = "Other"
)

// JobPosting is one job or opportunity derived from a single spreadsheet row,
// or injected synthetically (a pinned announcement). Postings are constructed
// once per fetch cycle and treated as immutable; a refetch replaces the whole
// batch.
//
// StartDate and LastDate keep the source representation. Formats vary per row
// and per sheet revision, so they are normalized by dateutils wherever they
// are compared or displayed, never at ingestion.
type JobPosting struct {
	ID                string            `csv:"id" json:"id"`
	Title             string            `csv:"job title" json:"title"`
	Description       string            `csv:"description" json:"description"`
	Category          string            `csv:"category" json:"category"`
	StartDate         dateutils.RawDate `csv:"start date" json:"startDate"`
	LastDate          dateutils.RawDate `csv:"last date" json:"lastDate"`
	Salary            string            `csv:"salary" json:"salary,omitempty"`
	Responsibilities  string            `csv:"responsibilities" json:"responsibilities,omitempty"`
	Location          string            `csv:"location" json:"location,omitempty"`
	EmploymentType    string            `csv:"employment type" json:"employmentType,omitempty"`
	RequiredDocuments string            `csv:"required documents" json:"requiredDocuments,omitempty"`
	SourceSheetLink   string            `csv:"link" json:"sourceSheetLink,omitempty"`
	BlogContent       string            `csv:"blog content" json:"blogContent,omitempty"`
	SyllabusLink      string            `csv:"syllabuslink" json:"syllabusLink,omitempty"`
}

// IsPlaceholder reports whether the posting carries the blank-title sentinel.
// Placeholder postings are excluded from recency-ordered views.
func (p JobPosting) IsPlaceholder() bool {
	return p.Title == NoTitle
}

// HasSyllabus reports whether the posting links a downloadable syllabus.
func (p JobPosting) HasSyllabus() bool {
	return p.SyllabusLink != ""
}
