// Package views computes pure, derived projections over a posting snapshot:
// category facets, filtering, recency ordering and the deadline-windowed
// ticker. Nothing here mutates its input; callers pass the current batch and
// filter state and get a fresh slice back.
package views

import (
	"sort"
	"strings"
	"time"

	"saisatyanet/jobboard/internal/dateutils"
	"saisatyanet/jobboard/internal/models"
)

// View sizes for the home page projections.
const (
	DefaultLatestCount = 4
	DefaultTickerCount = 10
)

// FilterState is the caller-supplied filter selection. Selected categories
// are OR-ed together; the text filter AND-s against the category clause.
type FilterState struct {
	Categories []string
	Text       string
}

// VirtualFacet is a named facet computed from a predicate over postings
// rather than a literal category column. Registering one here is all that is
// needed; facet listing and filter matching both consult the registry.
type VirtualFacet struct {
	Name  string
	Match func(models.JobPosting) bool
}

// DefaultVirtualFacets returns the virtual facets the catalog ships with.
func DefaultVirtualFacets() []VirtualFacet {
	return []VirtualFacet{
		{Name: "Syllabus", Match: models.JobPosting.HasSyllabus},
	}
}

// CategoryFacets returns the distinct non-empty category values across the
// batch, lexicographically sorted, with each virtual facet token appended
// when at least one posting satisfies its predicate.
func CategoryFacets(postings []models.JobPosting, virtual []VirtualFacet) []string {
	seen := make(map[string]struct{})
	var facets []string
	for _, p := range postings {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			facets = append(facets, p.Category)
		}
	}
	sort.Strings(facets)

	for _, vf := range virtual {
		for _, p := range postings {
			if vf.Match(p) {
				facets = append(facets, vf.Name)
				break
			}
		}
	}
	return facets
}

// Filter returns the postings matching the filter state. A posting matches
// when its category is in the selected set (or a selected virtual facet's
// predicate holds, or no categories are selected), and the search text is a
// case-insensitive substring of its title or description (or is empty).
func Filter(postings []models.JobPosting, state FilterState, virtual []VirtualFacet) []models.JobPosting {
	selected := make(map[string]struct{}, len(state.Categories))
	for _, c := range state.Categories {
		selected[c] = struct{}{}
	}
	text := strings.ToLower(state.Text)

	var matched []models.JobPosting
	for _, p := range postings {
		if !categoryMatches(p, selected, virtual) {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Title), text) &&
			!strings.Contains(strings.ToLower(p.Description), text) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func categoryMatches(p models.JobPosting, selected map[string]struct{}, virtual []VirtualFacet) bool {
	if len(selected) == 0 {
		return true
	}
	if _, ok := selected[p.Category]; ok {
		return true
	}
	for _, vf := range virtual {
		if _, ok := selected[vf.Name]; ok && vf.Match(p) {
			return true
		}
	}
	return false
}

// SortByRecency returns the batch ordered by normalized start date,
// newest first. Placeholder-titled postings are dropped, postings with an
// unparseable start date go last, and ties keep their original relative
// order.
func SortByRecency(postings []models.JobPosting) []models.JobPosting {
	type keyed struct {
		posting models.JobPosting
		iso     string
	}
	decorated := make([]keyed, 0, len(postings))
	for _, p := range postings {
		if p.IsPlaceholder() {
			continue
		}
		decorated = append(decorated, keyed{posting: p, iso: dateutils.ToISODate(p.StartDate)})
	}

	sort.SliceStable(decorated, func(i, j int) bool {
		a, b := decorated[i].iso, decorated[j].iso
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a > b
	})

	sorted := make([]models.JobPosting, len(decorated))
	for i, d := range decorated {
		sorted[i] = d.posting
	}
	return sorted
}

// Latest returns the first n postings of the recency ordering.
func Latest(postings []models.JobPosting, n int) []models.JobPosting {
	return head(SortByRecency(postings), n)
}

// ActiveTicker returns up to m recency-ordered postings whose deadline has
// not passed as of now: the last date is absent, unparseable, or on or after
// the current UTC day start. A ticker must never advertise an opportunity
// that can no longer be applied for.
func ActiveTicker(postings []models.JobPosting, now time.Time, m int) []models.JobPosting {
	dayStart := dateutils.StartOfDay(now)

	var active []models.JobPosting
	for _, p := range SortByRecency(postings) {
		if last, ok := dateutils.Normalize(p.LastDate); ok && last.Before(dayStart) {
			continue
		}
		active = append(active, p)
	}
	return head(active, m)
}

// PublishedExams returns only the exams marked published, preserving order.
func PublishedExams(exams []models.MockExam) []models.MockExam {
	var published []models.MockExam
	for _, e := range exams {
		if e.Published {
			published = append(published, e)
		}
	}
	return published
}

func head(postings []models.JobPosting, n int) []models.JobPosting {
	if n < 0 {
		n = 0
	}
	if len(postings) > n {
		postings = postings[:n]
	}
	return postings
}
