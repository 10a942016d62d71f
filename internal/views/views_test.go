package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saisatyanet/jobboard/internal/dateutils"
	"saisatyanet/jobboard/internal/models"
)

// testNow is the fixed clock for window tests: 2025-07-15 10:00 UTC.
var testNow = time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)

func posting(id, title, category, start, last string) models.JobPosting {
	return models.JobPosting{
		ID:          id,
		Title:       title,
		Description: "about " + title,
		Category:    category,
		StartDate:   dateutils.RawDateFromString(start),
		LastDate:    dateutils.RawDateFromString(last),
	}
}

func sampleBatch() []models.JobPosting {
	withSyllabus := posting("j1", "Station Master", "RRB", "10/07/2025", "31/07/2025")
	withSyllabus.SyllabusLink = "https://example.org/syllabus.pdf"

	return []models.JobPosting{
		withSyllabus,
		posting("j2", "Bank Clerk", "Banking", "12/07/2025", "14/07/2025"),
		posting("j3", "Postal Assistant", "Postal", "01/07/2025", ""),
		posting("j4", models.NoTitle, "Other", "13/07/2025", "20/07/2025"),
		posting("j5", "Junior Engineer", "RRB", "garbage", "18/07/2025"),
		posting("j6", "Tax Assistant", "SSC", "14/07/2025", "16/07/2025"),
	}
}

func TestCategoryFacets(t *testing.T) {
	facets := CategoryFacets(sampleBatch(), DefaultVirtualFacets())

	assert.Equal(t, []string{"Banking", "Other", "Postal", "RRB", "SSC", "Syllabus"}, facets)
}

func TestCategoryFacetsNoVirtualMatch(t *testing.T) {
	batch := []models.JobPosting{posting("j1", "Clerk", "Banking", "", "")}

	facets := CategoryFacets(batch, DefaultVirtualFacets())

	assert.Equal(t, []string{"Banking"}, facets)
}

func TestCategoryFacetsSkipsEmpty(t *testing.T) {
	batch := []models.JobPosting{
		posting("j1", "Clerk", "", "", ""),
		posting("j2", "Clerk", "Banking", "", ""),
		posting("j3", "Teller", "Banking", "", ""),
	}

	assert.Equal(t, []string{"Banking"}, CategoryFacets(batch, nil))
}

func TestFilterNoState(t *testing.T) {
	batch := sampleBatch()

	assert.Equal(t, batch, Filter(batch, FilterState{}, DefaultVirtualFacets()))
}

func TestFilterCategories(t *testing.T) {
	batch := sampleBatch()

	filtered := Filter(batch, FilterState{Categories: []string{"RRB", "SSC"}}, nil)

	require.Len(t, filtered, 3)
	for _, p := range filtered {
		assert.Contains(t, []string{"RRB", "SSC"}, p.Category)
	}
	assert.LessOrEqual(t, len(filtered), len(batch))
}

func TestFilterVirtualFacet(t *testing.T) {
	filtered := Filter(sampleBatch(), FilterState{Categories: []string{"Syllabus"}}, DefaultVirtualFacets())

	require.Len(t, filtered, 1)
	assert.Equal(t, "j1", filtered[0].ID)
}

func TestFilterVirtualFacetOrsWithCategories(t *testing.T) {
	filtered := Filter(sampleBatch(),
		FilterState{Categories: []string{"Syllabus", "SSC"}}, DefaultVirtualFacets())

	require.Len(t, filtered, 2)
	assert.Equal(t, "j1", filtered[0].ID)
	assert.Equal(t, "j6", filtered[1].ID)
}

func TestFilterText(t *testing.T) {
	filtered := Filter(sampleBatch(), FilterState{Text: "bank"}, nil)

	require.Len(t, filtered, 1)
	assert.Equal(t, "j2", filtered[0].ID)

	// Description matches too, case-insensitively.
	filtered = Filter(sampleBatch(), FilterState{Text: "ABOUT tax"}, nil)
	require.Len(t, filtered, 1)
	assert.Equal(t, "j6", filtered[0].ID)
}

func TestFilterTextAndCategoryAnded(t *testing.T) {
	filtered := Filter(sampleBatch(),
		FilterState{Categories: []string{"RRB"}, Text: "bank"}, nil)

	assert.Empty(t, filtered)
}

func TestSortByRecency(t *testing.T) {
	sorted := SortByRecency(sampleBatch())

	ids := make([]string, len(sorted))
	for i, p := range sorted {
		ids[i] = p.ID
	}
	// Newest start date first, placeholder title dropped, unparseable last.
	assert.Equal(t, []string{"j6", "j2", "j1", "j3", "j5"}, ids)
}

func TestSortByRecencyStableTies(t *testing.T) {
	batch := []models.JobPosting{
		posting("a", "First", "X", "10/07/2025", ""),
		posting("b", "Second", "X", "10/07/2025", ""),
		posting("c", "Third", "X", "10/07/2025", ""),
	}

	sorted := SortByRecency(batch)

	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
}

func TestSortByRecencyDoesNotMutateInput(t *testing.T) {
	batch := sampleBatch()
	first := batch[0].ID

	SortByRecency(batch)

	assert.Equal(t, first, batch[0].ID)
}

func TestLatest(t *testing.T) {
	latest := Latest(sampleBatch(), DefaultLatestCount)

	require.Len(t, latest, 4)
	assert.Equal(t, "j6", latest[0].ID)
}

func TestLatestShortBatch(t *testing.T) {
	batch := []models.JobPosting{posting("j1", "Clerk", "Banking", "10/07/2025", "")}

	assert.Len(t, Latest(batch, DefaultLatestCount), 1)
}

func TestActiveTickerWindow(t *testing.T) {
	batch := []models.JobPosting{
		posting("past", "Closed role", "X", "10/07/2025", "14/07/2025"),    // yesterday
		posting("today", "Closing today", "X", "11/07/2025", "15/07/2025"), // today
		posting("future", "Open role", "X", "12/07/2025", "31/07/2025"),
		posting("nodate", "No deadline", "X", "13/07/2025", ""),
		posting("baddate", "Bad deadline", "X", "09/07/2025", "soon"),
	}

	active := ActiveTicker(batch, testNow, DefaultTickerCount)

	ids := make([]string, len(active))
	for i, p := range active {
		ids[i] = p.ID
	}
	assert.NotContains(t, ids, "past")
	assert.Equal(t, []string{"nodate", "future", "today", "baddate"}, ids)
}

func TestActiveTickerCap(t *testing.T) {
	var batch []models.JobPosting
	for i := 0; i < 25; i++ {
		batch = append(batch, posting("j"+string(rune('a'+i)), "Role", "X", "10/07/2025", ""))
	}

	assert.Len(t, ActiveTicker(batch, testNow, DefaultTickerCount), DefaultTickerCount)
}

func TestViewsAreIdempotent(t *testing.T) {
	batch := sampleBatch()
	state := FilterState{Categories: []string{"RRB"}, Text: "engineer"}

	assert.Equal(t, Filter(batch, state, DefaultVirtualFacets()), Filter(batch, state, DefaultVirtualFacets()))
	assert.Equal(t, CategoryFacets(batch, DefaultVirtualFacets()), CategoryFacets(batch, DefaultVirtualFacets()))
	assert.Equal(t, SortByRecency(batch), SortByRecency(batch))
	assert.Equal(t, ActiveTicker(batch, testNow, 10), ActiveTicker(batch, testNow, 10))
}

func TestPublishedExams(t *testing.T) {
	exams := []models.MockExam{
		{ExamID: "e1", Published: true},
		{ExamID: "e2"},
		{ExamID: "e3", Published: true},
	}

	published := PublishedExams(exams)

	require.Len(t, published, 2)
	assert.Equal(t, "e1", published[0].ExamID)
	assert.Equal(t, "e3", published[1].ExamID)
}
