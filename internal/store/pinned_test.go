package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saisatyanet/jobboard/internal/dateutils"
	"saisatyanet/jobboard/internal/logging"
)

var testNow = time.Date(2025, time.July, 15, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, yamlContent string) *PinnedStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pinned.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0600))
	store := NewPinnedStore(path, &logging.MockLogger{})
	store.Clock = func() time.Time { return testNow }
	return store
}

func TestLoadFromFile(t *testing.T) {
	store := newTestStore(t, `pinned:
  - id: static-ssc-results
    title: SSC CGL Results
    description: Direct link to the SSC CGL result page.
    category: SSC
    employment_type: Click Here
    link: https://ssc.gov.in/results
  - title: Untitled pin
    description: Entry without an explicit id.
    category: Other
`)

	postings := store.Load()

	require.Len(t, postings, 2)
	first := postings[0]
	assert.Equal(t, "static-ssc-results", first.ID)
	assert.Equal(t, "SSC CGL Results", first.Title)
	assert.Equal(t, "SSC", first.Category)
	assert.Equal(t, "Click Here", first.EmploymentType)
	assert.Equal(t, "https://ssc.gov.in/results", first.SourceSheetLink)

	assert.Equal(t, "pinned-1", postings[1].ID)
}

func TestLoadStampsClockAsStartDate(t *testing.T) {
	store := newTestStore(t, `pinned:
  - id: pin
    title: Pin
    category: Other
`)

	postings := store.Load()

	require.Len(t, postings, 1)
	start, ok := dateutils.Normalize(postings[0].StartDate)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, postings[0].LastDate.IsEmpty(), "pinned postings carry no deadline")
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	store := NewPinnedStore(filepath.Join(t.TempDir(), "absent.yaml"), &logging.MockLogger{})
	store.Clock = func() time.Time { return testNow }

	postings := store.Load()

	require.Len(t, postings, 1)
	assert.Equal(t, "static-rrb-group-d", postings[0].ID)
	assert.Equal(t, "RRB", postings[0].Category)
	start, ok := dateutils.Normalize(postings[0].StartDate)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestLoadMalformedYAMLFallsBackToDefault(t *testing.T) {
	store := newTestStore(t, "pinned: [not closed")

	postings := store.Load()

	require.Len(t, postings, 1)
	assert.Equal(t, "static-rrb-group-d", postings[0].ID)
}

func TestLoadEmptyListDisablesPinned(t *testing.T) {
	// An explicit empty list is the opt-out: unlike a missing file it does not
	// fall back to the built-in announcement.
	store := newTestStore(t, "pinned: []")

	assert.Empty(t, store.Load())
}
