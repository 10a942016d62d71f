package api

import (
	"net/http"

	"golang.org/x/time/rate"

	"saisatyanet/jobboard/internal/models"
	"saisatyanet/jobboard/internal/views"
)

// handleJobs serves the filtered posting list. Repeated category parameters
// OR together; q matches title or description case-insensitively.
func handleJobs(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := deps.Service.Jobs.Fetch(r.Context(), false)
		if err != nil {
			writeFeedError(w, deps.Logger, err)
			return
		}

		state := views.FilterState{
			Categories: r.URL.Query()["category"],
			Text:       r.URL.Query().Get("q"),
		}
		filtered := views.Filter(result.Data, state, deps.Service.Virtual)
		if filtered == nil {
			filtered = []models.JobPosting{}
		}

		writeJSON(w, http.StatusOK, envelope{
			Data:      filtered,
			Stale:     result.Stale,
			FetchedAt: result.FetchedAt,
		})
	}
}

func handleLatest(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := deps.Service.Jobs.Fetch(r.Context(), false)
		if err != nil {
			writeFeedError(w, deps.Logger, err)
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			Data:      views.Latest(result.Data, deps.Config.Views.LatestCount),
			Stale:     result.Stale,
			FetchedAt: result.FetchedAt,
		})
	}
}

func handleTicker(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := deps.Service.Jobs.Fetch(r.Context(), false)
		if err != nil {
			writeFeedError(w, deps.Logger, err)
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			Data:      views.ActiveTicker(result.Data, deps.Clock(), deps.Config.Views.TickerCount),
			Stale:     result.Stale,
			FetchedAt: result.FetchedAt,
		})
	}
}

func handleCategories(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := deps.Service.Jobs.Fetch(r.Context(), false)
		if err != nil {
			writeFeedError(w, deps.Logger, err)
			return
		}

		facets := views.CategoryFacets(result.Data, deps.Service.Virtual)
		if facets == nil {
			facets = []string{}
		}

		writeJSON(w, http.StatusOK, envelope{
			Data:      facets,
			Stale:     result.Stale,
			FetchedAt: result.FetchedAt,
		})
	}
}

// handleExams serves the published practice exams. Without a configured exam
// feed the list is simply empty.
func handleExams(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Service.Exams == nil {
			writeJSON(w, http.StatusOK, envelope{Data: []models.MockExam{}})
			return
		}

		result, err := deps.Service.Exams.Fetch(r.Context(), false)
		if err != nil {
			writeFeedError(w, deps.Logger, err)
			return
		}

		published := views.PublishedExams(result.Data)
		if published == nil {
			published = []models.MockExam{}
		}

		writeJSON(w, http.StatusOK, envelope{
			Data:      published,
			Stale:     result.Stale,
			FetchedAt: result.FetchedAt,
		})
	}
}

// handleRefresh forces a refetch of the jobs feed, bypassing the TTL.
func handleRefresh(deps Deps, limiter *rate.Limiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			writeJSON(w, http.StatusTooManyRequests, errorBody{
				Error: "Refresh limit reached, try again later.",
				Kind:  "rate_limited",
			})
			return
		}

		result, err := deps.Service.Jobs.Fetch(r.Context(), true)
		if err != nil {
			writeFeedError(w, deps.Logger, err)
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			Data:      result.Data,
			Stale:     result.Stale,
			FetchedAt: result.FetchedAt,
		})
	}
}
