// Package api exposes the feed and its derived views over HTTP. Handlers only
// consume the fetch clients and the views package; they never touch the cache
// or the parser directly.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"saisatyanet/jobboard/internal/config"
	"saisatyanet/jobboard/internal/feed"
	"saisatyanet/jobboard/internal/feederror"
	"saisatyanet/jobboard/internal/logging"
)

// Deps carries everything the handlers need. Clock is injectable so the
// ticker window is deterministic under test.
type Deps struct {
	Service *feed.Service
	Config  *config.Config
	Logger  logging.Logger
	Clock   func() time.Time
}

// NewRouter builds the HTTP handler. Forced refreshes are rate limited so a
// misbehaving client cannot hammer the upstream sheet.
func NewRouter(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = logging.NewLogrusAdapter("info", "text")
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	refreshLimiter := rate.NewLimiter(
		rate.Every(time.Hour/time.Duration(deps.Config.Server.RefreshesPerHour)), 2)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/jobs", handleJobs(deps))
		r.Get("/jobs/latest", handleLatest(deps))
		r.Get("/jobs/ticker", handleTicker(deps))
		r.Get("/categories", handleCategories(deps))
		r.Get("/exams", handleExams(deps))
		r.Post("/refresh", handleRefresh(deps, refreshLimiter))
	})
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// envelope is the uniform response shape: data plus the cache disposition.
type envelope struct {
	Data      interface{} `json:"data"`
	Stale     bool        `json:"stale"`
	FetchedAt time.Time   `json:"fetchedAt"`
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeFeedError converts a pipeline error to its user-facing message and an
// HTTP status. Upstream problems are the upstream's fault: 502, not 500.
func writeFeedError(w http.ResponseWriter, logger logging.Logger, err error) {
	kind, message := feederror.Classify(err)

	status := http.StatusBadGateway
	if kind == feederror.KindUnexpected {
		status = http.StatusInternalServerError
	}

	logger.WithError(err).Error("Request failed",
		logging.Field{Key: logging.FieldStatus, Value: status})
	writeJSON(w, status, errorBody{Error: message, Kind: string(kind)})
}
