// Package fetcher retrieves a remote CSV feed, runs it through the parse and
// map pipeline, and caches the typed result with a TTL.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"saisatyanet/jobboard/internal/csvparse"
	"saisatyanet/jobboard/internal/feederror"
	"saisatyanet/jobboard/internal/logging"

	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL is how long a fetched result stays valid before a call goes
	// back to the network.
	DefaultTTL = 5 * time.Minute

	// DefaultTimeout bounds a single feed request. The transport default alone
	// would let a wedged upstream stall callers indefinitely.
	DefaultTimeout = 15 * time.Second
)

// MapFunc converts parsed sheet records into the typed result the client
// caches. It may fail with a DataFormatError when the sheet is structurally
// unusable.
type MapFunc[T any] func(records []csvparse.Record) (T, error)

// Result is one fetch outcome. Stale is set when the data was served from the
// cache without a network round trip.
type Result[T any] struct {
	Data      T
	FetchedAt time.Time
	Stale     bool
}

// Client fetches one CSV feed and caches the mapped result.
//
// Overlapping fetches of the same feed are collapsed into a single network
// call; every waiter receives the same outcome. The clock is injectable so
// tests control TTL expiry.
type Client[T any] struct {
	URL        string
	TTL        time.Duration
	HTTPClient *http.Client
	Clock      func() time.Time

	mapFn  MapFunc[T]
	cache  Cache[T]
	group  singleflight.Group
	logger logging.Logger
}

// NewClient creates a feed client with the default TTL and timeout.
// A nil logger gets a default.
func NewClient[T any](url string, mapFn MapFunc[T], logger logging.Logger) *Client[T] {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Client[T]{
		URL:        url,
		TTL:        DefaultTTL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Clock:      time.Now,
		mapFn:      mapFn,
		logger:     logger.WithField(logging.FieldURL, url),
	}
}

// Fetch returns the feed's typed contents.
//
// Unless force is set, a cache entry younger than the TTL short-circuits the
// network entirely. Otherwise the feed is fetched, parsed and mapped, and the
// cache is replaced wholesale. On any failure the cache is invalidated and the
// error carries its taxonomy type for feederror.Classify.
func (c *Client[T]) Fetch(ctx context.Context, force bool) (Result[T], error) {
	now := c.Clock()

	if !force {
		if data, fetchedAt, ok := c.cache.Get(now, c.TTL); ok {
			c.logger.Debug("Serving feed from cache",
				logging.Field{Key: logging.FieldCacheAge, Value: int(now.Sub(fetchedAt).Seconds())})
			return Result[T]{Data: data, FetchedAt: fetchedAt, Stale: true}, nil
		}
	}

	value, err, _ := c.group.Do(c.URL, func() (interface{}, error) {
		return c.fetchRemote(ctx)
	})
	if err != nil {
		c.cache.Invalidate()
		c.logger.WithError(err).Error("Feed fetch failed, cache invalidated")
		return Result[T]{}, err
	}

	data := value.(T)
	fetchedAt := c.Clock()
	c.cache.Put(data, fetchedAt)
	return Result[T]{Data: data, FetchedAt: fetchedAt}, nil
}

// Cached returns the last successful result regardless of age. Callers may
// show it as a placeholder while a refresh is in flight; the refresh outcome,
// not the placeholder, is authoritative.
func (c *Client[T]) Cached() (Result[T], bool) {
	data, fetchedAt, ok := c.cache.Peek()
	if !ok {
		return Result[T]{}, false
	}
	return Result[T]{Data: data, FetchedAt: fetchedAt, Stale: true}, true
}

func (c *Client[T]) fetchRemote(ctx context.Context) (interface{}, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, &feederror.TransportError{URL: c.URL, Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &feederror.TransportError{URL: c.URL, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &feederror.TransportError{URL: c.URL, Status: resp.StatusCode}
	}

	// A login or error page served with 200 OK must not reach the parser.
	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") {
		return nil, &feederror.TransportError{URL: c.URL, Reason: fmt.Sprintf("non-CSV content type %q", contentType)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &feederror.TransportError{URL: c.URL, Err: err}
	}

	text := strings.TrimPrefix(string(body), "\uFEFF")
	records := csvparse.Parse(text)

	data, err := c.mapFn(records)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Fetched feed",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	return data, nil
}
