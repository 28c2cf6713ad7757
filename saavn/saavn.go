// Package saavn is a client for the unofficial Saavn catalog API. The
// upstream service is unreliable and answers in two incompatible shapes, so
// the client normalizes everything into cochlea.Track, throttles and bounds
// its outbound calls, and keeps bounded LRU caches for searches and details.
package saavn

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mager/cochlea/cochlea"
	"github.com/mager/cochlea/config"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned by GetTrackDetails when no source can produce the
// track. Callers treat it as an empty result, not a fault.
var ErrNotFound = errors.New("saavn: track not found")

// ErrUnavailable wraps total per-query catalog failure: both search variants
// errored. Callers pattern-match on it and contribute zero candidates for
// the query.
var ErrUnavailable = errors.New("saavn: catalog unavailable")

const defaultSearchLimit = 10

// Settings configures a Client directly; ProvideSaavn maps the process
// config onto it.
type Settings struct {
	BaseURL         string
	Offline         bool
	Throttle        time.Duration
	MaxInflight     int64
	SearchCacheSize int
	DetailCacheSize int
	Timeout         time.Duration
}

// Client is the catalog client. Construct one per process and share it; all
// state (caches, throttle, in-flight ceiling) is owned by the instance.
type Client struct {
	http    *resty.Client
	log     *zap.SugaredLogger
	offline bool

	throttle *rate.Limiter
	inflight *semaphore.Weighted

	// mu guards the caches and the by-id index. Network calls happen
	// outside this lock.
	mu          sync.Mutex
	searchCache *lruCache
	detailCache *lruCache
	seenByID    map[string]cochlea.Track
}

// detailEntry is a detail-cache value; found=false records a negative
// lookup so repeated misses stay cheap.
type detailEntry struct {
	track cochlea.Track
	found bool
}

func New(s Settings, log *zap.SugaredLogger) *Client {
	if s.Throttle <= 0 {
		s.Throttle = 100 * time.Millisecond
	}
	if s.MaxInflight <= 0 {
		s.MaxInflight = 10
	}
	if s.SearchCacheSize <= 0 {
		s.SearchCacheSize = 256
	}
	if s.DetailCacheSize <= 0 {
		s.DetailCacheSize = 512
	}
	if s.Timeout <= 0 {
		s.Timeout = 20 * time.Second
	}

	return &Client{
		http:        resty.New().SetBaseURL(s.BaseURL).SetTimeout(s.Timeout),
		log:         log,
		offline:     s.Offline,
		throttle:    rate.NewLimiter(rate.Every(s.Throttle), 1),
		inflight:    semaphore.NewWeighted(s.MaxInflight),
		searchCache: newLRUCache(s.SearchCacheSize),
		detailCache: newLRUCache(s.DetailCacheSize),
		seenByID:    make(map[string]cochlea.Track),
	}
}

func ProvideSaavn(cfg config.Config, log *zap.SugaredLogger) *Client {
	log.Infow("setting up saavn client", "base_url", cfg.SaavnBaseURL, "offline", cfg.SaavnOffline)
	return New(Settings{
		BaseURL:         cfg.SaavnBaseURL,
		Offline:         cfg.SaavnOffline,
		Throttle:        time.Duration(cfg.ThrottleMs) * time.Millisecond,
		MaxInflight:     int64(cfg.MaxInflight),
		SearchCacheSize: cfg.SearchCacheSize,
		DetailCacheSize: cfg.DetailCacheSize,
		Timeout:         time.Duration(cfg.RequestTimeoutSec) * time.Second,
	}, log)
}

var Options = ProvideSaavn

// SearchSongs looks up tracks for query. A cache hit or an upstream response
// with no matches returns a nil error; ErrUnavailable reports that both
// search variants failed for this query. One failing query never affects
// another.
func (c *Client) SearchSongs(ctx context.Context, query string, limit int) ([]cochlea.Track, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	if c.offline {
		c.log.Infow("saavn offline: returning fixture search results", "query", query)
		return fixtureSearchTracks(limit), nil
	}

	key := query + "|" + strconv.Itoa(limit)
	c.mu.Lock()
	if v, ok := c.searchCache.Get(key); ok {
		cached := v.([]cochlea.Track)
		c.mu.Unlock()
		return append([]cochlea.Track(nil), cached...), nil
	}
	c.mu.Unlock()

	tracks, err := c.fetchSearch(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.searchCache.Put(key, tracks)
	for _, t := range tracks {
		if t.ID != "" {
			c.seenByID[t.ID] = t
		}
	}
	c.mu.Unlock()

	return append([]cochlea.Track(nil), tracks...), nil
}

func (c *Client) fetchSearch(ctx context.Context, query string, limit int) ([]cochlea.Track, error) {
	if err := c.inflight.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("saavn search %q: %w", query, err)
	}
	defer c.inflight.Release(1)

	if err := c.throttle.Wait(ctx); err != nil {
		return nil, fmt.Errorf("saavn search %q: %w", query, err)
	}

	tracks, errA := c.searchVariantA(ctx, query, limit)
	if len(tracks) > 0 {
		return tracks, nil
	}
	if errA != nil {
		c.log.Debugw("saavn search variant A failed", "query", query, "err", errA)
	}

	// Variant B only when A produced nothing.
	tracksB, errB := c.searchVariantB(ctx, query, limit)
	if len(tracksB) > 0 {
		return tracksB, nil
	}
	if errB != nil {
		c.log.Debugw("saavn search variant B failed", "query", query, "err", errB)
	}

	if errA != nil && errB != nil {
		return nil, fmt.Errorf("saavn search %q: %w", query, ErrUnavailable)
	}
	return []cochlea.Track{}, nil
}

func (c *Client) searchVariantA(ctx context.Context, query string, limit int) ([]cochlea.Track, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query": query,
			"page":  "1",
			"limit": strconv.Itoa(limit),
		}).
		Get("/search/songs")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode())
	}

	items, err := parseSearchA(resp.Body())
	if err != nil {
		return nil, err
	}
	return normalizeAll(items, limit), nil
}

func (c *Client) searchVariantB(ctx context.Context, query string, limit int) ([]cochlea.Track, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		Get("/search")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode())
	}

	items, err := parseSearchB(resp.Body())
	if err != nil {
		return nil, err
	}
	return normalizeAll(items, limit), nil
}

func normalizeAll(items []songPayload, limit int) []cochlea.Track {
	tracks := make([]cochlea.Track, 0, len(items))
	for _, item := range items {
		if len(tracks) == limit {
			break
		}
		tracks = append(tracks, normalizeSong(item))
	}
	return tracks
}

// detailPaths are tried in order; a 404 means "try the next one".
var detailPaths = []string{"/songs/%s", "/api/songs/%s", "/song/%s"}

// GetTrackDetails fetches a single track by id. After the detail cache, it
// walks the three endpoint templates; if all fail it falls back to any track
// previously seen under that id in a search result. A miss everywhere is
// ErrNotFound, never a fault.
func (c *Client) GetTrackDetails(ctx context.Context, id string) (cochlea.Track, error) {
	if id == "" {
		return cochlea.Track{}, ErrNotFound
	}

	if c.offline {
		c.log.Infow("saavn offline: returning fixture track details", "id", id)
		return fixtureDetailTrack(id), nil
	}

	c.mu.Lock()
	if v, ok := c.detailCache.Get(id); ok {
		entry := v.(detailEntry)
		c.mu.Unlock()
		if !entry.found {
			return cochlea.Track{}, ErrNotFound
		}
		return entry.track, nil
	}
	c.mu.Unlock()

	track, found := c.fetchDetails(ctx, id)

	if !found {
		c.mu.Lock()
		if seen, ok := c.seenByID[id]; ok {
			c.log.Infow("saavn details falling back to search cache", "id", id)
			track, found = seen, true
		}
		c.mu.Unlock()
	}

	c.mu.Lock()
	c.detailCache.Put(id, detailEntry{track: track, found: found})
	c.mu.Unlock()

	if !found {
		c.log.Debugw("saavn details not found anywhere", "id", id)
		return cochlea.Track{}, ErrNotFound
	}
	return track, nil
}

func (c *Client) fetchDetails(ctx context.Context, id string) (cochlea.Track, bool) {
	if err := c.inflight.Acquire(ctx, 1); err != nil {
		return cochlea.Track{}, false
	}
	defer c.inflight.Release(1)

	if err := c.throttle.Wait(ctx); err != nil {
		return cochlea.Track{}, false
	}

	for _, path := range detailPaths {
		url := fmt.Sprintf(path, id)
		resp, err := c.http.R().SetContext(ctx).Get(url)
		if err != nil {
			c.log.Debugw("saavn details request failed", "url", url, "err", err)
			continue
		}
		if resp.StatusCode() == http.StatusNotFound {
			c.log.Debugw("saavn details 404, trying next endpoint", "url", url)
			continue
		}
		if resp.StatusCode() != http.StatusOK {
			c.log.Debugw("saavn details bad status", "url", url, "status", resp.StatusCode())
			continue
		}

		item, ok := parseDetail(resp.Body())
		if !ok {
			c.log.Debugw("saavn details unparseable payload", "url", url)
			continue
		}
		return normalizeSong(item), true
	}

	return cochlea.Track{}, false
}
