// Package music implements the story-to-playlist pipeline: feature
// extraction, query planning, concurrent catalog fan-out, heuristic scoring,
// and top-N selection with explanations.
package music

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mager/cochlea/cochlea"
	"github.com/mager/cochlea/config"
	"github.com/mager/cochlea/extractor"
	"github.com/mager/cochlea/saavn"
	"go.uber.org/zap"
)

// perQueryLimit is how many results each planned query asks the catalog for.
const perQueryLimit = 10

// FeatureExtractor is the text-model boundary. Implementations never fail;
// they fall back to the default FeatureSet instead.
type FeatureExtractor interface {
	ExtractFeatures(ctx context.Context, text string) cochlea.FeatureSet
}

// Catalog is the slice of the catalog client the pipeline needs.
type Catalog interface {
	SearchSongs(ctx context.Context, query string, limit int) ([]cochlea.Track, error)
}

// Orchestrator sequences the pipeline stages. Construct once per process.
type Orchestrator struct {
	extractor FeatureExtractor
	catalog   Catalog
	planner   Planner
	log       *zap.SugaredLogger
	topN      int
}

// NewOrchestrator builds an Orchestrator. A non-positive topN is a
// programmer error, the one configuration fault this pipeline refuses.
func NewOrchestrator(ex FeatureExtractor, catalog Catalog, topN int, log *zap.SugaredLogger) (*Orchestrator, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("music: topN must be positive, got %d", topN)
	}
	return &Orchestrator{
		extractor: ex,
		catalog:   catalog,
		log:       log,
		topN:      topN,
	}, nil
}

func ProvideOrchestrator(cfg config.Config, ex *extractor.Client, catalog *saavn.Client, log *zap.SugaredLogger) (*Orchestrator, error) {
	return NewOrchestrator(ex, catalog, cfg.TopN, log)
}

var Options = ProvideOrchestrator

// AnalyzeStory extracts the musical features for a story without building a
// playlist.
func (o *Orchestrator) AnalyzeStory(ctx context.Context, text string) cochlea.FeatureSet {
	return o.extractor.ExtractFeatures(ctx, text)
}

// GeneratePlaylist runs the full pipeline for a story text. Per-query
// catalog failures are isolated; total catalog unavailability degrades to an
// empty playlist, not an error.
func (o *Orchestrator) GeneratePlaylist(ctx context.Context, text string) (cochlea.PlaylistResult, error) {
	log := o.log.With("request_id", uuid.NewString())

	features := o.extractor.ExtractFeatures(ctx, text)
	queries := o.planner.Plan(features)
	if len(queries) == 0 {
		log.Infow("no queries planned, returning empty playlist")
		return emptyResult(features), nil
	}

	// One goroutine per query; the catalog client's semaphore bounds actual
	// concurrency. Slots keep first-seen order deterministic regardless of
	// completion order.
	results := make([][]cochlea.Track, len(queries))
	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()
			tracks, err := o.catalog.SearchSongs(ctx, query, perQueryLimit)
			switch {
			case errors.Is(err, saavn.ErrUnavailable):
				log.Debugw("catalog unavailable for query", "query", query, "err", err)
			case err != nil:
				log.Debugw("query failed", "query", query, "err", err)
			default:
				results[i] = tracks
			}
		}(i, query)
	}
	wg.Wait()

	pool := unionCandidates(results)
	for i := range pool {
		pool[i].Score = Score(pool[i], features)
	}
	rankCandidates(pool)

	tracks, explanations := Select(pool, features, o.topN)
	log.Infow("playlist generated",
		"queries", len(queries),
		"candidates", len(pool),
		"selected", len(tracks),
	)

	return cochlea.PlaylistResult{
		Tracks:       tracks,
		Explanations: explanations,
		Features:     features,
	}, nil
}

// unionCandidates merges per-query results into one pool, dropping exact
// re-fetches of the same catalog entry (same id, or same title+artists when
// the id is missing). First-seen wins.
func unionCandidates(results [][]cochlea.Track) []cochlea.Track {
	seen := make(map[string]struct{})
	var pool []cochlea.Track
	for _, tracks := range results {
		for _, t := range tracks {
			key := t.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pool = append(pool, t)
		}
	}
	return pool
}

// rankCandidates sorts descending by score. The sort is stable so equal
// scores keep pool insertion order, which makes the tie-break deterministic:
// first seen wins.
func rankCandidates(pool []cochlea.Track) {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})
}

func emptyResult(features cochlea.FeatureSet) cochlea.PlaylistResult {
	return cochlea.PlaylistResult{
		Tracks:       []cochlea.Track{},
		Explanations: []string{},
		Features:     features,
	}
}
