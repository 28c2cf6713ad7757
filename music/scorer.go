package music

import (
	"strings"

	"github.com/mager/cochlea/cochlea"
)

// Score weights, additive. Matches are case-insensitive substring checks
// against title plus album.
const (
	regionWeight     = 2.0
	genreWeight      = 1.0
	themeWeight      = 0.8
	instrumentWeight = 0.6
	durationWeight   = 0.4

	// fullTrackMs is the duration threshold treated as evidence of a full,
	// untruncated track.
	fullTrackMs = 120_000
)

// Score computes the heuristic relevance of a candidate against the request
// features. Pure and deterministic; scores are only comparable within one
// request's candidate pool.
func Score(t cochlea.Track, f cochlea.FeatureSet) float64 {
	haystack := strings.ToLower(t.Title + " " + t.Album)

	var score float64
	if f.Region != "" && strings.Contains(haystack, strings.ToLower(f.Region)) {
		score += regionWeight
	}
	for _, genre := range firstNonEmpty(f.Genres, 3) {
		if strings.Contains(haystack, strings.ToLower(genre)) {
			score += genreWeight
		}
	}
	for _, theme := range firstNonEmpty(f.Themes, 2) {
		if strings.Contains(haystack, strings.ToLower(theme)) {
			score += themeWeight
		}
	}
	for _, instrument := range firstNonEmpty(f.Instruments, 2) {
		if strings.Contains(haystack, strings.ToLower(instrument)) {
			score += instrumentWeight
		}
	}
	if t.DurationMs >= fullTrackMs {
		score += durationWeight
	}

	return score
}
