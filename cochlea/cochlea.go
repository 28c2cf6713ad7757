package cochlea

import "strings"

// Track is the canonical track shape shared by every package. Both catalog
// response variants normalize into it.
type Track struct {
	// ID is the catalog-assigned identifier. May be empty when the catalog
	// returned a result without one; Key() covers that case.
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Artists []string `json:"artists"`
	Album   string   `json:"album,omitempty"`
	// DurationMs is the track length in milliseconds, 0 when unknown.
	DurationMs int    `json:"duration_ms,omitempty"`
	StreamURL  string `json:"stream_url,omitempty"`
	// Score is set once by the scorer; comparable only within one request.
	Score float64 `json:"score"`
}

// Key returns the dedup identity for a track: the catalog id when present,
// else a composite of title and artists.
func (t Track) Key() string {
	if t.ID != "" {
		return t.ID
	}
	return t.Title + "|" + strings.Join(t.Artists, ",")
}

// NormalizedTitle is the near-duplicate key used by playlist selection.
func (t Track) NormalizedTitle() string {
	return strings.ToLower(strings.TrimSpace(t.Title))
}

// FeatureSet holds the musical features extracted from a story. Immutable
// once produced for a request; the zero value of a field means "absent".
type FeatureSet struct {
	Mood        string   `json:"mood,omitempty"`
	Era         string   `json:"era,omitempty"`
	Region      string   `json:"region,omitempty"`
	Emotions    []string `json:"emotions,omitempty"`
	Themes      []string `json:"themes,omitempty"`
	Ragas       []string `json:"ragas,omitempty"`
	Instruments []string `json:"instruments,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

// Empty reports whether no field carries a value. An empty FeatureSet plans
// zero queries.
func (f FeatureSet) Empty() bool {
	return f.Mood == "" && f.Era == "" && f.Region == "" &&
		len(f.Emotions) == 0 && len(f.Themes) == 0 && len(f.Ragas) == 0 &&
		len(f.Instruments) == 0 && len(f.Genres) == 0
}

// DefaultFeatureSet is the culturally-fixed seed used whenever extraction
// fails or yields nothing.
func DefaultFeatureSet() FeatureSet {
	return FeatureSet{
		Mood:        "serene",
		Era:         "classical",
		Region:      "north",
		Emotions:    []string{"calm"},
		Themes:      []string{"mythology"},
		Ragas:       []string{"Yaman"},
		Instruments: []string{"sitar", "tabla"},
		Genres:      []string{"classical", "devotional"},
	}
}

// PlaylistResult is the caller-facing output tuple: tracks, positionally
// aligned explanations, and the features the playlist was built from.
type PlaylistResult struct {
	Tracks       []Track    `json:"tracks"`
	Explanations []string   `json:"explanations"`
	Features     FeatureSet `json:"features"`
}
