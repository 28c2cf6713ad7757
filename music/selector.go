package music

import (
	"strings"

	"github.com/mager/cochlea/cochlea"
)

// Select walks a pre-sorted candidate sequence and picks the top distinct
// tracks. Distinctness is by normalized title, so two tracks sharing a title
// with different artists count as duplicates and the higher-ranked one
// survives. Returns fewer than topN when the pool runs out; never pads.
// Explanations align positionally with the returned tracks.
func Select(ranked []cochlea.Track, f cochlea.FeatureSet, topN int) ([]cochlea.Track, []string) {
	playlist := make([]cochlea.Track, 0, topN)
	explanations := make([]string, 0, topN)
	seen := make(map[string]struct{})

	for _, t := range ranked {
		if len(playlist) == topN {
			break
		}
		key := t.NormalizedTitle()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		playlist = append(playlist, t)
		explanations = append(explanations, Explain(t, f))
	}

	return playlist, explanations
}

// Explain builds the human-readable justification for one selected track.
// Clause order is fixed; a feature absent from the FeatureSet contributes no
// clause at all.
func Explain(t cochlea.Track, f cochlea.FeatureSet) string {
	var clauses []string
	if f.Mood != "" {
		clauses = append(clauses, "matches a "+f.Mood+" mood")
	}
	if f.Region != "" {
		clauses = append(clauses, "reflects "+f.Region+" traditions")
	}
	if genres := firstNonEmpty(f.Genres, 2); len(genres) > 0 {
		clauses = append(clauses, "draws on "+strings.Join(genres, ", "))
	}
	if instruments := firstNonEmpty(f.Instruments, 2); len(instruments) > 0 {
		clauses = append(clauses, "features "+strings.Join(instruments, ", "))
	}
	if ragas := firstNonEmpty(f.Ragas, 1); len(ragas) > 0 {
		clauses = append(clauses, "evokes raga "+ragas[0])
	}
	if artists := firstNonEmpty(t.Artists, 2); len(artists) > 0 {
		clauses = append(clauses, "performed by "+strings.Join(artists, ", "))
	}
	return strings.Join(clauses, "; ")
}
