package music

import (
	"sort"
	"strings"

	"github.com/mager/cochlea/cochlea"
	"golang.org/x/exp/maps"
)

// Planner expands a FeatureSet into diversified catalog search queries.
type Planner struct{}

// Plan returns a duplicate-free query set, sorted so the output is
// deterministic for a given FeatureSet. Iteration order carries no meaning;
// scoring re-establishes ordering later. An all-empty FeatureSet plans
// nothing, which short-circuits the whole pipeline.
func (Planner) Plan(f cochlea.FeatureSet) []string {
	set := make(map[string]struct{})
	add := func(q string) {
		if q = strings.TrimSpace(q); q != "" {
			set[q] = struct{}{}
		}
	}

	for _, genre := range firstNonEmpty(f.Genres, 2) {
		if f.Region != "" {
			add(f.Region + " " + genre)
		}
		add(genre)
	}
	for _, instrument := range firstNonEmpty(f.Instruments, 2) {
		if f.Region != "" {
			add(f.Region + " " + instrument)
		}
		add(instrument)
	}
	for _, theme := range firstNonEmpty(f.Themes, 2) {
		add(theme + " song")
		if f.Region != "" {
			add(f.Region + " " + theme)
		}
	}
	for _, raga := range firstNonEmpty(f.Ragas, 2) {
		add(raga + " classical")
	}
	if f.Mood != "" {
		add(f.Mood + " instrumental")
	}

	queries := maps.Keys(set)
	sort.Strings(queries)
	return queries
}

// firstNonEmpty returns up to n leading entries of values, skipping blanks.
func firstNonEmpty(values []string, n int) []string {
	out := make([]string, 0, n)
	for _, v := range values {
		if len(out) == n {
			break
		}
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
