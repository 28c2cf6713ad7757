package saavn

import "github.com/mager/cochlea/cochlea"

// Fixture data returned when the offline toggle is on. Kept tiny and stable;
// tests depend on the exact titles and their order.

func fixtureSearchTracks(limit int) []cochlea.Track {
	tracks := []cochlea.Track{
		{
			ID:      "mock1",
			Title:   "Krishna Flute Melody",
			Artists: []string{"Traditional"},
			Album:   "Vrindavan",
		},
		{
			ID:      "mock2",
			Title:   "Evening Raga on Bansuri",
			Artists: []string{"Unknown"},
			Album:   "Raga Dusk",
		},
	}
	if limit > 0 && limit < len(tracks) {
		tracks = tracks[:limit]
	}
	return tracks
}

func fixtureDetailTrack(id string) cochlea.Track {
	return cochlea.Track{
		ID:         id,
		Title:      "Mock Track",
		Artists:    []string{"Mock Artist"},
		Album:      "Mock Album",
		DurationMs: 180000,
	}
}
