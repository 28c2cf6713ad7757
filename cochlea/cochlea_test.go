package cochlea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackKey(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  string
	}{
		{
			name:  "id wins when present",
			track: Track{ID: "t1", Title: "Song", Artists: []string{"A"}},
			want:  "t1",
		},
		{
			name:  "composite key without id",
			track: Track{Title: "Song", Artists: []string{"A", "B"}},
			want:  "Song|A,B",
		},
		{
			name:  "no artists",
			track: Track{Title: "Song"},
			want:  "Song|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.track.Key())
		})
	}
}

func TestNormalizedTitle(t *testing.T) {
	track := Track{Title: "  Raga Yaman "}
	assert.Equal(t, "raga yaman", track.NormalizedTitle())
}

func TestFeatureSetEmpty(t *testing.T) {
	assert.True(t, FeatureSet{}.Empty())
	assert.False(t, FeatureSet{Mood: "serene"}.Empty())
	assert.False(t, FeatureSet{Ragas: []string{"Yaman"}}.Empty())
	assert.False(t, DefaultFeatureSet().Empty())
}

func TestDefaultFeatureSet(t *testing.T) {
	f := DefaultFeatureSet()
	assert.Equal(t, "serene", f.Mood)
	assert.Equal(t, "north", f.Region)
	assert.Equal(t, []string{"classical", "devotional"}, f.Genres)
	assert.Equal(t, []string{"sitar", "tabla"}, f.Instruments)
	assert.Equal(t, []string{"Yaman"}, f.Ragas)
	assert.Equal(t, []string{"mythology"}, f.Themes)
}
