package saavn

import (
	"encoding/json"
	"strings"

	"github.com/mager/cochlea/cochlea"
)

// The catalog answers in two incompatible shapes. Variant A
// (GET /search/songs?query=&page=&limit=) nests results under data.results,
// data.songs, a bare data array, or a top-level results array. Variant B
// (GET /search?query=) nests them under data.songs.results. Both decode into
// songPayload and share one normalizer.

// flexString tolerates fields the catalog serves as either a JSON string or
// a number (ids and durations both show up in the wild as either).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*f = ""
		return nil
	}
	*f = flexString(raw)
	return nil
}

type songPayload struct {
	ID             flexString      `json:"id"`
	Title          string          `json:"title"`
	Name           string          `json:"name"`
	Album          json.RawMessage `json:"album"`
	Artists        []artistPayload `json:"artists"`
	PrimaryArtists string          `json:"primaryArtists"`
	Duration       flexString      `json:"duration"`
	DownloadURL    []downloadLink  `json:"downloadUrl"`
}

type artistPayload struct {
	Name string `json:"name"`
}

type downloadLink struct {
	Link string `json:"link"`
}

// parseSearchA extracts song payloads from a variant A response body.
func parseSearchA(body []byte) ([]songPayload, error) {
	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Results []songPayload   `json:"results"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		var nested struct {
			Results []songPayload `json:"results"`
			Songs   []songPayload `json:"songs"`
		}
		if err := json.Unmarshal(envelope.Data, &nested); err == nil {
			if len(nested.Results) > 0 {
				return nested.Results, nil
			}
			if len(nested.Songs) > 0 {
				return nested.Songs, nil
			}
		}
		var items []songPayload
		if err := json.Unmarshal(envelope.Data, &items); err == nil {
			return items, nil
		}
	}

	return envelope.Results, nil
}

// parseSearchB extracts song payloads from a variant B response body.
func parseSearchB(body []byte) ([]songPayload, error) {
	var envelope struct {
		Data struct {
			Songs struct {
				Results []songPayload `json:"results"`
			} `json:"songs"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Songs.Results, nil
}

// parseDetail extracts the song payload from a detail response body, where
// data is either an object or a singleton array.
func parseDetail(body []byte) (songPayload, bool) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return songPayload{}, false
	}

	var item songPayload
	if err := json.Unmarshal(envelope.Data, &item); err == nil && !emptyPayload(item) {
		return item, true
	}

	var items []songPayload
	if err := json.Unmarshal(envelope.Data, &items); err == nil && len(items) > 0 {
		return items[0], true
	}

	return songPayload{}, false
}

func emptyPayload(p songPayload) bool {
	return p.ID == "" && p.Title == "" && p.Name == ""
}

// normalizeSong maps a raw catalog payload onto the canonical track shape.
func normalizeSong(p songPayload) cochlea.Track {
	t := cochlea.Track{
		ID:    string(p.ID),
		Title: p.Title,
	}
	if t.Title == "" {
		t.Title = p.Name
	}

	// Catalogs list download qualities ascending, so the last link is the
	// highest quality.
	if n := len(p.DownloadURL); n > 0 {
		t.StreamURL = p.DownloadURL[n-1].Link
	}

	for _, a := range p.Artists {
		if a.Name != "" {
			t.Artists = append(t.Artists, a.Name)
		}
	}
	if len(t.Artists) == 0 && p.PrimaryArtists != "" {
		for _, name := range strings.Split(p.PrimaryArtists, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				t.Artists = append(t.Artists, trimmed)
			}
		}
	}

	t.Album = albumName(p.Album)

	// Duration arrives in whole seconds; convert only when it is a pure
	// integer, otherwise leave it unset.
	if isDigits(string(p.Duration)) {
		seconds := 0
		for _, r := range string(p.Duration) {
			seconds = seconds*10 + int(r-'0')
		}
		t.DurationMs = seconds * 1000
	}

	return t
}

func albumName(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var nested struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.Name != "" {
		return nested.Name
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
