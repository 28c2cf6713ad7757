package extractor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mager/cochlea/cochlea"
	"github.com/mager/cochlea/logger"
	"github.com/stretchr/testify/assert"
)

func TestExtractFeatures_Success(t *testing.T) {
	want := cochlea.FeatureSet{
		Mood:   "stormy",
		Region: "west",
		Genres: []string{"folk"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)

		var req analyzeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a storm gathers", req.Text)

		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	log, _ := logger.NewTestLogger()
	c := New(srv.URL, false, time.Second, log)

	got := c.ExtractFeatures(context.Background(), "a storm gathers")
	assert.Equal(t, want, got)
}

func TestExtractFeatures_FallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "bad status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "overloaded", http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"mood": [not json`))
			},
		},
		{
			name: "empty extraction",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			log, _ := logger.NewTestLogger()
			c := New(srv.URL, false, time.Second, log)

			got := c.ExtractFeatures(context.Background(), "text")
			assert.Equal(t, cochlea.DefaultFeatureSet(), got)
		})
	}
}

func TestExtractFeatures_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	log, _ := logger.NewTestLogger()
	c := New(srv.URL, false, time.Second, log)

	got := c.ExtractFeatures(context.Background(), "text")
	assert.Equal(t, cochlea.DefaultFeatureSet(), got)
}

func TestExtractFeatures_Offline(t *testing.T) {
	log, _ := logger.NewTestLogger()
	c := New("http://unused.invalid", true, time.Second, log)

	got := c.ExtractFeatures(context.Background(), "text")
	assert.Equal(t, cochlea.DefaultFeatureSet(), got)
}

func TestExtractFeatures_NoHostConfigured(t *testing.T) {
	log, _ := logger.NewTestLogger()
	c := New("", false, time.Second, log)

	got := c.ExtractFeatures(context.Background(), "text")
	assert.Equal(t, cochlea.DefaultFeatureSet(), got)
}
