package track

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mager/cochlea/cochlea"
	"github.com/mager/cochlea/logger"
	"github.com/mager/cochlea/saavn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrackHandler_Offline(t *testing.T) {
	log, _ := logger.NewTestLogger()
	handler := NewGetTrackHandler(log, saavn.New(saavn.Settings{Offline: true}, log))

	req := httptest.NewRequest(http.MethodGet, "/track?id=mock1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var track cochlea.Track
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &track))
	assert.Equal(t, "mock1", track.ID)
	assert.Equal(t, "Mock Track", track.Title)
}

func TestGetTrackHandler_MissingID(t *testing.T) {
	log, _ := logger.NewTestLogger()
	handler := NewGetTrackHandler(log, saavn.New(saavn.Settings{Offline: true}, log))

	req := httptest.NewRequest(http.MethodGet, "/track", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetTrackHandler_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	log, _ := logger.NewTestLogger()
	client := saavn.New(saavn.Settings{
		BaseURL:  srv.URL,
		Throttle: time.Millisecond,
	}, log)
	handler := NewGetTrackHandler(log, client)

	req := httptest.NewRequest(http.MethodGet, "/track?id=ghost", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
