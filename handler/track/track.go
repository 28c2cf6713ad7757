package track

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mager/cochlea/saavn"
	"go.uber.org/zap"
)

// GetTrackHandler serves detail lookups for a single catalog track.
type GetTrackHandler struct {
	log         *zap.SugaredLogger
	saavnClient *saavn.Client
}

func (*GetTrackHandler) Pattern() string {
	return "/track"
}

// NewGetTrackHandler builds a new GetTrackHandler.
func NewGetTrackHandler(log *zap.SugaredLogger, saavnClient *saavn.Client) *GetTrackHandler {
	return &GetTrackHandler{
		log:         log,
		saavnClient: saavnClient,
	}
}

func (h *GetTrackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing track id", http.StatusBadRequest)
		return
	}

	track, err := h.saavnClient.GetTrackDetails(r.Context(), id)
	if errors.Is(err, saavn.ErrNotFound) {
		http.Error(w, "track not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Errorw("track lookup failed", "id", id, "err", err)
		http.Error(w, "track lookup failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(track)
}
