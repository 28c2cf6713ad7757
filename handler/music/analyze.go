package music

import (
	"encoding/json"
	"net/http"

	"github.com/mager/cochlea/cochlea"
	"github.com/mager/cochlea/music"
	"go.uber.org/zap"
)

// AnalyzeHandler returns the extracted musical features for a story without
// building a playlist.
type AnalyzeHandler struct {
	log          *zap.SugaredLogger
	orchestrator *music.Orchestrator
}

func (*AnalyzeHandler) Pattern() string {
	return "/music/analyze"
}

// NewAnalyzeHandler builds a new AnalyzeHandler.
func NewAnalyzeHandler(log *zap.SugaredLogger, orchestrator *music.Orchestrator) *AnalyzeHandler {
	return &AnalyzeHandler{
		log:          log,
		orchestrator: orchestrator,
	}
}

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResponse struct {
	Features cochlea.FeatureSet `json:"features"`
}

func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "missing story text", http.StatusBadRequest)
		return
	}

	features := h.orchestrator.AnalyzeStory(r.Context(), req.Text)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalyzeResponse{Features: features})
}
