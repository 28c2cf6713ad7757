package music

import (
	"encoding/json"
	"net/http"

	"github.com/mager/cochlea/music"
	"go.uber.org/zap"
)

// GenerateHandler answers story prompts with a playlist, explanations, and
// the features the playlist was built from.
type GenerateHandler struct {
	log          *zap.SugaredLogger
	orchestrator *music.Orchestrator
}

func (*GenerateHandler) Pattern() string {
	return "/music/generate"
}

// NewGenerateHandler builds a new GenerateHandler.
func NewGenerateHandler(log *zap.SugaredLogger, orchestrator *music.Orchestrator) *GenerateHandler {
	return &GenerateHandler{
		log:          log,
		orchestrator: orchestrator,
	}
}

type GenerateRequest struct {
	Text string `json:"text"`
}

func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "missing story text", http.StatusBadRequest)
		return
	}

	result, err := h.orchestrator.GeneratePlaylist(r.Context(), req.Text)
	if err != nil {
		h.log.Errorw("playlist generation failed", "err", err)
		http.Error(w, "playlist generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
