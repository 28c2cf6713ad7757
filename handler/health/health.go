package health

import (
	"encoding/json"
	"net/http"

	"github.com/mager/cochlea/saavn"
	"go.uber.org/zap"
)

// HealthHandler reports process readiness.
type HealthHandler struct {
	log         *zap.SugaredLogger
	saavnClient *saavn.Client
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, saavnClient *saavn.Client) *HealthHandler {
	return &HealthHandler{
		log:         log,
		saavnClient: saavnClient,
	}
}

type Response struct {
	Server bool `json:"server"`
	Saavn  bool `json:"saavn"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var resp Response

	h.log.Debug("health check")

	resp.Server = true
	resp.Saavn = h.saavnClient != nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
