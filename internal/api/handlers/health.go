package handlers

import (
	"net/http"
	"postcode-distance/internal/api/dto"
)

// HealthHandler reports liveness together with where calculation records go.
type HealthHandler struct {
	RecordSink string
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.HealthResponse{
		Status:     "ok",
		RecordSink: h.RecordSink,
	})
}
