package handlers

import (
	"net/http"
	"postcode-distance/internal/api/dto"
	"postcode-distance/internal/platform/logger"
	"postcode-distance/internal/platform/metrics"
	"postcode-distance/internal/platform/obs"
	"postcode-distance/internal/ports"
	"postcode-distance/internal/services"
	"strings"
	"time"
)

type DistanceHandler struct {
	Resolver ports.PostcodeResolver
	Sink     ports.RecordSink
}

// Distance computes the great-circle distance between the "from" and "to"
// postcodes. Resolution failures are reported uniformly, without saying
// which postcode or why.
func (h *DistanceHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	ctx := r.Context()
	miles, ok := services.DistanceBetweenPostcodes(ctx, h.Resolver, from, to)

	result := "success"
	if !ok {
		result = "failure"
	}
	metrics.DistanceRequestsTotal.WithLabelValues(result).Inc()

	// The record is best effort: the caller still gets the distance.
	if err := h.Sink.Record(ctx, services.NewRecord(from, to, miles, ok, time.Now())); err != nil {
		log := logger.Get()
		log.Error().
			Str("req_id", obs.RequestID(ctx)).
			Err(err).
			Msg("record distance calculation failed")
	}

	if !ok {
		writeError(w, r, http.StatusUnprocessableEntity, services.FailureMessage)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		From:  from,
		To:    to,
		Miles: miles,
	})
}
