package api

import (
	"net/http"
	"postcode-distance/internal/api/handlers"
	"postcode-distance/internal/ports"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of the concrete resolver and sink; sinkKind is only
// reported by /health.
func NewRouter(resolver ports.PostcodeResolver, sink ports.RecordSink, sinkKind string) http.Handler {
	mux := http.NewServeMux()

	distanceHandler := &handlers.DistanceHandler{
		Resolver: resolver,
		Sink:     sink,
	}

	healthHandler := &handlers.HealthHandler{RecordSink: sinkKind}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/distance", distanceHandler.Distance)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
