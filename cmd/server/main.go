package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"postcode-distance/internal/adapters/geocode"
	"postcode-distance/internal/api"
	"postcode-distance/internal/bootstrap"
	"postcode-distance/internal/config"
	"postcode-distance/internal/platform/logger"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the postcodes.io resolver and the configured record sink behind
// ports and starts the HTTP server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	resolver, err := geocode.NewPostcodesIOResolver(cfg.ServiceBaseURL, cfg.LookupTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("build resolver")
	}

	sink, closeSink, err := bootstrap.OpenSink(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open record sink")
	}
	defer closeSink()

	router := api.NewRouter(resolver, sink, cfg.RecordSink)

	// Write timeout covers two sequential lookups at the configured timeout.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.LookupTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("sink", cfg.RecordSink).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown")
		}
		log.Info().Msg("server stopped")
	}
}
