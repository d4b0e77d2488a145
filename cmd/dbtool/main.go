package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"postcode-distance/internal/adapters/records"
	"postcode-distance/internal/config"
	"postcode-distance/internal/platform/db"
	"postcode-distance/internal/platform/logger"
	"postcode-distance/internal/services"
)

// dbtool creates the calculation_log table for the configured SQL sink and,
// for SQLite, can print the stored history.
func main() {
	history := flag.Bool("history", false, "print stored calculations (sqlite sink only)")
	flag.Parse()

	ctx := context.Background()
	log := logger.Init(logger.Options{Pretty: true})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if err := run(ctx, cfg, *history, os.Stdout); err != nil {
		log.Error().Err(err).Msg("dbtool failed")
		os.Exit(1)
	}
}

// run owns the database handle so it is closed on every return path.
func run(ctx context.Context, cfg *config.Config, history bool, out io.Writer) error {
	log := logger.Get()

	var (
		conn    *sql.DB
		dialect records.Dialect
		err     error
	)
	switch cfg.RecordSink {
	case config.SinkPostgres:
		conn, err = db.Open(cfg.DatabaseURL)
		dialect = records.Postgres
	case config.SinkSqlite:
		conn, err = db.OpenSqlite(cfg.SqlitePath)
		dialect = records.Sqlite
	default:
		return fmt.Errorf("RECORD_SINK must be postgres or sqlite, got %q", cfg.RecordSink)
	}
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	log.Info().Str("sink", cfg.RecordSink).Msg("initializing database schema")
	if err := records.InitSchema(ctx, conn, dialect); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Info().Msg("schema ready")

	if !history {
		return nil
	}
	if dialect != records.Sqlite {
		return errors.New("-history is only supported for the sqlite sink")
	}

	recs, err := records.NewSqliteRecordSink(conn).List(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	for _, r := range recs {
		outcome := services.FailureMessage
		if r.Success {
			outcome = services.FormatMiles(r.Miles) + " miles"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", r.RecordedAt.Format("2006-01-02T15:04:05Z07:00"), r.PostcodeA, r.PostcodeB, outcome)
	}

	return nil
}
