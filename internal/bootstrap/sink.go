package bootstrap

import (
	"context"
	"fmt"
	"postcode-distance/internal/adapters/records"
	"postcode-distance/internal/config"
	"postcode-distance/internal/platform/db"
	"postcode-distance/internal/ports"
)

// OpenSink builds the RecordSink selected by cfg.RecordSink. The returned
// close func releases any database handle and is never nil.
func OpenSink(ctx context.Context, cfg *config.Config) (ports.RecordSink, func() error, error) {
	noop := func() error { return nil }

	switch cfg.RecordSink {
	case config.SinkFile:
		sink, err := records.NewFileSink(cfg.LogPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sink: %w", err)
		}
		return sink, noop, nil

	case config.SinkPostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("open sink: %w", err)
		}
		if err := records.InitSchema(ctx, conn, records.Postgres); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("open sink: %w", err)
		}
		return records.NewSQLRecordSink(conn), conn.Close, nil

	case config.SinkSqlite:
		conn, err := db.OpenSqlite(cfg.SqlitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sink: %w", err)
		}
		if err := records.InitSchema(ctx, conn, records.Sqlite); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("open sink: %w", err)
		}
		return records.NewSqliteRecordSink(conn), conn.Close, nil

	default:
		return nil, noop, fmt.Errorf("open sink: unknown sink %q", cfg.RecordSink)
	}
}
