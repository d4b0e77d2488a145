package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Dialect selects placeholder and column types for the calculation_log table.
type Dialect int

const (
	Postgres Dialect = iota
	Sqlite
)

// InitSchema creates the calculation_log table if it does not exist.
func InitSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var stmts []string
	switch d {
	case Postgres:
		stmts = []string{`
	CREATE TABLE IF NOT EXISTS calculation_log (
		id BIGSERIAL PRIMARY KEY,
		success BOOLEAN NOT NULL,
		detail TEXT NOT NULL,
		postcode_a TEXT NOT NULL,
		postcode_b TEXT NOT NULL,
		miles DOUBLE PRECISION,
		recorded_at TIMESTAMPTZ NOT NULL
	);
	`, `
	CREATE INDEX IF NOT EXISTS idx_calculation_log_recorded_at
	ON calculation_log(recorded_at);
	`}
	case Sqlite:
		stmts = []string{`
	CREATE TABLE IF NOT EXISTS calculation_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		success INTEGER NOT NULL,
		detail TEXT NOT NULL,
		postcode_a TEXT NOT NULL,
		postcode_b TEXT NOT NULL,
		miles REAL,
		recorded_at TEXT NOT NULL
	);
	`, `
	CREATE INDEX IF NOT EXISTS idx_calculation_log_recorded_at
	ON calculation_log(recorded_at);
	`}
	default:
		return fmt.Errorf("init schema: unknown dialect %d", d)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}

	return nil
}
