package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"postcode-distance/internal/domain"
	"time"
)

// SQLite-backed RecordSink. Timestamps are stored as RFC 3339 text.
type SqliteRecordSink struct {
	DB *sql.DB
}

func NewSqliteRecordSink(db *sql.DB) *SqliteRecordSink {
	return &SqliteRecordSink{DB: db}
}

// Store one calculation outcome in calculation_log.
func (s *SqliteRecordSink) Record(ctx context.Context, rec domain.CalculationRecord) error {
	if s.DB == nil {
		return errors.New("sqlite record sink: db is nil")
	}

	at := rec.RecordedAt
	if at.IsZero() {
		at = time.Now()
	}

	var miles sql.NullFloat64
	if rec.Success {
		miles = sql.NullFloat64{Float64: rec.Miles, Valid: true}
	}

	success := 0
	if rec.Success {
		success = 1
	}

	q := `
	INSERT INTO calculation_log (
		success,
		detail,
		postcode_a,
		postcode_b,
		miles,
		recorded_at
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, success, rec.Detail, rec.PostcodeA, rec.PostcodeB, miles, at.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("insert calculation log: %w", err)
	}

	return nil
}

// List returns every stored record, oldest first.
func (s *SqliteRecordSink) List(ctx context.Context) ([]domain.CalculationRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite record sink: db is nil")
	}

	query := `
	SELECT
		success,
		detail,
		postcode_a,
		postcode_b,
		miles,
		recorded_at
	FROM calculation_log
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list calculation log: query: %w", err)
	}
	defer rows.Close()

	var out []domain.CalculationRecord
	for rows.Next() {
		var (
			rec     domain.CalculationRecord
			success int
			miles   sql.NullFloat64
			at      string
		)
		if err := rows.Scan(&success, &rec.Detail, &rec.PostcodeA, &rec.PostcodeB, &miles, &at); err != nil {
			return nil, fmt.Errorf("list calculation log: scan rows: %w", err)
		}

		rec.Success = success == 1
		rec.Miles = miles.Float64
		rec.RecordedAt, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("list calculation log: parse recorded_at %q: %w", at, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calculation log: row iteration: %w", err)
	}

	return out, nil
}
