package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"postcode-distance/internal/domain"
	"postcode-distance/internal/platform/obs"
	"time"
)

// SQLRecordSink is a Postgres-backed RecordSink.
type SQLRecordSink struct {
	DB *sql.DB
}

func NewSQLRecordSink(db *sql.DB) *SQLRecordSink {
	return &SQLRecordSink{DB: db}
}

// Store one calculation outcome in calculation_log.
func (s *SQLRecordSink) Record(ctx context.Context, rec domain.CalculationRecord) (err error) {
	defer obs.Time(ctx, "records.sql.Record")(&err)

	if s.DB == nil {
		return errors.New("record sink: db is nil")
	}

	at := rec.RecordedAt
	if at.IsZero() {
		at = time.Now()
	}

	var miles sql.NullFloat64
	if rec.Success {
		miles = sql.NullFloat64{Float64: rec.Miles, Valid: true}
	}

	q := `
	INSERT INTO calculation_log (success, detail, postcode_a, postcode_b, miles, recorded_at)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := s.DB.ExecContext(ctx, q, rec.Success, rec.Detail, rec.PostcodeA, rec.PostcodeB, miles, at.UTC()); err != nil {
		return fmt.Errorf("insert calculation log: %w", err)
	}

	return nil
}
