package services

import (
	"context"
	"fmt"
	"io"
	"postcode-distance/internal/domain"
	"postcode-distance/internal/platform/metrics"
	"postcode-distance/internal/ports"
	"strconv"
	"time"
)

// User-visible failure line. It carries no diagnostic detail.
const FailureMessage = "Incorrect postcode"

const (
	successDetailPrefix = "Success of the calculation of the distance. Distance: "
	failureDetail       = "Calculation of the distance failed"
)

// FormatMiles renders miles in the shortest form that round-trips.
func FormatMiles(miles float64) string {
	return strconv.FormatFloat(miles, 'f', -1, 64)
}

// NewRecord builds the persisted record for one calculation outcome.
func NewRecord(a, b string, miles float64, ok bool, at time.Time) domain.CalculationRecord {
	rec := domain.CalculationRecord{
		Success:    ok,
		PostcodeA:  a,
		PostcodeB:  b,
		RecordedAt: at,
	}
	if ok {
		rec.Miles = miles
		rec.Detail = successDetailPrefix + FormatMiles(miles)
	} else {
		rec.Detail = failureDetail
	}
	return rec
}

// Report prints the outcome to w ("<miles> miles" or FailureMessage) and
// persists one record through sink. The output line is written before the
// record, so a sink error never hides the result.
func Report(
	ctx context.Context,
	w io.Writer,
	sink ports.RecordSink,
	a string,
	b string,
	miles float64,
	ok bool,
) error {
	var line string
	if ok {
		line = FormatMiles(miles) + " miles"
		metrics.DistanceRequestsTotal.WithLabelValues("success").Inc()
	} else {
		line = FailureMessage
		metrics.DistanceRequestsTotal.WithLabelValues("failure").Inc()
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("report: write output: %w", err)
	}

	if err := sink.Record(ctx, NewRecord(a, b, miles, ok, time.Now())); err != nil {
		return fmt.Errorf("report: record outcome: %w", err)
	}

	return nil
}
