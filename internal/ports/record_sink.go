package ports

import (
	"context"
	"postcode-distance/internal/domain"
)

// Port: persists the outcome of each distance calculation.
type RecordSink interface {
	Record(ctx context.Context, rec domain.CalculationRecord) error
}
