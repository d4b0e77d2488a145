package records

import (
	"context"
	"postcode-distance/internal/domain"
	"sync"
)

// MemorySink keeps records in memory. Err, when set, is returned from every
// Record call instead of storing the record.
type MemorySink struct {
	mu      sync.Mutex
	records []domain.CalculationRecord
	Err     error
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Record(ctx context.Context, rec domain.CalculationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *MemorySink) Records() []domain.CalculationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CalculationRecord, len(s.records))
	copy(out, s.records)
	return out
}
