package domain

import "time"

// CalculationRecord is the persisted outcome of one distance calculation.
type CalculationRecord struct {
	Success    bool
	Detail     string
	PostcodeA  string
	PostcodeB  string
	Miles      float64
	RecordedAt time.Time
}
