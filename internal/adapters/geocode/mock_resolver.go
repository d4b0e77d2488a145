package geocode

import (
	"context"
	"postcode-distance/internal/domain"
	"sync"
)

// MockResolver resolves from a fixed table keyed by normalized postcode and
// records every call it receives.
type MockResolver struct {
	mu    sync.Mutex
	m     map[string]domain.Coordinates
	calls []string
}

func NewMockResolver(table map[string]domain.Coordinates) *MockResolver {
	m := make(map[string]domain.Coordinates, len(table))
	for k, v := range table {
		m[domain.NormalizePostcode(k)] = v
	}
	return &MockResolver{m: m}
}

func (r *MockResolver) Resolve(ctx context.Context, postcode string) (domain.Coordinates, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, postcode)
	c, ok := r.m[domain.NormalizePostcode(postcode)]
	return c, ok
}

// Calls returns the raw postcodes passed to Resolve, in order.
func (r *MockResolver) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}
