package services

import (
	"context"
	"postcode-distance/internal/domain"
	"postcode-distance/internal/ports"
)

// DistanceBetweenPostcodes resolves a, then b, and returns the Haversine
// distance between them in miles.
//
// Lookups are strictly sequential. If a does not resolve, b is never looked
// up. ok is false when either postcode fails to resolve; no partial result
// is ever returned.
func DistanceBetweenPostcodes(
	ctx context.Context,
	resolver ports.PostcodeResolver,
	a string,
	b string,
) (miles float64, ok bool) {
	from, ok := resolver.Resolve(ctx, a)
	if !ok {
		return 0, false
	}

	to, ok := resolver.Resolve(ctx, b)
	if !ok {
		return 0, false
	}

	return domain.HaversineMiles(from, to), true
}
