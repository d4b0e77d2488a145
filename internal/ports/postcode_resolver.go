package ports

import (
	"context"
	"postcode-distance/internal/domain"
)

// Contract for turning a postcode into coordinates.
//
// Resolve is total: every failure (unreachable service, unknown postcode,
// malformed response) collapses to ok == false. Callers cannot tell the
// failure modes apart.
type PostcodeResolver interface {
	Resolve(ctx context.Context, postcode string) (coords domain.Coordinates, ok bool)
}
