package domain

import "fmt"

// Immutable geographic coordinates (longitude, latitude).
// Ranges are trusted from the lookup service and never validated here.
type Coordinates struct {
	Lon float64
	Lat float64
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%g, %g)", c.Lat, c.Lon)
}
