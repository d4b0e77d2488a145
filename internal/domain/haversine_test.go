package domain

import (
	"math"
	"testing"
)

var (
	london = Coordinates{Lat: 51.5074, Lon: -0.1278}
	paris  = Coordinates{Lat: 48.8566, Lon: 2.3522}
)

func TestHaversineMilesIdenticalPoints(t *testing.T) {
	points := []Coordinates{
		london,
		paris,
		{Lat: 0, Lon: 0},
		{Lat: 90, Lon: 0},
		{Lat: -90, Lon: 180},
		{Lat: 12.5, Lon: -179.99},
	}

	for _, p := range points {
		if got := HaversineMiles(p, p); got != 0 {
			t.Errorf("HaversineMiles(%v, %v) = %v, want 0", p, p, got)
		}
	}
}

func TestHaversineMilesLondonParis(t *testing.T) {
	got := HaversineMiles(london, paris)
	if math.Abs(got-213) > 2 {
		t.Fatalf("London -> Paris = %v miles, want 213 +/- 2", got)
	}
}

func TestHaversineMilesSymmetric(t *testing.T) {
	pairs := [][2]Coordinates{
		{london, paris},
		{{Lat: 51.4536, Lon: -2.5975}, {Lat: 52.4796, Lon: -1.9003}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 40.7128, Lon: -74.0060}},
		{{Lat: 89.9, Lon: 10}, {Lat: -89.9, Lon: -170}},
	}

	for _, p := range pairs {
		ab := HaversineMiles(p[0], p[1])
		ba := HaversineMiles(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("asymmetric distance for %v <-> %v: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestHaversineMilesBounds(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 15 {
		for lon := -180.0; lon <= 180; lon += 30 {
			from := Coordinates{Lat: lat, Lon: lon}
			to := Coordinates{Lat: -lat / 2, Lon: lon/3 + 7}

			got := HaversineMiles(from, to)
			if got < 0 || got > MaxMiles+1e-9 {
				t.Fatalf("HaversineMiles(%v, %v) = %v, want within [0, %v]", from, to, got, MaxMiles)
			}
		}
	}
}

func TestHaversineMilesAntipodal(t *testing.T) {
	from := Coordinates{Lat: 0, Lon: 0}
	to := Coordinates{Lat: 0, Lon: 180}

	got := HaversineMiles(from, to)
	if math.Abs(got-MaxMiles) > 1e-6 {
		t.Fatalf("antipodal distance = %v, want %v", got, MaxMiles)
	}
	if math.Abs(MaxMiles-math.Pi*3959) > 1e-9 {
		t.Fatalf("MaxMiles = %v, want %v", MaxMiles, math.Pi*3959)
	}
	if math.Abs(MaxMiles-12437.7) > 0.2 {
		t.Fatalf("MaxMiles = %v, want ~12437.7", MaxMiles)
	}
}
