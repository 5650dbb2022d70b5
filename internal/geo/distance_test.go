package geo

import (
	"math"
	"testing"
)

func TestHaversineZeroForSamePoint(t *testing.T) {
	d := Haversine(-32.8908, -68.8458, -32.8908, -68.8458)
	if d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
}

func TestHaversineMendozaToSanRafael(t *testing.T) {
	// Mendoza capital to San Rafael, roughly 195 km great-circle.
	d := Haversine(-32.8908, -68.8458, -34.6177, -68.3301)
	if math.Abs(d-195) > 5 {
		t.Fatalf("expected ~195 km, got %f", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Haversine(-32.8908, -68.8458, -34.6177, -68.3301)
	b := Haversine(-34.6177, -68.3301, -32.8908, -68.8458)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %f vs %f", a, b)
	}
}

func TestDistanceMissingCoordinatesIsInfinite(t *testing.T) {
	origin := Point{Latitude: -32.8908, Longitude: -68.8458}
	lat := -33.0
	lon := -68.5

	if d := Distance(origin, nil, &lon); !math.IsInf(d, 1) {
		t.Fatalf("expected +Inf for nil latitude, got %f", d)
	}
	if d := Distance(origin, &lat, nil); !math.IsInf(d, 1) {
		t.Fatalf("expected +Inf for nil longitude, got %f", d)
	}
	if d := Distance(origin, nil, nil); !math.IsInf(d, 1) {
		t.Fatalf("expected +Inf for nil pair, got %f", d)
	}
}

func TestDistanceNeverNaN(t *testing.T) {
	// Antipodal-ish and degenerate inputs must not produce NaN.
	cases := [][4]float64{
		{0, 0, 0, 180},
		{90, 0, -90, 0},
		{-32.8908, -68.8458, -32.8908, -68.8458},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if d := Haversine(c[0], c[1], c[2], c[3]); math.IsNaN(d) {
			t.Fatalf("Haversine(%v) = NaN", c)
		}
	}
}
