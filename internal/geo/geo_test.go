package geo

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	koramangala := Point{Lat: 12.9352, Lng: 77.6245}
	mgRoad := Point{Lat: 12.9716, Lng: 77.5946}

	t.Run("identity", func(t *testing.T) {
		if d := HaversineKm(koramangala, koramangala); d != 0 {
			t.Errorf("HaversineKm(p, p) = %v, want 0", d)
		}
	})

	t.Run("symmetry", func(t *testing.T) {
		ab := HaversineKm(koramangala, mgRoad)
		ba := HaversineKm(mgRoad, koramangala)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("HaversineKm not symmetric: %v vs %v", ab, ba)
		}
	})

	t.Run("known distance", func(t *testing.T) {
		// MG Road to Koramangala is roughly 5 km straight-line
		d := HaversineKm(mgRoad, koramangala)
		if d < 4 || d > 6 {
			t.Errorf("HaversineKm() = %v, expected between 4-6 km", d)
		}
	})
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km   float64
		want string
	}{
		{0.5, "500 m"},
		{0.9994, "999 m"},
		{1.0, "1.0 km"},
		{1.25, "1.2 km"},
		{12.34, "12.3 km"},
		{0, "0 m"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.km); got != tt.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tt.km, got, tt.want)
		}
	}

	if got := FormatDistance(math.NaN()); got != "" {
		t.Errorf("FormatDistance(NaN) = %q, want empty", got)
	}
}

func TestFormatDistancePtr(t *testing.T) {
	if got := FormatDistancePtr(nil); got != nil {
		t.Errorf("FormatDistancePtr(nil) = %v, want nil", *got)
	}

	nan := math.NaN()
	if got := FormatDistancePtr(&nan); got != nil {
		t.Errorf("FormatDistancePtr(NaN) = %v, want nil", *got)
	}

	km := 2.5
	got := FormatDistancePtr(&km)
	if got == nil || *got != "2.5 km" {
		t.Errorf("FormatDistancePtr(2.5) = %v, want 2.5 km", got)
	}
}
