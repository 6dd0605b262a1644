package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/snapwork/snapwork/internal/query"
)

func TestParseQuerySpec(t *testing.T) {
	const defaultRadius = 25.0

	tests := []struct {
		name       string
		url        string
		wantOrigin bool
		wantRadius float64
	}{
		{"no geo params", "/api/gigs", false, defaultRadius},
		{"valid origin", "/api/gigs?lat=12.9716&lng=77.5946", true, defaultRadius},
		{"lat without lng", "/api/gigs?lat=12.9716", false, defaultRadius},
		{"lng without lat", "/api/gigs?lng=77.5946", false, defaultRadius},
		{"non-numeric lat", "/api/gigs?lat=abc&lng=77.5946", false, defaultRadius},
		{"non-numeric lng", "/api/gigs?lat=12.9716&lng=abc", false, defaultRadius},
		{"explicit radius", "/api/gigs?lat=12.9716&lng=77.5946&radiusKm=5", true, 5},
		{"non-numeric radius", "/api/gigs?lat=12.9716&lng=77.5946&radiusKm=abc", true, defaultRadius},
		{"zero radius", "/api/gigs?lat=12.9716&lng=77.5946&radiusKm=0", true, defaultRadius},
		{"negative radius", "/api/gigs?lat=12.9716&lng=77.5946&radiusKm=-3", true, defaultRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			spec := parseQuerySpec(r, defaultRadius)

			if (spec.Origin != nil) != tt.wantOrigin {
				t.Errorf("origin present = %v, want %v", spec.Origin != nil, tt.wantOrigin)
			}
			if spec.RadiusKm != tt.wantRadius {
				t.Errorf("RadiusKm = %v, want %v", spec.RadiusKm, tt.wantRadius)
			}
		})
	}
}

func TestParseQuerySpecOriginValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/gigs?lat=12.9716&lng=77.5946", nil)
	spec := parseQuerySpec(r, 25)

	if spec.Origin == nil {
		t.Fatal("origin missing")
	}
	if spec.Origin.Lat != 12.9716 || spec.Origin.Lng != 77.5946 {
		t.Errorf("origin = %+v", *spec.Origin)
	}
}

func TestParseQuerySpecFilters(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/gigs?category=cleaning&search=pool&sort=price-low", nil)
	spec := parseQuerySpec(r, 25)

	if spec.Category != "cleaning" || spec.Search != "pool" {
		t.Errorf("filters = %q / %q", spec.Category, spec.Search)
	}
	if spec.Sort != query.SortPriceLow {
		t.Errorf("sort = %q, want price-low", spec.Sort)
	}

	// unknown sort values coerce to newest
	r = httptest.NewRequest("GET", "/api/gigs?sort=bogus", nil)
	if spec := parseQuerySpec(r, 25); spec.Sort != query.SortNewest {
		t.Errorf("sort = %q, want newest", spec.Sort)
	}
}
