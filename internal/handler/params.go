package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/snapwork/snapwork/internal/geo"
	"github.com/snapwork/snapwork/internal/query"
)

// parseQuerySpec coerces discovery query parameters into a query.Spec.
// Unparseable lat/lng/radiusKm values are treated as absent, which silently
// disables geo filtering for the request rather than rejecting it.
func parseQuerySpec(r *http.Request, defaultRadiusKm float64) query.Spec {
	q := r.URL.Query()

	spec := query.Spec{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Sort:     query.ParseSort(q.Get("sort")),
		RadiusKm: defaultRadiusKm,
	}

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr == nil && lngErr == nil {
		spec.Origin = &geo.Point{Lat: lat, Lng: lng}
	}

	if radius, err := strconv.ParseFloat(q.Get("radiusKm"), 64); err == nil && radius > 0 {
		spec.RadiusKm = radius
	}

	return spec
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
