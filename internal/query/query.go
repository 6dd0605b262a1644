// Package query implements the discovery pipeline: multi-criterion
// filtering, geo annotation with radius cutoff, and multi-key sorting over
// full gig and worker collections. Pagination is left to the caller; the
// pipeline always returns the complete result set.
package query

import (
	"sort"
	"strings"

	"github.com/snapwork/snapwork/internal/geo"
	"github.com/snapwork/snapwork/internal/models"
)

// DefaultRadiusKm applies when a query supplies an origin but no radius.
const DefaultRadiusKm = 25.0

// Sort is the closed set of supported result orderings. Unrecognized values
// fall back to SortNewest.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortDistance  Sort = "distance"
)

// ParseSort coerces a caller-supplied sort string into a Sort. Anything
// unknown means newest-first.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortPriceLow, SortPriceHigh, SortDistance:
		return Sort(s)
	default:
		return SortNewest
	}
}

// Spec is a parsed discovery query. Origin is nil when the requester gave no
// position, which disables all geo annotation and radius filtering.
type Spec struct {
	Category string
	Search   string
	Sort     Sort
	Origin   *geo.Point
	RadiusKm float64
}

func (s Spec) radius() float64 {
	if s.RadiusKm > 0 {
		return s.RadiusKm
	}
	return DefaultRadiusKm
}

// AnnotatedGig is a gig augmented with the computed distance from the query
// origin. DistanceKm stays null when the gig has no coordinates or the query
// had no origin; such gigs are never excluded by the radius filter.
type AnnotatedGig struct {
	models.Gig
	DistanceKm *float64 `json:"distanceKm"`
}

// AnnotatedWorker is a worker profile augmented with the computed distance
// from the query origin. The credential is already stripped.
type AnnotatedWorker struct {
	models.UserResponse
	DistanceKm *float64 `json:"distanceKm"`
	Distance   *string  `json:"distance,omitempty"`
}

// Gigs runs the discovery pipeline over a full gig collection:
// category filter, text search, geo annotation + radius filter, sort.
func Gigs(all []models.Gig, spec Spec) []AnnotatedGig {
	filtered := make([]models.Gig, 0, len(all))
	for _, g := range all {
		if !matchesCategory(g.Category, spec.Category) {
			continue
		}
		if !matchesSearch(spec.Search, g.Title, g.Description, g.Category) {
			continue
		}
		filtered = append(filtered, g)
	}

	out := make([]AnnotatedGig, 0, len(filtered))
	for _, g := range filtered {
		ag := AnnotatedGig{Gig: g}
		if spec.Origin != nil {
			if g.HasCoords() {
				d := geo.HaversineKm(*spec.Origin, g.Coords())
				ag.DistanceKm = &d
				ag.Gig.Distance = geo.FormatDistance(d)
			}
			// A gig without coordinates keeps its static distance label, if
			// any, and always passes the radius filter.
			if ag.DistanceKm != nil && *ag.DistanceKm > spec.radius() {
				continue
			}
		}
		out = append(out, ag)
	}

	sortGigs(out, spec)
	return out
}

// Workers runs the discovery pipeline over a full user collection, keeping
// only worker profiles. Search matches name and location; results are
// distance-sorted whenever an origin was supplied.
func Workers(all []models.User, spec Spec) []AnnotatedWorker {
	workers := make([]models.User, 0, len(all))
	for _, u := range all {
		if !u.IsWorker() {
			continue
		}
		if !matchesSearch(spec.Search, u.Name, u.Location) {
			continue
		}
		workers = append(workers, u)
	}

	out := make([]AnnotatedWorker, 0, len(workers))
	for _, u := range workers {
		aw := AnnotatedWorker{UserResponse: *u.ToResponse()}
		if spec.Origin != nil {
			if u.HasCoords() {
				d := geo.HaversineKm(*spec.Origin, u.Coords())
				aw.DistanceKm = &d
			}
			aw.Distance = geo.FormatDistancePtr(aw.DistanceKm)
			if aw.DistanceKm != nil && *aw.DistanceKm > spec.radius() {
				continue
			}
		}
		out = append(out, aw)
	}

	if spec.Origin != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return distanceOrInf(out[i].DistanceKm) < distanceOrInf(out[j].DistanceKm)
		})
	}

	return out
}

func matchesCategory(category, want string) bool {
	if want == "" || want == "all" {
		return true
	}
	return category == want
}

func matchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func sortGigs(gigs []AnnotatedGig, spec Spec) {
	switch {
	case spec.Sort == SortPriceLow:
		// Unparseable payments rank as +Inf here and -Inf below, placing
		// them after every priced entry in both directions.
		sort.SliceStable(gigs, func(i, j int) bool {
			return paymentRank(gigs[i].Payment, positiveInf) < paymentRank(gigs[j].Payment, positiveInf)
		})
	case spec.Sort == SortPriceHigh:
		sort.SliceStable(gigs, func(i, j int) bool {
			return paymentRank(gigs[i].Payment, negativeInf) > paymentRank(gigs[j].Payment, negativeInf)
		})
	case spec.Sort == SortDistance && spec.Origin != nil:
		sort.SliceStable(gigs, func(i, j int) bool {
			return distanceOrInf(gigs[i].DistanceKm) < distanceOrInf(gigs[j].DistanceKm)
		})
	default:
		sort.SliceStable(gigs, func(i, j int) bool {
			return gigs[i].CreatedAt.After(gigs[j].CreatedAt)
		})
	}
}

func distanceOrInf(km *float64) float64 {
	if km == nil {
		return positiveInf
	}
	return *km
}
