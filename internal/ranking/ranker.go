// Package ranking turns a catalog of listings plus the active filter state
// into the ordered sequence shown to the user.
package ranking

import (
	"sort"
	"strings"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/geo"
)

// Filters is the active filter state. Zero values are sentinels: CategoryAll,
// DepartmentAll and an empty (or whitespace-only) query all mean "no
// restriction" for their stage.
type Filters struct {
	Category   domain.Category
	Department string
	Query      string
}

// Rank filters and orders the catalog. Stages apply in fixed order: category,
// department, free-text, then a stable three-level sort (promoted first, then
// ascending distance from origin when one is given, then descending rating).
// Listings equal on all levels keep their catalog relative order.
//
// Rank is pure: it never mutates catalog and is total over its inputs.
// Unknown filter values simply match nothing.
func Rank(catalog []domain.Listing, f Filters, origin *geo.Point) []domain.Listing {
	result := domain.CloneListings(catalog)

	if f.Category != "" && f.Category != domain.CategoryAll {
		result = keep(result, func(l domain.Listing) bool {
			return l.Category == f.Category
		})
	}

	if f.Department != "" && f.Department != domain.DepartmentAll {
		result = keep(result, func(l domain.Listing) bool {
			return l.Department == f.Department
		})
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		result = keep(result, func(l domain.Listing) bool {
			return matchesQuery(l, q)
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j], origin)
	})

	return result
}

// keep retains the listings satisfying pred, in place.
func keep(in []domain.Listing, pred func(domain.Listing) bool) []domain.Listing {
	out := in[:0]
	for _, l := range in {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

// matchesQuery reports whether the folded query is a substring of the folded
// name or of any tag.
func matchesQuery(l domain.Listing, folded string) bool {
	if strings.Contains(strings.ToLower(l.Name), folded) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), folded) {
			return true
		}
	}
	return false
}

// less is the three-level comparator. Promoted listings sort strictly first.
// With an origin, closer listings win; missing coordinates count as infinitely
// far. Without an origin, or as the final tie-break, higher rating wins.
func less(a, b domain.Listing, origin *geo.Point) bool {
	if a.IsPromoted != b.IsPromoted {
		return a.IsPromoted
	}
	if origin != nil {
		da := geo.Distance(*origin, a.Latitude, a.Longitude)
		db := geo.Distance(*origin, b.Latitude, b.Longitude)
		if da != db {
			return da < db
		}
	}
	return a.Rating > b.Rating
}
