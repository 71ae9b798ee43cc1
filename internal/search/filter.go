// Package search is the hotel filter engine behind the listing page.
package search

import (
	"math"
	"sort"

	"travelease/internal/domain"
	"travelease/internal/pricing"
)

// Criteria is one filter selection. Zero-valued fields are treated as absent:
// nil DestinationID matches every destination, empty buckets/amenities skip
// their step. PriceMin > PriceMax is not rejected; it simply matches nothing.
type Criteria struct {
	DestinationID     *int64
	PriceMin          int64
	PriceMax          int64
	RatingBuckets     map[int]bool
	RequiredAmenities []string
}

// Empty reports whether c applies no narrowing at all.
func (c Criteria) Empty() bool {
	return c.DestinationID == nil && c.PriceMin == 0 && c.PriceMax == 0 &&
		len(c.RatingBuckets) == 0 && len(c.RequiredAmenities) == 0
}

// Filter narrows hotels by sequential predicates: destination, effective base
// price bounds (inclusive), floor(rating) bucket membership, then required
// amenities as a subset check. Input order is preserved; no sorting happens
// here.
func Filter(hotels []domain.Hotel, c Criteria) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if c.DestinationID != nil && h.DestinationID != *c.DestinationID {
			continue
		}
		if !priceInRange(h, c) {
			continue
		}
		if len(c.RatingBuckets) > 0 && !c.RatingBuckets[int(math.Floor(h.Rating))] {
			continue
		}
		if !hasAllAmenities(h, c.RequiredAmenities) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func priceInRange(h domain.Hotel, c Criteria) bool {
	if c.PriceMin == 0 && c.PriceMax == 0 {
		return true
	}
	p := pricing.EffectiveBasePrice(h)
	return p >= c.PriceMin && p <= c.PriceMax
}

func hasAllAmenities(h domain.Hotel, required []string) bool {
	for _, want := range required {
		found := false
		for _, a := range h.Amenities {
			if a == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SortByPriceAsc orders hotels cheapest first, by festival rate when defined
// else regular. Explicit user-triggered transform, distinct from Filter;
// stable so equal-priced hotels keep catalog order. Sorts in place and
// returns its argument.
func SortByPriceAsc(hotels []domain.Hotel) []domain.Hotel {
	sort.SliceStable(hotels, func(i, j int) bool {
		return sortPrice(hotels[i]) < sortPrice(hotels[j])
	})
	return hotels
}

// The listing page's sort button keys on festival-or-regular without checking
// festivalsNearby, unlike the filter's effective price. Kept as-is.
func sortPrice(h domain.Hotel) int64 {
	if h.PricePerNight.Festival != nil {
		return *h.PricePerNight.Festival
	}
	return h.PricePerNight.Regular
}
