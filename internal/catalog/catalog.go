// Package catalog holds the static destination/hotel snapshot the service
// runs against. Records are built once at load and never mutated; callers
// must treat returned slices as read-only.
package catalog

import (
	"sort"

	"travelease/internal/domain"
)

// Destinations returns all destinations in catalog order.
func Destinations() []domain.Destination { return destinations }

// Hotels returns all hotels in catalog order.
func Hotels() []domain.Hotel { return hotels }

func DestinationByID(id int64) (domain.Destination, bool) {
	for _, d := range destinations {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Destination{}, false
}

func HotelByID(id int64) (domain.Hotel, bool) {
	for _, h := range hotels {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hotel{}, false
}

// HotelsByDestination returns the hotels of one destination, catalog order
// preserved.
func HotelsByDestination(destinationID int64) []domain.Hotel {
	var out []domain.Hotel
	for _, h := range hotels {
		if h.DestinationID == destinationID {
			out = append(out, h)
		}
	}
	return out
}

// Amenities returns the distinct amenity labels across all hotels, sorted.
// The listing page builds its filter checkboxes from this.
func Amenities() []string {
	seen := map[string]bool{}
	var out []string
	for _, h := range hotels {
		for _, a := range h.Amenities {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	sort.Strings(out)
	return out
}
