package domain

type Hotel struct {
	ID              int64
	Name            string
	Description     string
	Images          []string
	DestinationID   int64
	Rating          float64
	Address         string
	Amenities       []string
	PricePerNight   PriceSchedule
	FestivalsNearby []string
	Rooms           []RoomType
	MapLocation     Coords
}

// PriceSchedule holds nightly rates in whole rupees. Festival is nil when the
// hotel has no festival rate.
type PriceSchedule struct {
	Regular  int64
	Festival *int64
}

// RoomType is a bookable configuration within a hotel. The first room type of
// every hotel carries multiplier 1 by convention.
type RoomType struct {
	Label           string
	Occupancy       Occupancy
	Availability    int
	PriceMultiplier float64
}

type Occupancy struct {
	Adults   int
	Children int
}

// Room returns the room type with the given label, or false when the hotel has
// no such room.
func (h Hotel) Room(label string) (RoomType, bool) {
	for _, rt := range h.Rooms {
		if rt.Label == label {
			return rt, true
		}
	}
	return RoomType{}, false
}
