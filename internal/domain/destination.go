package domain

type Destination struct {
	ID          int64
	Name        string
	Description string
	Country     string
	Rating      float64
	Image       string
	Hotspots    []Hotspot
	MapLocation Coords
}

// Hotspot is a sub-attraction shown on the destination page.
type Hotspot struct {
	ID          int64
	Name        string
	Description string
	Image       string
}

type Coords struct{ Lat, Lon float64 }
