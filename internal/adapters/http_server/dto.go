package httpserver

import (
	"time"

	"travelease/internal/app"
	"travelease/internal/domain"
)

// Wire shapes mirror the catalog's record layout: camelCase keys, lat/lng
// for coordinates, room types keyed "type".

type coordsDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type hotspotDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type destinationDTO struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Country     string       `json:"country"`
	Rating      float64      `json:"rating"`
	Hotspots    []hotspotDTO `json:"hotspots"`
	MapLocation coordsDTO    `json:"mapLocation"`
}

type priceScheduleDTO struct {
	Regular  int64  `json:"regular"`
	Festival *int64 `json:"festival,omitempty"`
}

type roomTypeDTO struct {
	Type            string  `json:"type"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	Availability    int     `json:"availability"`
	PriceMultiplier float64 `json:"priceMultiplier"`
}

type hotelDTO struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Images          []string         `json:"images"`
	DestinationID   int64            `json:"destinationId"`
	Rating          float64          `json:"rating"`
	Address         string           `json:"address"`
	Amenities       []string         `json:"amenities"`
	PricePerNight   priceScheduleDTO `json:"pricePerNight"`
	FestivalsNearby []string         `json:"festivalsNearby,omitempty"`
	Rooms           []roomTypeDTO    `json:"rooms"`
	MapLocation     coordsDTO        `json:"mapLocation"`
}

type quoteDTO struct {
	HotelID       int64  `json:"hotelId"`
	HotelName     string `json:"hotelName"`
	RoomType      string `json:"roomType"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	PricePerNight int64  `json:"pricePerNight"`
	Nights        int    `json:"nights"`
	TotalPrice    int64  `json:"totalPrice"`
	Taxes         int64  `json:"taxes"`
	GrandTotal    int64  `json:"grandTotal"`
}

type bookingDTO struct {
	BookingID       string `json:"bookingId"`
	HotelID         int64  `json:"hotelId"`
	HotelName       string `json:"hotelName"`
	RoomType        string `json:"roomType"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	PricePerNight   int64  `json:"pricePerNight"`
	Nights          int    `json:"nights"`
	TotalPrice      int64  `json:"totalPrice"`
	Taxes           int64  `json:"taxes"`
	GrandTotal      int64  `json:"grandTotal"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	SpecialRequests string `json:"specialRequests"`
	PaymentMethod   string `json:"paymentMethod"`
	BookingDate     string `json:"bookingDate"`
}

type sessionDTO struct {
	Token string  `json:"token"`
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Photo *string `json:"photoUrl,omitempty"`
	Prov  string  `json:"provider"`
}

// ---- request bodies ----

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
}

type createBookingRequest struct {
	HotelID         int64  `json:"hotelId"`
	RoomType        string `json:"roomType"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Adults          string `json:"adults"`
	Children        string `json:"children"`
	Price           string `json:"price"`
	Nights          string `json:"nights"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	SpecialRequests string `json:"specialRequests"`
	PaymentMethod   string `json:"paymentMethod"`
}

// ---- mapping ----

func toDestinationDTO(d domain.Destination) destinationDTO {
	hs := make([]hotspotDTO, 0, len(d.Hotspots))
	for _, h := range d.Hotspots {
		hs = append(hs, hotspotDTO{ID: h.ID, Name: h.Name, Description: h.Description, Image: h.Image})
	}
	return destinationDTO{
		ID: d.ID, Name: d.Name, Description: d.Description, Image: d.Image,
		Country: d.Country, Rating: d.Rating, Hotspots: hs,
		MapLocation: coordsDTO{Lat: d.MapLocation.Lat, Lng: d.MapLocation.Lon},
	}
}

func toHotelDTO(h domain.Hotel) hotelDTO {
	rooms := make([]roomTypeDTO, 0, len(h.Rooms))
	for _, rt := range h.Rooms {
		rooms = append(rooms, roomTypeDTO{
			Type: rt.Label, Adults: rt.Occupancy.Adults, Children: rt.Occupancy.Children,
			Availability: rt.Availability, PriceMultiplier: rt.PriceMultiplier,
		})
	}
	return hotelDTO{
		ID: h.ID, Name: h.Name, Description: h.Description, Images: h.Images,
		DestinationID: h.DestinationID, Rating: h.Rating, Address: h.Address,
		Amenities:       h.Amenities,
		PricePerNight:   priceScheduleDTO{Regular: h.PricePerNight.Regular, Festival: h.PricePerNight.Festival},
		FestivalsNearby: h.FestivalsNearby,
		Rooms:           rooms,
		MapLocation:     coordsDTO{Lat: h.MapLocation.Lat, Lng: h.MapLocation.Lon},
	}
}

func toQuoteDTO(q app.Quote) quoteDTO {
	return quoteDTO{
		HotelID:       q.Hotel.ID,
		HotelName:     q.Hotel.Name,
		RoomType:      q.Draft.RoomType,
		CheckIn:       q.Draft.CheckIn.UTC().Format(time.RFC3339),
		CheckOut:      q.Draft.CheckOut.UTC().Format(time.RFC3339),
		Adults:        q.Draft.Adults,
		Children:      q.Draft.Children,
		PricePerNight: q.Draft.PricePerNight,
		Nights:        q.Draft.Nights,
		TotalPrice:    q.Totals.Subtotal,
		Taxes:         q.Totals.Tax,
		GrandTotal:    q.Totals.GrandTotal,
	}
}

func toBookingDTO(b domain.Booking) bookingDTO {
	return bookingDTO{
		BookingID:       b.BookingID,
		HotelID:         b.HotelID,
		HotelName:       b.HotelName,
		RoomType:        b.RoomType,
		CheckIn:         b.CheckIn.UTC().Format(time.RFC3339),
		CheckOut:        b.CheckOut.UTC().Format(time.RFC3339),
		Adults:          b.Adults,
		Children:        b.Children,
		PricePerNight:   b.PricePerNight,
		Nights:          b.Nights,
		TotalPrice:      b.TotalPrice,
		Taxes:           b.Taxes,
		GrandTotal:      b.GrandTotal,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		SpecialRequests: b.SpecialRequests,
		PaymentMethod:   b.PaymentMethod,
		BookingDate:     b.BookingDate.UTC().Format(time.RFC3339),
	}
}

func toSessionDTO(s domain.Session) sessionDTO {
	return sessionDTO{
		Token: s.Token, ID: s.User.ID, Name: s.User.Name, Email: s.User.Email,
		Phone: s.User.Phone, Photo: s.User.PhotoURL, Prov: s.User.Provider,
	}
}
