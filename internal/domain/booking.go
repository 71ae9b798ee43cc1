package domain

import "time"

// BookingDraft is the in-flight set of booking parameters carried between the
// hotel page and the checkout page. It round-trips through a flat string map
// (see internal/tripstate).
type BookingDraft struct {
	RoomType      string
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	PricePerNight int64
	Nights        int
}

// Guest holds the contact fields collected on the checkout form.
type Guest struct {
	Name  string
	Email string
	Phone string
}

// Booking is a confirmed reservation. Records are append-only: there is no
// cancel or modify flow.
type Booking struct {
	BookingID       string
	HotelID         int64
	HotelName       string
	RoomType        string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	PricePerNight   int64
	Nights          int
	TotalPrice      int64
	Taxes           int64
	GrandTotal      int64
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string
	PaymentMethod   string
	BookingDate     time.Time
	NotifiedAt      *time.Time
}
