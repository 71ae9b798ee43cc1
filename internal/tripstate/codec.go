// Package tripstate round-trips a booking draft through a flat string-keyed
// map, the carrier used by the query string between the hotel page and
// checkout. Decoding is total: every field has a documented default and no
// input can make it fail.
package tripstate

import (
	"strconv"
	"time"

	"travelease/internal/domain"
)

const (
	keyRoomType = "roomType"
	keyCheckIn  = "checkIn"
	keyCheckOut = "checkOut"
	keyAdults   = "adults"
	keyChildren = "children"
	keyPrice    = "price"
	keyNights   = "nights"
)

// Defaults applied when a field is missing or malformed.
const (
	DefaultAdults   = 2
	DefaultChildren = 0
	DefaultPrice    = 0
	DefaultNights   = 1
)

// Encode flattens a draft into the string carrier. Dates are RFC 3339 in UTC.
func Encode(d domain.BookingDraft) map[string]string {
	return map[string]string{
		keyRoomType: d.RoomType,
		keyCheckIn:  d.CheckIn.UTC().Format(time.RFC3339),
		keyCheckOut: d.CheckOut.UTC().Format(time.RFC3339),
		keyAdults:   strconv.Itoa(d.Adults),
		keyChildren: strconv.Itoa(d.Children),
		keyPrice:    strconv.FormatInt(d.PricePerNight, 10),
		keyNights:   strconv.Itoa(d.Nights),
	}
}

// Decode rebuilds a draft from the carrier, substituting defaults for absent
// or malformed values. Missing dates fall back to now.
func Decode(params map[string]string, now time.Time) domain.BookingDraft {
	return domain.BookingDraft{
		RoomType:      params[keyRoomType],
		CheckIn:       dateOr(params[keyCheckIn], now),
		CheckOut:      dateOr(params[keyCheckOut], now),
		Adults:        intOr(params[keyAdults], DefaultAdults),
		Children:      intOr(params[keyChildren], DefaultChildren),
		PricePerNight: int64Or(params[keyPrice], DefaultPrice),
		Nights:        intOr(params[keyNights], DefaultNights),
	}
}

func dateOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	// Bare dates also arrive from older links.
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC()
	}
	return fallback
}

func intOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func int64Or(s string, fallback int64) int64 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
