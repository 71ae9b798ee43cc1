// Package pricing resolves nightly rates and stay totals. All functions are
// pure.
package pricing

import (
	"fmt"
	"math"

	"travelease/internal/domain"
)

// TaxRate is the GST applied to every stay. Fixed, not per-region.
const TaxRate = 0.18

// EffectiveBasePrice picks the nightly rate before any room multiplier. A
// hotel with at least one nearby festival and a defined festival rate is
// charged at the festival rate for every stay; no date-window check is made
// against the booking's check-in.
func EffectiveBasePrice(h domain.Hotel) int64 {
	if len(h.FestivalsNearby) > 0 && h.PricePerNight.Festival != nil {
		return *h.PricePerNight.Festival
	}
	return h.PricePerNight.Regular
}

// RoomPrice returns the nightly rate for one room type of h, rounded to whole
// rupees. An unknown label is a validation error, not a silent fallback.
func RoomPrice(h domain.Hotel, roomType string) (int64, error) {
	rt, ok := h.Room(roomType)
	if !ok {
		return 0, fmt.Errorf("%w: %q in hotel %d", domain.ErrRoomTypeUnknown, roomType, h.ID)
	}
	return int64(math.Round(float64(EffectiveBasePrice(h)) * rt.PriceMultiplier)), nil
}

// Totals is the per-stay price breakdown.
type Totals struct {
	Subtotal   int64
	Tax        int64
	GrandTotal int64
}

// StayTotal computes the stay breakdown: subtotal = nightly x nights, tax =
// round(subtotal x 18%), grand total = subtotal + tax.
func StayTotal(nightlyPrice int64, nights int) Totals {
	subtotal := nightlyPrice * int64(nights)
	tax := int64(math.Round(float64(subtotal) * TaxRate))
	return Totals{Subtotal: subtotal, Tax: tax, GrandTotal: subtotal + tax}
}
