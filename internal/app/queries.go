package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"travelease/internal/catalog"
	"travelease/internal/domain"
	"travelease/internal/pricing"
	"travelease/internal/search"
	"travelease/internal/tripstate"
)

type QueryService struct {
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{cache: c, cacheTTL: ttl}
}

func (s *QueryService) Destinations(ctx context.Context) []domain.Destination {
	return catalog.Destinations()
}

func (s *QueryService) GetDestination(ctx context.Context, id int64) (domain.Destination, error) {
	d, ok := catalog.DestinationByID(id)
	if !ok {
		return domain.Destination{}, fmt.Errorf("destination %d: %w", id, domain.ErrNotFound)
	}
	return d, nil
}

func (s *QueryService) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	h, ok := catalog.HotelByID(id)
	if !ok {
		return domain.Hotel{}, fmt.Errorf("hotel %d: %w", id, domain.ErrNotFound)
	}
	return h, nil
}

// SearchHotels runs the filter engine over the catalog, optionally applying
// the explicit price sort on the filtered result. Results are cached per
// canonical criteria key.
func (s *QueryService) SearchHotels(ctx context.Context, c search.Criteria, sortPriceAsc bool) ([]domain.Hotel, error) {
	key := searchKey(c, sortPriceAsc)
	var cached []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	out := search.Filter(catalog.Hotels(), c)
	if sortPriceAsc {
		out = search.SortByPriceAsc(out)
	}

	// copy before caching so later callers cannot mutate the cached value
	cp := make([]domain.Hotel, len(out))
	copy(cp, out)
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return out, nil
}

// Quote is the priced stay summary shown before checkout.
type Quote struct {
	Hotel  domain.Hotel
	Draft  domain.BookingDraft
	Totals pricing.Totals
}

// QuoteStay resolves the nightly rate for the draft's room type and computes
// stay totals. The draft's carried price is recomputed, never trusted.
func (s *QueryService) QuoteStay(ctx context.Context, hotelID int64, draft domain.BookingDraft) (Quote, error) {
	h, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return Quote{}, err
	}
	nightly, err := pricing.RoomPrice(h, draft.RoomType)
	if err != nil {
		return Quote{}, err
	}
	if draft.Nights < 1 {
		draft.Nights = tripstate.DefaultNights
	}
	draft.PricePerNight = nightly
	return Quote{Hotel: h, Draft: draft, Totals: pricing.StayTotal(nightly, draft.Nights)}, nil
}

// searchKey canonicalizes criteria so equivalent filters share a cache entry.
func searchKey(c search.Criteria, sorted bool) string {
	dest := "any"
	if c.DestinationID != nil {
		dest = fmt.Sprintf("%d", *c.DestinationID)
	}
	buckets := make([]int, 0, len(c.RatingBuckets))
	for b := range c.RatingBuckets {
		buckets = append(buckets, b)
	}
	sort.Ints(buckets)
	amen := append([]string(nil), c.RequiredAmenities...)
	sort.Strings(amen)
	return fmt.Sprintf("hotels:%s:%d-%d:%v:%s:%t",
		dest, c.PriceMin, c.PriceMax, buckets, strings.Join(amen, ","), sorted)
}
