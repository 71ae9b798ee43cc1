package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	httpserver "travelease/internal/adapters/http_server"
	"travelease/internal/adapters/notify"
	redisad "travelease/internal/adapters/redis"
	"travelease/internal/app"
	"travelease/internal/domain"
)

type memBookingRepo struct {
	mu       sync.Mutex
	bookings []domain.Booking
}

func (m *memBookingRepo) InsertBooking(ctx context.Context, b domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *memBookingRepo) MarkNotified(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	for i := range m.bookings {
		if m.bookings[i].BookingID == id {
			m.bookings[i].NotifiedAt = &now
		}
	}
	return nil
}

func (m *memBookingRepo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.BookingID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

func (m *memBookingRepo) ListBookingsByGuest(ctx context.Context, email string) ([]domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.GuestEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) ListUnnotified(ctx context.Context, limit int) ([]domain.Booking, error) {
	return nil, nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func (m *memUserRepo) UpsertUser(ctx context.Context, u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.users == nil {
		m.users = map[string]domain.User{}
	}
	m.users[u.Email] = u
	return nil
}

func (m *memUserRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cache := redisad.NewWithClient(rc)
	sessions := redisad.NewSessionStore(rc, time.Hour)
	sender := notify.New("travel09ease@gmail.com", 0, 0, 100)

	h := &httpserver.Handlers{
		Q: app.NewQueryService(cache, 15*time.Minute),
		B: app.NewBookingService(&memBookingRepo{}, sender),
		A: app.NewAuthService(&memUserRepo{}, sessions),
	}
	srv := httpserver.New()
	srv.MountHandlers(h)
	return srv.Mux()
}

func doJSON(t *testing.T, h http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestListDestinations(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/v1/destinations", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	out := decode[[]map[string]any](t, rec)
	if len(out) != 6 {
		t.Fatalf("got %d destinations, want 6", len(out))
	}
	if out[0]["name"] != "Taj Mahal" {
		t.Fatalf("first destination %v, want Taj Mahal", out[0]["name"])
	}
}

func TestGetDestination_NotFound(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/v1/destinations/999", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q, want problem+json", ct)
	}
}

func TestSearchHotels(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/hotels", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if got := decode[[]map[string]any](t, rec); len(got) != 7 {
		t.Fatalf("unfiltered search returned %d hotels, want 7", len(got))
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/hotels?destination=1", "", nil)
	got := decode[[]map[string]any](t, rec)
	if len(got) != 2 {
		t.Fatalf("destination=1 returned %d hotels, want 2", len(got))
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/hotels?sort=price_asc", "", nil)
	sorted := decode[[]hotelPrice](t, rec)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].price() < sorted[i-1].price() {
			t.Fatalf("hotels not sorted by price at %d: %v", i, sorted)
		}
	}
}

type hotelPrice struct {
	PricePerNight struct {
		Regular  int64  `json:"regular"`
		Festival *int64 `json:"festival"`
	} `json:"pricePerNight"`
}

func (h hotelPrice) price() int64 {
	if h.PricePerNight.Festival != nil {
		return *h.PricePerNight.Festival
	}
	return h.PricePerNight.Regular
}

func TestSearchHotels_BadRating(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/v1/hotels?rating=abc", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestGetHotel_ETag(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/hotels/1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/hotels/1", nil)
	req.Header.Set("If-None-Match", etag)
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusNotModified {
		t.Fatalf("status %d, want 304", rec2.Code)
	}
}

func TestQuoteStay(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/v1/hotels/1/quote?roomType=Premium+Suite&nights=3", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	q := decode[map[string]any](t, rec)
	if q["pricePerNight"] != float64(22500) {
		t.Fatalf("pricePerNight %v, want 22500", q["pricePerNight"])
	}
	if q["grandTotal"] != float64(79650) {
		t.Fatalf("grandTotal %v, want 79650", q["grandTotal"])
	}
	// omitted carrier fields fall back to defaults
	if q["adults"] != float64(2) || q["children"] != float64(0) {
		t.Fatalf("occupancy defaults wrong: adults=%v children=%v", q["adults"], q["children"])
	}
}

func TestQuoteStay_UnknownRoom(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/v1/hotels/1/quote?roomType=Igloo", "", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", rec.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/signup", "", map[string]any{
		"name": "Asha Rao", "email": "asha@example.com", "password": "pw", "phone": "+919800000000",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status %d: %s", rec.Code, rec.Body.String())
	}
	sess := decode[map[string]any](t, rec)
	token, _ := sess["token"].(string)
	if token == "" {
		t.Fatal("signup returned no token")
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/auth/session", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("session status %d", rec.Code)
	}
	got := decode[map[string]any](t, rec)
	if got["email"] != "asha@example.com" || got["provider"] != "email" {
		t.Fatalf("session payload wrong: %v", got)
	}

	rec = doJSON(t, h, http.MethodPost, "/v1/auth/logout", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/auth/session", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("session after logout status %d, want 401", rec.Code)
	}
}

func TestGoogleLogin(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/v1/auth/google", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	sess := decode[map[string]any](t, rec)
	if sess["email"] != "user@gmail.com" || sess["provider"] != "google" {
		t.Fatalf("google session wrong: %v", sess)
	}
}

func TestBookingFlow(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email": "ravi@example.com", "password": "pw",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d", rec.Code)
	}
	token := decode[map[string]any](t, rec)["token"].(string)

	body := map[string]any{
		"hotelId":         1,
		"roomType":        "Premium Suite",
		"checkIn":         "2026-10-02",
		"checkOut":        "2026-10-05",
		"adults":          "2",
		"children":        "1",
		"nights":          "3",
		"guestName":       "Ravi Kumar",
		"guestEmail":      "ravi@example.com",
		"guestPhone":      "+919800000001",
		"specialRequests": "late checkout",
		"paymentMethod":   "card",
	}
	rec = doJSON(t, h, http.MethodPost, "/v1/bookings", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create booking status %d: %s", rec.Code, rec.Body.String())
	}
	b := decode[map[string]any](t, rec)
	if !regexp.MustCompile(`^BK\d{8}$`).MatchString(b["bookingId"].(string)) {
		t.Fatalf("bookingId %v not in BK######## form", b["bookingId"])
	}
	if b["grandTotal"] != float64(79650) {
		t.Fatalf("grandTotal %v, want 79650", b["grandTotal"])
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/bookings", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list bookings status %d", rec.Code)
	}
	list := decode[[]map[string]any](t, rec)
	if len(list) != 1 || list[0]["hotelName"] != "Taj View Hotel" {
		t.Fatalf("list wrong: %v", list)
	}
}

// Submitting the same checkout form twice creates two bookings; there is no
// dedup key on the request, matching the original checkout behavior.
func TestBooking_DoubleSubmitCreatesTwo(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email": "dup@example.com", "password": "pw",
	})
	token := decode[map[string]any](t, rec)["token"].(string)

	body := map[string]any{
		"hotelId": 1, "roomType": "Deluxe Room",
		"checkIn": "2026-11-01", "checkOut": "2026-11-03", "nights": "2",
		"guestName": "Dup Guest", "guestEmail": "dup@example.com", "guestPhone": "+910000000000",
		"paymentMethod": "card",
	}
	for i := 0; i < 2; i++ {
		if rec = doJSON(t, h, http.MethodPost, "/v1/bookings", token, body); rec.Code != http.StatusCreated {
			t.Fatalf("submit %d status %d", i, rec.Code)
		}
	}

	rec = doJSON(t, h, http.MethodGet, "/v1/bookings", token, nil)
	if list := decode[[]map[string]any](t, rec); len(list) != 2 {
		t.Fatalf("got %d bookings after double submit, want 2", len(list))
	}
}

func TestBooking_RequiresSession(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/v1/bookings", "", map[string]any{"hotelId": 1})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
	rec = doJSON(t, h, http.MethodGet, "/v1/bookings", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
}
