package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"travelease/internal/app"
	"travelease/internal/domain"
	"travelease/internal/search"
	"travelease/internal/tripstate"
)

type Handlers struct {
	Q *app.QueryService
	B *app.BookingService
	A *app.AuthService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/destinations", h.listDestinations)
	s.mux.Get("/v1/destinations/{id}", h.getDestination)
	s.mux.Get("/v1/hotels", h.searchHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Get("/v1/hotels/{id}/quote", h.quoteStay)

	s.mux.Post("/v1/auth/login", h.login)
	s.mux.Post("/v1/auth/signup", h.signup)
	s.mux.Post("/v1/auth/google", h.loginGoogle)
	s.mux.Post("/v1/auth/logout", h.logout)
	s.mux.Get("/v1/auth/session", h.session)

	s.mux.Post("/v1/bookings", h.createBooking)
	s.mux.Get("/v1/bookings", h.listBookings)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeDomainErr maps domain sentinel errors onto problem+json statuses.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrRoomTypeUnknown):
		writeProblem(w, http.StatusUnprocessableEntity, "Unknown Room Type", err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		writeProblem(w, http.StatusUnauthorized, "Not Authenticated", "a valid session token is required")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- catalog reads ----

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	ds := h.Q.Destinations(r.Context())
	out := make([]destinationDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDestinationDTO(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getDestination(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	d, err := h.Q.GetDestination(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDestinationDTO(d))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	hotel, err := h.Q.GetHotel(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	etag, body := calcETagAndBody(toHotelDTO(hotel))
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	c, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Filter", err.Error())
		return
	}
	sortAsc := r.URL.Query().Get("sort") == "price_asc"

	hotels, err := h.Q.SearchHotels(r.Context(), c, sortAsc)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	out := make([]hotelDTO, 0, len(hotels))
	for _, hotel := range hotels {
		out = append(out, toHotelDTO(hotel))
	}
	writeJSON(w, http.StatusOK, out)
}

func criteriaFromQuery(q url.Values) (search.Criteria, error) {
	var c search.Criteria
	if v := q.Get("destination"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.New("destination must be a number")
		}
		c.DestinationID = &id
	}
	if v := q.Get("price_min"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.New("price_min must be a number")
		}
		c.PriceMin = n
	}
	if v := q.Get("price_max"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.New("price_max must be a number")
		}
		c.PriceMax = n
	}
	for _, v := range q["rating"] {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			return c, errors.New("rating must be an integer between 1 and 5")
		}
		if c.RatingBuckets == nil {
			c.RatingBuckets = map[int]bool{}
		}
		c.RatingBuckets[n] = true
	}
	c.RequiredAmenities = q["amenity"]
	return c, nil
}

func (h *Handlers) quoteStay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	draft := tripstate.Decode(firstValues(r.URL.Query()), time.Now().UTC())
	q, err := h.Q.QuoteStay(r.Context(), id, draft)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteDTO(q))
}

// firstValues flattens url.Values into the codec's carrier shape.
func firstValues(q url.Values) map[string]string {
	out := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// ---- auth ----

const sessionHeader = "X-Session-Token"

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	sess, err := h.A.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionDTO(sess))
}

func (h *Handlers) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}
	sess, err := h.A.Signup(r.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionDTO(sess))
}

func (h *Handlers) loginGoogle(w http.ResponseWriter, r *http.Request) {
	sess, err := h.A.LoginWithGoogle(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionDTO(sess))
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(sessionHeader)
	if token == "" {
		writeDomainErr(w, domain.ErrUnauthenticated)
		return
	}
	if err := h.A.Logout(r.Context(), token); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) session(w http.ResponseWriter, r *http.Request) {
	sess, err := h.A.Session(r.Context(), r.Header.Get(sessionHeader))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionDTO(sess))
}

// ---- bookings ----

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	sess, err := h.A.Session(r.Context(), r.Header.Get(sessionHeader))
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed JSON")
		return
	}

	// The draft fields arrive as strings (query-parameter carrier); the codec
	// supplies defaults for anything missing or malformed.
	draft := tripstate.Decode(map[string]string{
		"roomType": req.RoomType,
		"checkIn":  req.CheckIn,
		"checkOut": req.CheckOut,
		"adults":   req.Adults,
		"children": req.Children,
		"price":    req.Price,
		"nights":   req.Nights,
	}, time.Now().UTC())

	guest := domain.Guest{Name: req.GuestName, Email: req.GuestEmail, Phone: req.GuestPhone}
	if guest.Name == "" {
		guest.Name = sess.User.Name
	}
	if guest.Email == "" {
		guest.Email = sess.User.Email
	}

	b, err := h.B.CreateBooking(r.Context(), req.HotelID, draft, guest, req.SpecialRequests, req.PaymentMethod)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingDTO(b))
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	sess, err := h.A.Session(r.Context(), r.Header.Get(sessionHeader))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	bs, err := h.B.ListBookings(r.Context(), sess.User.Email)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	out := make([]bookingDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingDTO(b))
	}
	writeJSON(w, http.StatusOK, out)
}
