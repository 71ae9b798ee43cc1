package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"travelease/internal/adapters/observability"
	"travelease/internal/catalog"
	"travelease/internal/domain"
	"travelease/internal/pricing"
)

type BookingService struct {
	repo     domain.BookingRepository
	notifier domain.Notifier
}

func NewBookingService(r domain.BookingRepository, n domain.Notifier) *BookingService {
	return &BookingService{repo: r, notifier: n}
}

// CreateBooking validates the checkout form, recomputes the price server-side
// and persists the booking. Confirmation email/SMS go out fire-and-forget:
// a failed send is logged and the booking stands.
func (s *BookingService) CreateBooking(
	ctx context.Context,
	hotelID int64,
	draft domain.BookingDraft,
	guest domain.Guest,
	specialRequests, paymentMethod string,
) (domain.Booking, error) {
	if guest.Name == "" || guest.Email == "" || guest.Phone == "" {
		observability.ObserveBooking("validation")
		return domain.Booking{}, fmt.Errorf("%w: name, email and phone are required", domain.ErrValidation)
	}

	h, ok := catalog.HotelByID(hotelID)
	if !ok {
		observability.ObserveBooking("validation")
		return domain.Booking{}, fmt.Errorf("hotel %d: %w", hotelID, domain.ErrNotFound)
	}

	nightly, err := pricing.RoomPrice(h, draft.RoomType)
	if err != nil {
		observability.ObserveBooking("validation")
		return domain.Booking{}, err
	}
	nights := draft.Nights
	if nights < 1 {
		nights = 1
	}
	totals := pricing.StayTotal(nightly, nights)

	now := time.Now().UTC()
	b := domain.Booking{
		BookingID:       newBookingID(now),
		HotelID:         h.ID,
		HotelName:       h.Name,
		RoomType:        draft.RoomType,
		CheckIn:         draft.CheckIn,
		CheckOut:        draft.CheckOut,
		Adults:          draft.Adults,
		Children:        draft.Children,
		PricePerNight:   nightly,
		Nights:          nights,
		TotalPrice:      totals.Subtotal,
		Taxes:           totals.Tax,
		GrandTotal:      totals.GrandTotal,
		GuestName:       guest.Name,
		GuestEmail:      guest.Email,
		GuestPhone:      guest.Phone,
		SpecialRequests: specialRequests,
		PaymentMethod:   paymentMethod,
		BookingDate:     now,
	}

	if err := s.repo.InsertBooking(ctx, b); err != nil {
		observability.ObserveBooking("error")
		return domain.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	observability.ObserveBooking("ok")

	log.Info().
		Str("booking_id", b.BookingID).
		Int64("hotel_id", b.HotelID).
		Str("guest", b.GuestEmail).
		Int64("grand_total", b.GrandTotal).
		Msg("booking created")

	go s.sendConfirmation(context.WithoutCancel(ctx), b)

	return b, nil
}

func (s *BookingService) ListBookings(ctx context.Context, guestEmail string) ([]domain.Booking, error) {
	return s.repo.ListBookingsByGuest(ctx, guestEmail)
}

// sendConfirmation is best-effort; the API dispatcher re-sends anything that
// failed here, keyed on notified_at.
func (s *BookingService) sendConfirmation(ctx context.Context, b domain.Booking) {
	if err := SendBookingNotices(ctx, s.notifier, b); err != nil {
		log.Warn().Str("booking_id", b.BookingID).Err(err).Msg("confirmation send failed")
		return
	}
	if err := s.repo.MarkNotified(ctx, b.BookingID); err != nil {
		log.Warn().Str("booking_id", b.BookingID).Err(err).Msg("mark notified failed")
	}
}

// SendBookingNotices sends the confirmation email and SMS for one booking.
// Shared by the inline confirmation path and the dispatcher.
func SendBookingNotices(ctx context.Context, n domain.Notifier, b domain.Booking) error {
	msg := fmt.Sprintf(
		"Your booking %s at %s is confirmed: %s, %s to %s, %d night(s), total INR %d.",
		b.BookingID, b.HotelName, b.RoomType,
		b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"),
		b.Nights, b.GrandTotal,
	)
	if err := n.SendEmail(ctx, domain.EmailNotification{
		To:      b.GuestEmail,
		Subject: "Booking Confirmation - " + b.BookingID,
		Message: msg,
	}); err != nil {
		return fmt.Errorf("email: %w", err)
	}
	if err := n.SendSMS(ctx, domain.SMSNotification{To: b.GuestPhone, Message: msg}); err != nil {
		return fmt.Errorf("sms: %w", err)
	}
	return nil
}

func newBookingID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return "BK" + ms[len(ms)-8:]
}

// ---- auth ----

type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionStore
}

func NewAuthService(u domain.UserRepository, s domain.SessionStore) *AuthService {
	return &AuthService{users: u, sessions: s}
}

// Login is mock authentication: any non-empty email/password pair succeeds.
// A user row is created on first login, name derived from the email local
// part, the same way the original demo fabricated its account.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if email == "" || password == "" {
		return domain.Session{}, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return s.open(ctx, u)
	}
	u = domain.User{
		ID:       uuid.New().String(),
		Name:     strings.SplitN(email, "@", 2)[0],
		Email:    email,
		Provider: domain.ProviderEmail,
	}
	if err := s.users.UpsertUser(ctx, u); err != nil {
		return domain.Session{}, fmt.Errorf("upsert user: %w", err)
	}
	return s.open(ctx, u)
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string, phone *string) (domain.Session, error) {
	if name == "" || email == "" || password == "" {
		return domain.Session{}, fmt.Errorf("%w: please fill all required fields", domain.ErrValidation)
	}
	u := domain.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Provider: domain.ProviderEmail,
	}
	if err := s.users.UpsertUser(ctx, u); err != nil {
		return domain.Session{}, fmt.Errorf("upsert user: %w", err)
	}
	return s.open(ctx, u)
}

// LoginWithGoogle fabricates the fixed mock Google profile; no real OAuth.
func (s *AuthService) LoginWithGoogle(ctx context.Context) (domain.Session, error) {
	photo := "https://ui-avatars.com/api/?name=Google+User&background=0D8ABC&color=fff"
	u := domain.User{
		ID:       uuid.New().String(),
		Name:     "Google User",
		Email:    "user@gmail.com",
		PhotoURL: &photo,
		Provider: domain.ProviderGoogle,
	}
	if existing, err := s.users.GetUserByEmail(ctx, u.Email); err == nil {
		u.ID = existing.ID
	}
	if err := s.users.UpsertUser(ctx, u); err != nil {
		return domain.Session{}, fmt.Errorf("upsert user: %w", err)
	}
	return s.open(ctx, u)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Clear(ctx, token)
}

func (s *AuthService) Session(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	sess, err := s.sessions.Load(ctx, token)
	if err != nil {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	return sess, nil
}

func (s *AuthService) open(ctx context.Context, u domain.User) (domain.Session, error) {
	sess := domain.Session{Token: uuid.New().String(), User: u}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	log.Info().Str("user_id", u.ID).Str("provider", u.Provider).Msg("session opened")
	return sess, nil
}
