package domain

import "context"

type BookingRepository interface {
	// Write paths
	InsertBooking(ctx context.Context, b Booking) error
	MarkNotified(ctx context.Context, bookingID string) error

	// Read paths
	GetBooking(ctx context.Context, bookingID string) (Booking, error)
	ListBookingsByGuest(ctx context.Context, guestEmail string) ([]Booking, error)
	ListUnnotified(ctx context.Context, limit int) ([]Booking, error)
}

type UserRepository interface {
	UpsertUser(ctx context.Context, u User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// SessionStore keeps one Session per token; Load returns ErrNotFound for an
// unknown or cleared token.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context, token string) (Session, error)
	Clear(ctx context.Context, token string) error
}

// Notifier is the simulated email/SMS provider. Sends always take an
// artificial delay; both calls are fire-and-forget from the booking flow.
type Notifier interface {
	SendEmail(ctx context.Context, n EmailNotification) error
	SendSMS(ctx context.Context, n SMSNotification) error
}

type EmailNotification struct {
	To      string
	Subject string
	Message string
	From    string // defaults to the configured sender when empty
}

type SMSNotification struct {
	To      string
	Message string
}
