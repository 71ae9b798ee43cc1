package mysql

import (
	"context"
	"database/sql"

	"travelease/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- bookings ----

func (r *Repo) InsertBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.BookingID,
		b.HotelID,
		b.HotelName,
		b.RoomType,
		b.CheckIn,
		b.CheckOut,
		b.Adults,
		b.Children,
		b.PricePerNight,
		b.Nights,
		b.TotalPrice,
		b.Taxes,
		b.GrandTotal,
		b.GuestName,
		b.GuestEmail,
		b.GuestPhone,
		b.SpecialRequests,
		b.PaymentMethod,
		b.BookingDate,
	)
	return err
}

func (r *Repo) MarkNotified(ctx context.Context, bookingID string) error {
	_, err := r.db.ExecContext(ctx, markNotifiedSQL, bookingID)
	return err
}

func (r *Repo) GetBooking(ctx context.Context, bookingID string) (domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, getBookingSQL, bookingID)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) ListBookingsByGuest(ctx context.Context, guestEmail string) ([]domain.Booking, error) {
	return r.listBookings(ctx, listBookingsByGuestSQL, guestEmail)
}

func (r *Repo) ListUnnotified(ctx context.Context, limit int) ([]domain.Booking, error) {
	return r.listBookings(ctx, listUnnotifiedSQL, limit)
}

func (r *Repo) listBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanBooking(row rowScanner) (domain.Booking, error) {
	var b domain.Booking
	var notifiedAt sql.NullTime
	if err := row.Scan(
		&b.BookingID,
		&b.HotelID,
		&b.HotelName,
		&b.RoomType,
		&b.CheckIn,
		&b.CheckOut,
		&b.Adults,
		&b.Children,
		&b.PricePerNight,
		&b.Nights,
		&b.TotalPrice,
		&b.Taxes,
		&b.GrandTotal,
		&b.GuestName,
		&b.GuestEmail,
		&b.GuestPhone,
		&b.SpecialRequests,
		&b.PaymentMethod,
		&b.BookingDate,
		&notifiedAt,
	); err != nil {
		return domain.Booking{}, err
	}
	if notifiedAt.Valid {
		t := notifiedAt.Time
		b.NotifiedAt = &t
	}
	return b, nil
}

// ---- users ----

func (r *Repo) UpsertUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, upsertUserSQL,
		u.ID,
		u.Name,
		u.Email,
		valStr(u.Phone),
		valStr(u.PhotoURL),
		u.Provider,
	)
	return err
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, getUserByEmailSQL, email)

	var u domain.User
	var phone, photo sql.NullString
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &phone, &photo, &u.Provider); err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	if phone.Valid {
		p := phone.String
		u.Phone = &p
	}
	if photo.Valid {
		p := photo.String
		u.PhotoURL = &p
	}
	return u, nil
}
