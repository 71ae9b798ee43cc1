package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelease/internal/app"
	"travelease/internal/domain"
)

// ---- fakes ----

type fakeBookingRepo struct {
	mu         sync.Mutex
	inserted   []domain.Booking
	notified   []string
	insertErr  error
	unnotified []domain.Booking
}

func (f *fakeBookingRepo) InsertBooking(ctx context.Context, b domain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, b)
	return nil
}

func (f *fakeBookingRepo) MarkNotified(ctx context.Context, bookingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, bookingID)
	return nil
}

func (f *fakeBookingRepo) GetBooking(ctx context.Context, bookingID string) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.inserted {
		if b.BookingID == bookingID {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

func (f *fakeBookingRepo) ListBookingsByGuest(ctx context.Context, email string) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Booking
	for _, b := range f.inserted {
		if b.GuestEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListUnnotified(ctx context.Context, limit int) ([]domain.Booking, error) {
	return f.unnotified, nil
}

func (f *fakeBookingRepo) notifiedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notified)
}

type fakeNotifier struct {
	mu     sync.Mutex
	emails []domain.EmailNotification
	smss   []domain.SMSNotification
	fail   error
}

func (f *fakeNotifier) SendEmail(ctx context.Context, n domain.EmailNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.emails = append(f.emails, n)
	return nil
}

func (f *fakeNotifier) SendSMS(ctx context.Context, n domain.SMSNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.smss = append(f.smss, n)
	return nil
}

func (f *fakeNotifier) emailCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.emails)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User // by email
}

func (f *fakeUserRepo) UpsertUser(ctx context.Context, u domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.users == nil {
		f.users = map[string]domain.User{}
	}
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

type fakeSessions struct {
	mu    sync.Mutex
	store map[string]domain.Session
}

func (f *fakeSessions) Save(ctx context.Context, s domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.store == nil {
		f.store = map[string]domain.Session{}
	}
	f.store[s.Token] = s
	return nil
}

func (f *fakeSessions) Load(ctx context.Context, token string) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.store[token]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessions) Clear(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, token)
	return nil
}

func validDraft() domain.BookingDraft {
	return domain.BookingDraft{
		RoomType: "Premium Suite",
		CheckIn:  time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Adults:   2,
		Children: 1,
		Nights:   3,
	}
}

func validGuest() domain.Guest {
	return domain.Guest{Name: "Asha Rao", Email: "asha@example.com", Phone: "+919800000000"}
}

// ---- booking tests ----

func TestCreateBooking_ComputesServerSideTotals(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	svc := app.NewBookingService(repo, notifier)

	draft := validDraft()
	draft.PricePerNight = 1 // client-supplied price must be ignored

	b, err := svc.CreateBooking(context.Background(), 1, draft, validGuest(), "late checkout", "card")
	require.NoError(t, err)

	// Taj View Hotel at festival 15000 x 1.5 = 22500/night x 3 nights.
	assert.Equal(t, int64(22500), b.PricePerNight)
	assert.Equal(t, int64(67500), b.TotalPrice)
	assert.Equal(t, int64(12150), b.Taxes)
	assert.Equal(t, int64(79650), b.GrandTotal)
	assert.Equal(t, "Taj View Hotel", b.HotelName)
	assert.Regexp(t, `^BK\d{8}$`, b.BookingID)

	// Confirmation goes out in the background and marks the row.
	require.Eventually(t, func() bool { return repo.notifiedCount() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, notifier.emailCount())
}

func TestCreateBooking_MissingGuestFields(t *testing.T) {
	svc := app.NewBookingService(&fakeBookingRepo{}, &fakeNotifier{})

	for _, g := range []domain.Guest{
		{Email: "a@b.c", Phone: "1"},
		{Name: "A", Phone: "1"},
		{Name: "A", Email: "a@b.c"},
	} {
		_, err := svc.CreateBooking(context.Background(), 1, validDraft(), g, "", "card")
		require.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestCreateBooking_UnknownHotel(t *testing.T) {
	svc := app.NewBookingService(&fakeBookingRepo{}, &fakeNotifier{})
	_, err := svc.CreateBooking(context.Background(), 999, validDraft(), validGuest(), "", "card")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBooking_UnknownRoomType(t *testing.T) {
	svc := app.NewBookingService(&fakeBookingRepo{}, &fakeNotifier{})
	draft := validDraft()
	draft.RoomType = "Igloo"
	_, err := svc.CreateBooking(context.Background(), 1, draft, validGuest(), "", "card")
	require.ErrorIs(t, err, domain.ErrRoomTypeUnknown)
}

func TestCreateBooking_SurvivesNotificationFailure(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := &fakeNotifier{fail: errors.New("provider down")}
	svc := app.NewBookingService(repo, notifier)

	b, err := svc.CreateBooking(context.Background(), 1, validDraft(), validGuest(), "", "upi")
	require.NoError(t, err, "booking must not roll back on notification failure")

	got, err := repo.GetBooking(context.Background(), b.BookingID)
	require.NoError(t, err)
	assert.Nil(t, got.NotifiedAt)

	// Give the background send time to fail; the row must stay unmarked.
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, repo.notifiedCount())
}

func TestCreateBooking_ClampsNights(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := app.NewBookingService(repo, &fakeNotifier{})

	draft := validDraft()
	draft.Nights = 0
	b, err := svc.CreateBooking(context.Background(), 1, draft, validGuest(), "", "card")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Nights)
}

// ---- auth tests ----

func TestLogin_MockSemantics(t *testing.T) {
	users := &fakeUserRepo{}
	sessions := &fakeSessions{}
	svc := app.NewAuthService(users, sessions)

	sess, err := svc.Login(context.Background(), "ravi@example.com", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "ravi", sess.User.Name, "name derives from the email local part")
	assert.Equal(t, domain.ProviderEmail, sess.User.Provider)
	assert.NotEmpty(t, sess.Token)

	// Session is loadable, and a second login keeps the same user identity.
	loaded, err := svc.Session(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, loaded.User.ID)

	again, err := svc.Login(context.Background(), "ravi@example.com", "other")
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, again.User.ID)
}

func TestLogin_Validation(t *testing.T) {
	svc := app.NewAuthService(&fakeUserRepo{}, &fakeSessions{})
	_, err := svc.Login(context.Background(), "", "pw")
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Login(context.Background(), "a@b.c", "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignup(t *testing.T) {
	svc := app.NewAuthService(&fakeUserRepo{}, &fakeSessions{})
	phone := "+911112223334"
	sess, err := svc.Signup(context.Background(), "Asha Rao", "asha@example.com", "pw", &phone)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", sess.User.Name)
	require.NotNil(t, sess.User.Phone)
	assert.Equal(t, phone, *sess.User.Phone)

	_, err = svc.Signup(context.Background(), "", "x@y.z", "pw", nil)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestLoginWithGoogle(t *testing.T) {
	svc := app.NewAuthService(&fakeUserRepo{}, &fakeSessions{})
	sess, err := svc.LoginWithGoogle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderGoogle, sess.User.Provider)
	assert.Equal(t, "user@gmail.com", sess.User.Email)
	assert.NotNil(t, sess.User.PhotoURL)
}

func TestLogout(t *testing.T) {
	svc := app.NewAuthService(&fakeUserRepo{}, &fakeSessions{})
	sess, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.Token))
	_, err = svc.Session(context.Background(), sess.Token)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}
