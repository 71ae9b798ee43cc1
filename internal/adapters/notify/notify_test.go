package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelease/internal/domain"
)

func TestSendEmail_OK(t *testing.T) {
	s := New("travel09ease@gmail.com", 0, 0, 100)
	err := s.SendEmail(context.Background(), domain.EmailNotification{
		To:      "asha@example.com",
		Subject: "Booking Confirmation - BK12345678",
		Message: "confirmed",
	})
	if err != nil {
		t.Fatalf("send email: %v", err)
	}
}

func TestSendSMS_OK(t *testing.T) {
	s := New("travel09ease@gmail.com", 0, 0, 100)
	if err := s.SendSMS(context.Background(), domain.SMSNotification{To: "+919800000000", Message: "confirmed"}); err != nil {
		t.Fatalf("send sms: %v", err)
	}
}

func TestSend_ForcedFailure(t *testing.T) {
	boom := errors.New("provider down")
	s := New("travel09ease@gmail.com", 0, 0, 100)
	s.FailWith = boom

	if err := s.SendEmail(context.Background(), domain.EmailNotification{To: "a@b.c"}); !errors.Is(err, boom) {
		t.Fatalf("email: got %v, want %v", err, boom)
	}
	if err := s.SendSMS(context.Background(), domain.SMSNotification{To: "1"}); !errors.Is(err, boom) {
		t.Fatalf("sms: got %v, want %v", err, boom)
	}
}

func TestSend_CanceledContext(t *testing.T) {
	s := New("travel09ease@gmail.com", time.Minute, time.Minute, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.SendEmail(ctx, domain.EmailNotification{To: "a@b.c"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("email: got %v, want context.Canceled", err)
	}
	if err := s.SendSMS(ctx, domain.SMSNotification{To: "1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("sms: got %v, want context.Canceled", err)
	}
}

func TestSend_DelayElapses(t *testing.T) {
	s := New("travel09ease@gmail.com", 20*time.Millisecond, 0, 100)

	start := time.Now()
	if err := s.SendEmail(context.Background(), domain.EmailNotification{To: "a@b.c"}); err != nil {
		t.Fatalf("send email: %v", err)
	}
	if got := time.Since(start); got < 20*time.Millisecond {
		t.Fatalf("send returned after %v, want at least the simulated delay", got)
	}
}
