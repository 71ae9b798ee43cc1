// Package notify is the simulated email/SMS provider. There is no real
// delivery: each send logs the payload, sleeps an artificial delay standing
// in for the provider round trip, and reports success. A failure hook lets
// tests force the error path.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"travelease/internal/adapters/observability"
	"travelease/internal/domain"
)

type Sender struct {
	from       string
	emailDelay time.Duration
	smsDelay   time.Duration
	rl         *rate.Limiter

	// FailWith, when non-nil, is returned by every send after the delay.
	FailWith error
}

func New(from string, emailDelay, smsDelay time.Duration, rps int) *Sender {
	if rps <= 0 {
		rps = 5
	}
	return &Sender{
		from:       from,
		emailDelay: emailDelay,
		smsDelay:   smsDelay,
		rl:         rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (s *Sender) SendEmail(ctx context.Context, n domain.EmailNotification) error {
	if err := s.rl.Wait(ctx); err != nil {
		return err
	}
	from := n.From
	if from == "" {
		from = s.from
	}
	if !sleepCtx(ctx, s.emailDelay) {
		return ctx.Err()
	}
	err := s.FailWith
	observability.ObserveNotification("email", err)
	if err != nil {
		return err
	}
	log.Info().
		Str("from", from).
		Str("to", n.To).
		Str("subject", n.Subject).
		Msg("email sent")
	return nil
}

func (s *Sender) SendSMS(ctx context.Context, n domain.SMSNotification) error {
	if err := s.rl.Wait(ctx); err != nil {
		return err
	}
	if !sleepCtx(ctx, s.smsDelay) {
		return ctx.Err()
	}
	err := s.FailWith
	observability.ObserveNotification("sms", err)
	if err != nil {
		return err
	}
	log.Info().Str("to", n.To).Msg("sms sent")
	return nil
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
