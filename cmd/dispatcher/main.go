// The dispatcher re-sends confirmation notices for bookings whose inline
// fire-and-forget send failed. It scans for rows with notified_at unset and
// works through them with a bounded pool, marking each row only after both
// channels went out.
package main

import (
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travelease/internal/adapters/notify"
	"travelease/internal/adapters/observability"
	"travelease/internal/app"
	"travelease/internal/domain"
	"travelease/internal/shared"
	mysqlrepo "travelease/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.DispatchWorkers).
		Dur("interval", cfg.DispatchInterval).
		Msg("dispatcher starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	notifier := notify.New(cfg.NotifyFrom, cfg.EmailDelay, cfg.SMSDelay, cfg.NotifyRPS)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(cfg.DispatchInterval)
	defer ticker.Stop()

	for {
		runOnce(ctx, repo, notifier, cfg.DispatchWorkers, cfg.DispatchBatch)
		select {
		case <-ctx.Done():
			log.Info().Msg("dispatcher stopping")
			return
		case <-ticker.C:
		}
	}
}

func runOnce(ctx context.Context, repo domain.BookingRepository, notifier domain.Notifier, workers, batch int) {
	pending, err := repo.ListUnnotified(ctx, batch)
	if err != nil {
		log.Warn().Err(err).Msg("list pending notices failed")
		return
	}
	if len(pending) == 0 {
		return
	}
	log.Info().Int("count", len(pending)).Msg("pending notices")

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, b := range pending {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			break // context canceled mid-batch
		}

		wg.Add(1)
		go func(b domain.Booking) {
			defer wg.Done()
			defer sem.Release(1)

			if err := app.SendBookingNotices(ctx, notifier, b); err != nil {
				log.Warn().Str("booking_id", b.BookingID).Err(err).Msg("notice send failed")
				return
			}
			if err := repo.MarkNotified(ctx, b.BookingID); err != nil {
				log.Warn().Str("booking_id", b.BookingID).Err(err).Msg("mark notified failed")
				return
			}
			log.Info().Str("booking_id", b.BookingID).Msg("notice sent")
		}(b)
	}

	wg.Wait()
}
