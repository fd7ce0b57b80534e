package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
)

// CheckoutExpirer is the slice of the checkout repository the sweeper needs
type CheckoutExpirer interface {
	ExpireStaleCheckouts(ctx context.Context, cutoff time.Time) (int64, error)
}

// CheckoutSweeper periodically expires open checkout records that were
// abandoned before payment
type CheckoutSweeper struct {
	repo     CheckoutExpirer
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time

	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewCheckoutSweeper creates a sweeper. Non-positive durations use the defaults.
func NewCheckoutSweeper(repo CheckoutExpirer, interval, maxAge time.Duration) *CheckoutSweeper {
	if interval <= 0 {
		interval = DefaultCheckoutSweepInterval
	}
	if maxAge <= 0 {
		maxAge = DefaultCheckoutMaxAge
	}
	return &CheckoutSweeper{
		repo:     repo,
		interval: interval,
		maxAge:   maxAge,
		now:      time.Now,
		shutdown: make(chan struct{}),
	}
}

// Start sweeps once immediately and then on every interval until ctx is
// cancelled or Shutdown is called
func (w *CheckoutSweeper) Start(ctx context.Context) {
	logger.FromContext(ctx).Info(LogMsgCheckoutSweepScheduled, "interval", w.interval, "max_age", w.maxAge)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.Sweep(ctx)
		for {
			select {
			case <-ticker.C:
				w.Sweep(ctx)
			case <-ctx.Done():
				return
			case <-w.shutdown:
				return
			}
		}
	}()
}

// Sweep runs a single expiry pass and returns how many records it expired
func (w *CheckoutSweeper) Sweep(ctx context.Context) int64 {
	log := logger.FromContext(ctx)

	cutoff := w.now().Add(-w.maxAge)
	expired, err := w.repo.ExpireStaleCheckouts(ctx, cutoff)
	if err != nil {
		log.Error(LogMsgCheckoutSweepFailed, "error", err)
		return 0
	}
	if expired > 0 {
		log.Info(LogMsgCheckoutSweepCompleted, "expired", expired, "cutoff", cutoff)
	}
	return expired
}

// Shutdown stops the loop and waits for an in-flight sweep to finish
func (w *CheckoutSweeper) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCheckoutSweepStopping)

	w.once.Do(func() { close(w.shutdown) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgCheckoutSweepStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgCheckoutSweepTimeout)
		return ctx.Err()
	}
}
