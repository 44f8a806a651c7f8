package scheduler

import (
	"context"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type depositCanceller interface {
	CancelExpiredDeposits(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)
}

type waitlistSweeper interface {
	Sweep(ctx context.Context) (promoted int, expired int64, err error)
}

// Scheduler drives the two background duties: cancelling group bookings whose
// deposit window ran out and sweeping the waitlist against freed capacity.
type Scheduler struct {
	bookingService  depositCanceller
	waitlistService waitlistSweeper
	interval        time.Duration
	depositTTL      time.Duration
	logger          logger.Logger
}

func New(
	bookingService depositCanceller,
	waitlistService waitlistSweeper,
	interval time.Duration,
	depositTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService:  bookingService,
		waitlistService: waitlistService,
		interval:        interval,
		depositTTL:      depositTTL,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("deposit_ttl", s.depositTTL),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelExpiredDeposits(ctx, s.depositTTL)
	if err != nil {
		s.logger.Error("failed to cancel expired deposits",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range cancelled {
		s.logger.Info("deposit window expired",
			logger.String("booking_id", b.ID),
			logger.String("customer_id", b.CustomerID),
			logger.String("slot_id", b.SlotID),
		)
	}

	promoted, expired, err := s.waitlistService.Sweep(ctx)
	if err != nil {
		s.logger.Error("waitlist sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}
	if promoted > 0 || expired > 0 {
		s.logger.Info("waitlist sweep finished",
			logger.Int("promoted", promoted),
			logger.Int64("expired", expired),
		)
	}
}
