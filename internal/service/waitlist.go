package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/metrics"
	"github.com/mariia-hub/bookingcore/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultMaxPromotionAttempts = 3

type WaitlistService struct {
	waitlistRepo ports.WaitlistRepo
	slotRepo     ports.SlotRepo
	serviceRepo  ports.ServiceRepo
	bookingRepo  ports.BookingRepo
	auditRepo    ports.AuditRepo
	pricer       ports.PriceQuoter
	notifier     ports.Notifier
	logger       logger.Logger
}

func NewWaitlistService(
	waitlistRepo ports.WaitlistRepo,
	slotRepo ports.SlotRepo,
	serviceRepo ports.ServiceRepo,
	bookingRepo ports.BookingRepo,
	auditRepo ports.AuditRepo,
	pricer ports.PriceQuoter,
	notifier ports.Notifier,
	logger logger.Logger,
) *WaitlistService {
	return &WaitlistService{
		waitlistRepo: waitlistRepo,
		slotRepo:     slotRepo,
		serviceRepo:  serviceRepo,
		bookingRepo:  bookingRepo,
		auditRepo:    auditRepo,
		pricer:       pricer,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *WaitlistService) Join(ctx context.Context, input domain.JoinWaitlistInput) (*domain.WaitlistEntry, error) {
	if input.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id is required", domain.ErrValidation)
	}
	if input.GroupSize < 1 {
		return nil, fmt.Errorf("%w: group_size must be at least 1", domain.ErrValidation)
	}
	if input.PreferredDate.Before(time.Now().UTC().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("%w: preferred_date is in the past", domain.ErrValidation)
	}
	if !input.FlexibleWithTime {
		from, err := minutesOfDay(input.TimeStart)
		if err != nil {
			return nil, err
		}
		to, err := minutesOfDay(input.TimeEnd)
		if err != nil {
			return nil, err
		}
		if to <= from {
			return nil, fmt.Errorf("%w: time_end must be after time_start", domain.ErrValidation)
		}
	}
	if _, err := s.serviceRepo.GetByID(ctx, input.ServiceID); err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}

	now := time.Now().UTC()
	entry := &domain.WaitlistEntry{
		ID:                   uuid.New().String(),
		ServiceID:            input.ServiceID,
		CustomerID:           input.CustomerID,
		PreferredDate:        input.PreferredDate.Truncate(24 * time.Hour),
		TimeStart:            input.TimeStart,
		TimeEnd:              input.TimeEnd,
		Location:             input.Location,
		GroupSize:            input.GroupSize,
		FlexibleWithTime:     input.FlexibleWithTime,
		FlexibleWithLocation: input.FlexibleWithLocation,
		PriorityScore:        input.PriorityScore,
		MaxPromotionAttempts: defaultMaxPromotionAttempts,
		Status:               domain.WaitlistStatusActive,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.waitlistRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create waitlist entry: %w", err)
	}

	s.logger.Info("waitlist entry created",
		logger.String("entry_id", entry.ID),
		logger.String("service_id", entry.ServiceID),
		logger.Int("priority_score", entry.PriorityScore),
	)

	return entry, nil
}

func (s *WaitlistService) Get(ctx context.Context, id string) (*domain.WaitlistEntry, error) {
	return s.waitlistRepo.GetByID(ctx, id)
}

func (s *WaitlistService) Cancel(ctx context.Context, id string) error {
	if err := s.waitlistRepo.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancel waitlist entry: %w", err)
	}

	s.logger.Info("waitlist entry cancelled", logger.String("entry_id", id))

	return nil
}

// PromoteFreed offers a slot's free capacity to the waitlist: candidates in
// descending priority_score, FIFO among equals, each promotion reserving its
// seats through the same atomic path bookings use. Group entries obey the
// same slot and service group rules as direct bookings. One freed seat can
// only ever promote one size-1 entry; the rest stay active for the next
// release.
func (s *WaitlistService) PromoteFreed(ctx context.Context, slotID string) (int, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return 0, fmt.Errorf("get slot: %w", err)
	}

	remaining := slot.Remaining()
	if remaining <= 0 {
		return 0, nil
	}

	svc, err := s.serviceRepo.GetByID(ctx, slot.ServiceID)
	if err != nil {
		return 0, fmt.Errorf("get service: %w", err)
	}

	candidates, err := s.waitlistRepo.ListCandidates(ctx, slot)
	if err != nil {
		return 0, fmt.Errorf("list candidates: %w", err)
	}

	promoted := 0
	for _, entry := range candidates {
		if remaining <= 0 {
			break
		}
		if !s.windowMatches(entry, slot) {
			continue
		}
		if groupRulesErr(slot, svc, entry.GroupSize) != nil {
			// This slot can never take the group regardless of free seats;
			// the entry keeps its attempts for a slot that can.
			continue
		}
		if entry.GroupSize > remaining {
			// Matched but doesn't fit the freed capacity: that is a failed
			// promotion attempt for this entry.
			s.failAttempt(ctx, entry)
			continue
		}

		if s.promoteOne(ctx, entry, slot, svc) {
			promoted++
			remaining -= entry.GroupSize
		}
	}

	return promoted, nil
}

// promoteOne treats "reserve capacity + mark promoted" as one unit: the
// guarded status update is what keeps two sweeps from promoting the same
// entry, and a lost guard puts the seats straight back.
func (s *WaitlistService) promoteOne(ctx context.Context, entry *domain.WaitlistEntry, slot *domain.Slot, svc *domain.Service) bool {
	if err := s.slotRepo.Reserve(ctx, slot.ID, entry.GroupSize); err != nil {
		if errors.Is(err, domain.ErrInsufficientCapacity) {
			s.failAttempt(ctx, entry)
			return false
		}
		s.logger.Error("promotion reserve failed",
			logger.String("entry_id", entry.ID),
			logger.String("error", err.Error()),
		)
		return false
	}

	if err := s.waitlistRepo.MarkPromoted(ctx, entry.ID); err != nil {
		if relErr := s.slotRepo.Release(ctx, slot.ID, entry.GroupSize); relErr != nil {
			s.logger.Error("failed to release after promotion race",
				logger.String("slot_id", slot.ID),
				logger.String("error", relErr.Error()),
			)
		}
		if !errors.Is(err, domain.ErrWaitlistNotActive) {
			s.logger.Error("mark promoted failed",
				logger.String("entry_id", entry.ID),
				logger.String("error", err.Error()),
			)
		}
		return false
	}

	booking := s.createPromotionBooking(ctx, entry, slot, svc)

	metrics.IncWaitlistPromotion("promoted")
	s.logger.Info("waitlist entry promoted",
		logger.String("entry_id", entry.ID),
		logger.String("slot_id", slot.ID),
		logger.Int("group_size", entry.GroupSize),
	)

	go s.notifier.NotifyWaitlistPromoted(context.WithoutCancel(ctx), entry, booking)

	return true
}

func (s *WaitlistService) createPromotionBooking(ctx context.Context, entry *domain.WaitlistEntry, slot *domain.Slot, svc *domain.Service) *domain.Booking {
	breakdown, err := s.pricer.Quote(ctx, domain.QuoteRequest{
		ServiceID:  svc.ID,
		CustomerID: entry.CustomerID,
		Location:   slot.Location,
		StartTime:  slot.StartTime,
		GroupSize:  entry.GroupSize,
	})
	if err != nil {
		// The reservation stands; price it at base so the booking exists and
		// flag the failure for admin follow-up.
		s.logger.Error("promotion quote failed, falling back to base price",
			logger.String("entry_id", entry.ID),
			logger.String("error", err.Error()),
		)
		breakdown = &domain.PriceBreakdown{
			BasePrice:  svc.BasePrice,
			FinalPrice: svc.BasePrice,
		}
	}

	depositRequired := entry.GroupSize > 1
	status := domain.BookingStatusConfirmed
	if depositRequired {
		status = domain.BookingStatusPending
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		ServiceID:       svc.ID,
		SlotID:          slot.ID,
		CustomerID:      entry.CustomerID,
		GroupSize:       entry.GroupSize,
		Status:          status,
		PerPersonPrice:  breakdown.FinalPrice,
		TotalPrice:      round2(breakdown.FinalPrice * float64(entry.GroupSize)),
		DepositRequired: depositRequired,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		s.logger.Error("failed to create promotion booking",
			logger.String("entry_id", entry.ID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	snap := &domain.PriceSnapshot{
		ID:           uuid.New().String(),
		BookingID:    booking.ID,
		BasePrice:    breakdown.BasePrice,
		FinalPrice:   breakdown.FinalPrice,
		Currency:     breakdown.Currency,
		AppliedRules: breakdown.AppliedRules,
		CreatedAt:    now,
	}
	if err = s.auditRepo.InsertSnapshot(ctx, snap); err != nil {
		s.logger.Error("failed to store promotion snapshot",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	change := &domain.BookingChange{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		Type:      domain.ChangeTypePromoted,
		NewValue:  statusJSON(booking.Status),
		ChangedBy: "waitlist",
		CreatedAt: now,
	}
	if err = s.auditRepo.InsertChange(ctx, change); err != nil {
		s.logger.Error("failed to append promotion change",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	return booking
}

func (s *WaitlistService) failAttempt(ctx context.Context, entry *domain.WaitlistEntry) {
	attempts, err := s.waitlistRepo.IncrementAttempts(ctx, entry.ID)
	if err != nil {
		s.logger.Error("failed to increment promotion attempts",
			logger.String("entry_id", entry.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	metrics.IncWaitlistPromotion("failed")

	if attempts >= entry.MaxPromotionAttempts {
		if err = s.waitlistRepo.MarkExpired(ctx, entry.ID); err != nil {
			s.logger.Error("failed to expire exhausted entry",
				logger.String("entry_id", entry.ID),
				logger.String("error", err.Error()),
			)
			return
		}
		metrics.IncWaitlistPromotion("expired")
		s.logger.Info("waitlist entry exhausted",
			logger.String("entry_id", entry.ID),
			logger.Int("attempts", attempts),
		)
	}
}

// windowMatches applies the entry's time preference to a concrete slot.
// Time-flexible entries take anything on their date; otherwise the slot must
// start within [time_start, time_end).
func (s *WaitlistService) windowMatches(entry *domain.WaitlistEntry, slot *domain.Slot) bool {
	if entry.FlexibleWithTime {
		return true
	}

	from, err := minutesOfDay(entry.TimeStart)
	if err != nil {
		s.logger.Warn("waitlist entry has malformed time_start",
			logger.String("entry_id", entry.ID),
		)
		return false
	}
	to, err := minutesOfDay(entry.TimeEnd)
	if err != nil {
		s.logger.Warn("waitlist entry has malformed time_end",
			logger.String("entry_id", entry.ID),
		)
		return false
	}

	minute := slot.StartTime.Hour()*60 + slot.StartTime.Minute()
	return minute >= from && minute < to
}

// Sweep is the scheduler's periodic pass: dates in the past expire their
// entries, and every future slot with free capacity gets one promotion round.
func (s *WaitlistService) Sweep(ctx context.Context) (promoted int, expired int64, err error) {
	now := time.Now().UTC()

	expired, err = s.waitlistRepo.ExpireBefore(ctx, now.Truncate(24*time.Hour))
	if err != nil {
		return 0, 0, fmt.Errorf("expire overdue entries: %w", err)
	}

	slots, err := s.slotRepo.ListOpen(ctx, now)
	if err != nil {
		return 0, expired, fmt.Errorf("list open slots: %w", err)
	}

	for _, slot := range slots {
		n, promoteErr := s.PromoteFreed(ctx, slot.ID)
		if promoteErr != nil {
			s.logger.Error("sweep promotion failed",
				logger.String("slot_id", slot.ID),
				logger.String("error", promoteErr.Error()),
			)
			continue
		}
		promoted += n
	}

	return promoted, expired, nil
}
