package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/metrics"
	"github.com/mariia-hub/bookingcore/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	slotRepo    ports.SlotRepo
	serviceRepo ports.ServiceRepo
	auditRepo   ports.AuditRepo
	pricer      ports.PriceQuoter
	demand      ports.DemandLevels
	promoter    ports.Promoter
	notifier    ports.Notifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	slotRepo ports.SlotRepo,
	serviceRepo ports.ServiceRepo,
	auditRepo ports.AuditRepo,
	pricer ports.PriceQuoter,
	demand ports.DemandLevels,
	promoter ports.Promoter,
	notifier ports.Notifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		serviceRepo: serviceRepo,
		auditRepo:   auditRepo,
		pricer:      pricer,
		demand:      demand,
		promoter:    promoter,
		notifier:    notifier,
		logger:      logger,
	}
}

// CheckAvailability answers the slot-picker question: can this group fit
// here. Read-only, no reservation is made.
func (s *BookingService) CheckAvailability(ctx context.Context, slotID string, groupSize int) (*domain.Availability, error) {
	if groupSize < 1 {
		return nil, fmt.Errorf("%w: group_size must be at least 1", domain.ErrValidation)
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	svc, err := s.serviceRepo.GetByID(ctx, slot.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	remaining := slot.Remaining()
	available := remaining >= groupSize && groupRulesErr(slot, svc, groupSize) == nil

	return &domain.Availability{
		Available:         available,
		RemainingCapacity: remaining,
	}, nil
}

// Book is the single path that consumes capacity: group-rule checks, price
// resolution, the atomic reserve, then the booking row with its snapshot and
// audit entry. A capacity failure is a normal outcome that routes the caller
// to the waitlist.
func (s *BookingService) Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, *domain.PriceBreakdown, error) {
	if input.CustomerID == "" {
		return nil, nil, fmt.Errorf("%w: customer_id is required", domain.ErrValidation)
	}
	if input.GroupSize < 1 {
		return nil, nil, fmt.Errorf("%w: group_size must be at least 1", domain.ErrValidation)
	}
	if len(input.Participants) > input.GroupSize {
		return nil, nil, fmt.Errorf("%w: more participants than group_size", domain.ErrValidation)
	}

	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("check service: %w", err)
	}
	if !svc.IsActive {
		return nil, nil, fmt.Errorf("%w: service is not active", domain.ErrValidation)
	}

	slot, err := s.slotRepo.GetByID(ctx, input.SlotID)
	if err != nil {
		return nil, nil, fmt.Errorf("check slot: %w", err)
	}
	if slot.ServiceID != svc.ID {
		return nil, nil, fmt.Errorf("%w: slot does not belong to service", domain.ErrValidation)
	}
	if !slot.StartTime.After(time.Now().UTC()) {
		return nil, nil, fmt.Errorf("%w: slot is in the past", domain.ErrValidation)
	}

	if err = groupRulesErr(slot, svc, input.GroupSize); err != nil {
		metrics.IncReservationRejected(rejectionReason(err))
		return nil, nil, err
	}

	breakdown, err := s.pricer.Quote(ctx, domain.QuoteRequest{
		ServiceID:  svc.ID,
		CustomerID: input.CustomerID,
		Location:   slot.Location,
		StartTime:  slot.StartTime,
		GroupSize:  input.GroupSize,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("quote price: %w", err)
	}

	if err = s.reserveWithRetry(ctx, slot.ID, input.GroupSize); err != nil {
		metrics.IncReservationRejected(rejectionReason(err))
		return nil, nil, err
	}

	depositRequired := input.GroupSize > 1
	status := domain.BookingStatusConfirmed
	if depositRequired {
		status = domain.BookingStatusPending
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		ServiceID:       svc.ID,
		SlotID:          slot.ID,
		CustomerID:      input.CustomerID,
		GroupSize:       input.GroupSize,
		Status:          status,
		PerPersonPrice:  breakdown.FinalPrice,
		TotalPrice:      round2(breakdown.FinalPrice * float64(input.GroupSize)),
		DepositRequired: depositRequired,
		Participants:    input.Participants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		// The seats are held but the row failed: put them back.
		if relErr := s.slotRepo.Release(ctx, slot.ID, input.GroupSize); relErr != nil {
			s.logger.Error("failed to release after create failure",
				logger.String("slot_id", slot.ID),
				logger.String("error", relErr.Error()),
			)
		}
		return nil, nil, fmt.Errorf("create booking: %w", err)
	}

	s.snapshotPrice(ctx, booking.ID, breakdown)
	s.recordChange(ctx, booking.ID, domain.ChangeTypeCreated, nil, booking.Status, input.CustomerID)
	s.demand.Invalidate(ctx, svc.ID, slot.StartTime)
	metrics.IncBookingCreated(string(status))

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("slot_id", slot.ID),
		logger.Int("group_size", booking.GroupSize),
		logger.String("status", string(status)),
	)

	if depositRequired {
		go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, svc)
	} else {
		go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, svc)
	}

	return booking, breakdown, nil
}

// reserveWithRetry absorbs one lost race: when the guarded update fails but
// a re-read still shows room (a cancellation landed in between), the reserve
// is retried once before the caller sees a conflict.
func (s *BookingService) reserveWithRetry(ctx context.Context, slotID string, size int) error {
	err := s.slotRepo.Reserve(ctx, slotID, size)
	if !errors.Is(err, domain.ErrInsufficientCapacity) {
		return err
	}

	slot, readErr := s.slotRepo.GetByID(ctx, slotID)
	if readErr != nil {
		return fmt.Errorf("re-check slot: %w", readErr)
	}
	if slot.Remaining() < size {
		return domain.ErrInsufficientCapacity
	}

	if err = s.slotRepo.Reserve(ctx, slotID, size); err != nil {
		if errors.Is(err, domain.ErrInsufficientCapacity) {
			return domain.ErrConcurrencyConflict
		}
		return err
	}

	return nil
}

func (s *BookingService) Confirm(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if !booking.DepositRequired {
		return fmt.Errorf("%w: booking does not require a deposit", domain.ErrValidation)
	}

	if err = s.bookingRepo.ConfirmDeposit(ctx, id); err != nil {
		return fmt.Errorf("confirm deposit: %w", err)
	}

	s.recordChange(ctx, id, domain.ChangeTypeConfirmed, &booking.Status, domain.BookingStatusConfirmed, booking.CustomerID)

	s.logger.Info("booking confirmed", logger.String("booking_id", id))

	if svc, svcErr := s.serviceRepo.GetByID(ctx, booking.ServiceID); svcErr == nil {
		booking.Status = domain.BookingStatusConfirmed
		go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, svc)
	}

	return nil
}

// Cancel releases the booking's seats and immediately offers the freed
// capacity to the waitlist.
func (s *BookingService) Cancel(ctx context.Context, id, changedBy string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, domain.ActiveBookingStatuses, domain.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.releaseAndPromote(ctx, booking, changedBy)

	return nil
}

// CancelExpiredDeposits is the scheduler entry point: group bookings whose
// deposit window ran out are cancelled and their seats go back to the slot
// (and on to the waitlist).
func (s *BookingService) CancelExpiredDeposits(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelExpiredPending(ctx, olderThan)
	if err != nil {
		return nil, fmt.Errorf("cancel expired deposits: %w", err)
	}

	for _, b := range cancelled {
		s.releaseAndPromote(ctx, b, "system")
	}

	if len(cancelled) > 0 {
		s.logger.Info("expired deposits cancelled", logger.Int("count", len(cancelled)))
	}

	return cancelled, nil
}

func (s *BookingService) releaseAndPromote(ctx context.Context, booking *domain.Booking, changedBy string) {
	if err := s.slotRepo.Release(ctx, booking.SlotID, booking.GroupSize); err != nil {
		s.logger.Error("failed to release slot capacity",
			logger.String("slot_id", booking.SlotID),
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	s.recordChange(ctx, booking.ID, domain.ChangeTypeCancelled, &booking.Status, domain.BookingStatusCancelled, changedBy)
	metrics.IncBookingCancelled()

	if slot, err := s.slotRepo.GetByID(ctx, booking.SlotID); err == nil {
		s.demand.Invalidate(ctx, booking.ServiceID, slot.StartTime)
	}

	if svc, err := s.serviceRepo.GetByID(ctx, booking.ServiceID); err == nil {
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking, svc)
	}

	promoted, err := s.promoter.PromoteFreed(ctx, booking.SlotID)
	if err != nil {
		s.logger.Error("waitlist promotion after release failed",
			logger.String("slot_id", booking.SlotID),
			logger.String("error", err.Error()),
		)
		return
	}
	if promoted > 0 {
		s.logger.Info("waitlist promoted after release",
			logger.String("slot_id", booking.SlotID),
			logger.Int("promoted", promoted),
		)
	}
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) GetPriceSnapshot(ctx context.Context, bookingID string) (*domain.PriceSnapshot, error) {
	return s.auditRepo.GetSnapshot(ctx, bookingID)
}

func (s *BookingService) ListChanges(ctx context.Context, bookingID string) ([]*domain.BookingChange, error) {
	return s.auditRepo.ListChanges(ctx, bookingID)
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID)
}

func (s *BookingService) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByDateRange(ctx, from, to)
}

func (s *BookingService) snapshotPrice(ctx context.Context, bookingID string, bd *domain.PriceBreakdown) {
	snap := &domain.PriceSnapshot{
		ID:           uuid.New().String(),
		BookingID:    bookingID,
		BasePrice:    bd.BasePrice,
		FinalPrice:   bd.FinalPrice,
		Currency:     bd.Currency,
		AppliedRules: bd.AppliedRules,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.auditRepo.InsertSnapshot(ctx, snap); err != nil {
		s.logger.Error("failed to store price snapshot",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) recordChange(ctx context.Context, bookingID string, typ domain.ChangeType, from *domain.BookingStatus, to domain.BookingStatus, by string) {
	change := &domain.BookingChange{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Type:      typ,
		NewValue:  statusJSON(to),
		ChangedBy: by,
		CreatedAt: time.Now().UTC(),
	}
	if from != nil {
		change.OldValue = statusJSON(*from)
	}
	if err := s.auditRepo.InsertChange(ctx, change); err != nil {
		s.logger.Error("failed to append booking change",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
	}
}

func groupRulesErr(slot *domain.Slot, svc *domain.Service, size int) error {
	if size == 1 {
		return nil
	}
	if !slot.AllowsGroups || !svc.AllowsGroups {
		return domain.ErrGroupNotAllowed
	}
	if size > svc.MaxGroupSize {
		return domain.ErrGroupTooLarge
	}
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrGroupNotAllowed):
		return "group_not_allowed"
	case errors.Is(err, domain.ErrGroupTooLarge):
		return "group_too_large"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "conflict"
	default:
		return "capacity"
	}
}

func statusJSON(status domain.BookingStatus) json.RawMessage {
	raw, _ := json.Marshal(map[string]string{"status": string(status)})
	return raw
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
