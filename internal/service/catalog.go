package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/service/ports"
)

// Slot templates may only be expanded over a bounded horizon; admins
// generate the next block when they publish a new schedule.
const maxGenerationDays = 120

type CatalogService struct {
	serviceRepo ports.ServiceRepo
	slotRepo    ports.SlotRepo
}

func NewCatalogService(serviceRepo ports.ServiceRepo, slotRepo ports.SlotRepo) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		slotRepo:    slotRepo,
	}
}

func (s *CatalogService) CreateService(ctx context.Context, input domain.CreateServiceInput) (*domain.Service, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	switch input.Type {
	case domain.ServiceTypeBeauty, domain.ServiceTypeFitness, domain.ServiceTypeLifestyle:
	default:
		return nil, fmt.Errorf("%w: unknown service type %q", domain.ErrValidation, input.Type)
	}
	if input.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes must be positive", domain.ErrValidation)
	}
	if input.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base_price must not be negative", domain.ErrValidation)
	}

	maxGroup := input.MaxGroupSize
	if !input.AllowsGroups {
		maxGroup = 1
	} else if maxGroup < 2 {
		return nil, fmt.Errorf("%w: max_group_size must be at least 2 for group services", domain.ErrValidation)
	}

	now := time.Now().UTC()
	svc := &domain.Service{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Type:            input.Type,
		DurationMinutes: input.DurationMinutes,
		BasePrice:       input.BasePrice,
		AllowsGroups:    input.AllowsGroups,
		MaxGroupSize:    maxGroup,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	return svc, nil
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.serviceRepo.List(ctx)
}

func (s *CatalogService) CreateSlot(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error) {
	if _, err := s.serviceRepo.GetByID(ctx, input.ServiceID); err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}

	slot := &domain.Slot{
		ID:           uuid.New().String(),
		ServiceID:    input.ServiceID,
		Location:     input.Location,
		StartTime:    input.StartTime.UTC(),
		EndTime:      input.EndTime.UTC(),
		Capacity:     input.Capacity,
		AllowsGroups: input.AllowsGroups,
	}

	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	return slot, nil
}

// GenerateSlots expands a weekly recurring template into concrete slots.
// Each matching day is tiled with back-to-back slots of the service's
// duration between DayStart and DayEnd.
func (s *CatalogService) GenerateSlots(ctx context.Context, input domain.GenerateSlotsInput) ([]*domain.Slot, error) {
	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}

	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if len(input.Weekdays) == 0 {
		return nil, fmt.Errorf("%w: weekdays are required", domain.ErrValidation)
	}
	for _, d := range input.Weekdays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%w: weekday %d out of range 0..6", domain.ErrValidation, d)
		}
	}
	if input.DateTo.Before(input.DateFrom) {
		return nil, fmt.Errorf("%w: date_to is before date_from", domain.ErrValidation)
	}
	if input.DateTo.Sub(input.DateFrom) > maxGenerationDays*24*time.Hour {
		return nil, fmt.Errorf("%w: range exceeds %d days", domain.ErrValidation, maxGenerationDays)
	}

	dayStart, err := minutesOfDay(input.DayStart)
	if err != nil {
		return nil, err
	}
	dayEnd, err := minutesOfDay(input.DayEnd)
	if err != nil {
		return nil, err
	}
	if dayEnd <= dayStart {
		return nil, fmt.Errorf("%w: day_end must be after day_start", domain.ErrValidation)
	}

	duration := svc.DurationMinutes
	weekdays := make(map[int]bool, len(input.Weekdays))
	for _, d := range input.Weekdays {
		weekdays[d] = true
	}

	var slots []*domain.Slot
	from := input.DateFrom.UTC().Truncate(24 * time.Hour)
	to := input.DateTo.UTC().Truncate(24 * time.Hour)
	for day := from; !day.After(to); day = day.Add(24 * time.Hour) {
		if !weekdays[int(day.Weekday())] {
			continue
		}
		for minute := dayStart; minute+duration <= dayEnd; minute += duration {
			start := day.Add(time.Duration(minute) * time.Minute)
			slots = append(slots, &domain.Slot{
				ID:           uuid.New().String(),
				ServiceID:    svc.ID,
				Location:     input.Location,
				StartTime:    start,
				EndTime:      start.Add(time.Duration(duration) * time.Minute),
				Capacity:     input.Capacity,
				AllowsGroups: input.AllowsGroups,
			})
		}
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: template produces no slots", domain.ErrValidation)
	}

	if err := s.slotRepo.CreateBatch(ctx, slots); err != nil {
		return nil, fmt.Errorf("create slots: %w", err)
	}

	return slots, nil
}

func (s *CatalogService) ListSlots(ctx context.Context, serviceID string, day time.Time) ([]*domain.Slot, error) {
	if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}

	return s.slotRepo.ListByServiceAndDate(ctx, serviceID, day)
}

func minutesOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad time of day %q", domain.ErrValidation, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
