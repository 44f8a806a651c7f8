package service

import (
	"context"
	"testing"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateService(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	serviceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreateService(context.Background(), domain.CreateServiceInput{
		Name:            "Deep Tissue Massage",
		Type:            domain.ServiceTypeLifestyle,
		DurationMinutes: 60,
		BasePrice:       250,
		AllowsGroups:    true,
		MaxGroupSize:    4,
	})

	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, 4, created.MaxGroupSize)
	assert.NotEmpty(t, created.ID)
}

func TestCatalogService_CreateService_IndividualForcesMaxGroupOne(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	serviceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreateService(context.Background(), domain.CreateServiceInput{
		Name:            "Lash Lift",
		Type:            domain.ServiceTypeBeauty,
		DurationMinutes: 45,
		BasePrice:       180,
		AllowsGroups:    false,
		MaxGroupSize:    9, // ignored for individual services
	})

	require.NoError(t, err)
	assert.Equal(t, 1, created.MaxGroupSize)
}

func TestCatalogService_CreateService_Validation(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	cases := []struct {
		name  string
		input domain.CreateServiceInput
	}{
		{"empty name", domain.CreateServiceInput{Type: domain.ServiceTypeBeauty, DurationMinutes: 30, BasePrice: 10}},
		{"unknown type", domain.CreateServiceInput{Name: "x", Type: "retail", DurationMinutes: 30, BasePrice: 10}},
		{"zero duration", domain.CreateServiceInput{Name: "x", Type: domain.ServiceTypeBeauty, BasePrice: 10}},
		{"negative price", domain.CreateServiceInput{Name: "x", Type: domain.ServiceTypeBeauty, DurationMinutes: 30, BasePrice: -1}},
		{"group max too small", domain.CreateServiceInput{Name: "x", Type: domain.ServiceTypeFitness, DurationMinutes: 30, BasePrice: 10, AllowsGroups: true, MaxGroupSize: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateService(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCatalogService_CreateSlot(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	start := time.Now().UTC().Add(24 * time.Hour)

	serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(testService(), nil)
	slotRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	slot, err := svc.CreateSlot(context.Background(), domain.CreateSlotInput{
		ServiceID: "svc1",
		Location:  "warsaw",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Capacity:  8,
	})

	require.NoError(t, err)
	assert.Equal(t, 8, slot.Capacity)
	assert.Equal(t, 0, slot.CurrentBookings)
}

func TestCatalogService_CreateSlot_InvertedWindow(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	start := time.Now().UTC().Add(24 * time.Hour)

	serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(testService(), nil)

	_, err := svc.CreateSlot(context.Background(), domain.CreateSlotInput{
		ServiceID: "svc1",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
		Capacity:  8,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_GenerateSlots_TilesMatchingDays(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	tpl := testService() // 60 minute duration
	tpl.DurationMinutes = 60

	serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(tpl, nil)

	var batch []*domain.Slot
	slotRepo.EXPECT().CreateBatch(mock.Anything, mock.Anything).Run(func(_ context.Context, slots []*domain.Slot) {
		batch = slots
	}).Return(nil)

	// 2026-09-07 is a Monday; a two week range holds two Mondays.
	from := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	to := from.Add(13 * 24 * time.Hour)

	slots, err := svc.GenerateSlots(context.Background(), domain.GenerateSlotsInput{
		ServiceID: "svc1",
		Location:  "warsaw",
		Weekdays:  []int{1}, // Mondays
		DayStart:  "10:00",
		DayEnd:    "13:00",
		Capacity:  6,
		DateFrom:  from,
		DateTo:    to,
	})

	require.NoError(t, err)
	// three one hour slots per Monday, two Mondays
	assert.Len(t, slots, 6)
	assert.Len(t, batch, 6)
	assert.Equal(t, from.Add(10*time.Hour), slots[0].StartTime)
	assert.Equal(t, from.Add(11*time.Hour), slots[0].EndTime)
	assert.Equal(t, from.Add(12*time.Hour), slots[2].StartTime)
}

func TestCatalogService_GenerateSlots_TemplateTooShort(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	tpl := testService()
	tpl.DurationMinutes = 90

	serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(tpl, nil)

	from := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	_, err := svc.GenerateSlots(context.Background(), domain.GenerateSlotsInput{
		ServiceID: "svc1",
		Weekdays:  []int{1},
		DayStart:  "10:00",
		DayEnd:    "11:00", // shorter than the service duration
		Capacity:  6,
		DateFrom:  from,
		DateTo:    from.Add(6 * 24 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_GenerateSlots_BadWeekday(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(testService(), nil)

	from := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	_, err := svc.GenerateSlots(context.Background(), domain.GenerateSlotsInput{
		ServiceID: "svc1",
		Weekdays:  []int{7},
		DayStart:  "10:00",
		DayEnd:    "12:00",
		Capacity:  6,
		DateFrom:  from,
		DateTo:    from.Add(6 * 24 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_GenerateSlots_RangeTooLong(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(testService(), nil)

	from := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	_, err := svc.GenerateSlots(context.Background(), domain.GenerateSlotsInput{
		ServiceID: "svc1",
		Weekdays:  []int{1},
		DayStart:  "10:00",
		DayEnd:    "12:00",
		Capacity:  6,
		DateFrom:  from,
		DateTo:    from.Add(200 * 24 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_GenerateSlots_BadTimeOfDay(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	svc := NewCatalogService(serviceRepo, slotRepo)

	serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(testService(), nil)

	from := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	_, err := svc.GenerateSlots(context.Background(), domain.GenerateSlotsInput{
		ServiceID: "svc1",
		Weekdays:  []int{1},
		DayStart:  "25:99",
		DayEnd:    "12:00",
		Capacity:  6,
		DateFrom:  from,
		DateTo:    from.Add(6 * 24 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
