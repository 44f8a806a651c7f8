package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	slotRepo    *mocks.MockSlotRepo
	serviceRepo *mocks.MockServiceRepo
	auditRepo   *mocks.MockAuditRepo
	pricer      *mocks.MockPriceQuoter
	demand      *mocks.MockDemandLevels
	promoter    *mocks.MockPromoter
	notifier    *mocks.MockNotifier
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		slotRepo:    mocks.NewMockSlotRepo(t),
		serviceRepo: mocks.NewMockServiceRepo(t),
		auditRepo:   mocks.NewMockAuditRepo(t),
		pricer:      mocks.NewMockPriceQuoter(t),
		demand:      mocks.NewMockDemandLevels(t),
		promoter:    mocks.NewMockPromoter(t),
		notifier:    mocks.NewMockNotifier(t),
	}
	f.svc = NewBookingService(
		f.bookingRepo, f.slotRepo, f.serviceRepo, f.auditRepo,
		f.pricer, f.demand, f.promoter, f.notifier, newTestLogger(t),
	)
	return f
}

func testService() *domain.Service {
	return &domain.Service{
		ID:           "svc1",
		Name:         "Gel Manicure",
		Type:         domain.ServiceTypeBeauty,
		BasePrice:    100,
		AllowsGroups: true,
		MaxGroupSize: 6,
		IsActive:     true,
	}
}

func testSlot() *domain.Slot {
	return &domain.Slot{
		ID:              "s1",
		ServiceID:       "svc1",
		Location:        "warsaw",
		StartTime:       time.Now().UTC().Add(48 * time.Hour),
		EndTime:         time.Now().UTC().Add(49 * time.Hour),
		Capacity:        5,
		CurrentBookings: 2,
		AllowsGroups:    true,
	}
}

func TestBookingService_Book_Individual_Confirmed(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()
	breakdown := &domain.PriceBreakdown{BasePrice: 100, FinalPrice: 120, TotalModifier: 20, Currency: "PLN"}

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.pricer.EXPECT().Quote(mock.Anything, mock.Anything).Return(breakdown, nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, "s1", 1).Return(nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.auditRepo.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(nil)
	f.auditRepo.EXPECT().InsertChange(mock.Anything, mock.Anything).Return(nil)
	f.demand.EXPECT().Invalidate(mock.Anything, "svc1", slot.StartTime).Return()
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, svc).Return()

	booking, bd, err := f.svc.Book(context.Background(), domain.CreateBookingInput{
		ServiceID:  "svc1",
		SlotID:     "s1",
		CustomerID: "c1",
		GroupSize:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.False(t, booking.DepositRequired)
	assert.Equal(t, 120.0, booking.PerPersonPrice)
	assert.Equal(t, 120.0, booking.TotalPrice)
	assert.Equal(t, breakdown, bd)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_Group_PendingWithDeposit(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()
	breakdown := &domain.PriceBreakdown{BasePrice: 100, FinalPrice: 90, TotalModifier: -10, Currency: "PLN"}

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.pricer.EXPECT().Quote(mock.Anything, mock.Anything).Return(breakdown, nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, "s1", 3).Return(nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.auditRepo.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(nil)
	f.auditRepo.EXPECT().InsertChange(mock.Anything, mock.Anything).Return(nil)
	f.demand.EXPECT().Invalidate(mock.Anything, "svc1", slot.StartTime).Return()
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, svc).Return()

	booking, _, err := f.svc.Book(context.Background(), domain.CreateBookingInput{
		ServiceID:  "svc1",
		SlotID:     "s1",
		CustomerID: "c1",
		GroupSize:  3,
		Participants: []domain.Participant{
			{Name: "Ala"}, {Name: "Ola"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.True(t, booking.DepositRequired)
	assert.Equal(t, 90.0, booking.PerPersonPrice)
	assert.Equal(t, 270.0, booking.TotalPrice)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_GroupNotAllowed(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()
	slot.AllowsGroups = false

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	_, _, err := f.svc.Book(context.Background(), domain.CreateBookingInput{
		ServiceID: "svc1", SlotID: "s1", CustomerID: "c1", GroupSize: 2,
	})

	assert.ErrorIs(t, err, domain.ErrGroupNotAllowed)
}

func TestBookingService_Book_GroupTooLarge(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	_, _, err := f.svc.Book(context.Background(), domain.CreateBookingInput{
		ServiceID: "svc1", SlotID: "s1", CustomerID: "c1", GroupSize: 10,
	})

	assert.ErrorIs(t, err, domain.ErrGroupTooLarge)
}

func TestBookingService_Book_SlotInPast(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()
	slot.StartTime = time.Now().UTC().Add(-time.Hour)

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	_, _, err := f.svc.Book(context.Background(), domain.CreateBookingInput{
		ServiceID: "svc1", SlotID: "s1", CustomerID: "c1", GroupSize: 1,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_SlotServiceMismatch(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()
	slot.ServiceID = "other"

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	_, _, err := f.svc.Book(context.Background(), domain.CreateBookingInput{
		ServiceID: "svc1", SlotID: "s1", CustomerID: "c1", GroupSize: 1,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_InsufficientCapacity(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()
	slot.CurrentBookings = slot.Capacity // full

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.pricer.EXPECT().Quote(mock.Anything, mock.Anything).Return(&domain.PriceBreakdown{FinalPrice: 100}, nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, "s1", 1).Return(domain.ErrInsufficientCapacity)

	_, _, err := f.svc.Book(context.Background(), domain.CreateBookingInput{
		ServiceID: "svc1", SlotID: "s1", CustomerID: "c1", GroupSize: 1,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

func TestBookingService_Book_RetryLost_Conflict(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()
	// the re-read still shows room, so the reserve is retried once

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.pricer.EXPECT().Quote(mock.Anything, mock.Anything).Return(&domain.PriceBreakdown{FinalPrice: 100}, nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, "s1", 1).Return(domain.ErrInsufficientCapacity).Twice()

	_, _, err := f.svc.Book(context.Background(), domain.CreateBookingInput{
		ServiceID: "svc1", SlotID: "s1", CustomerID: "c1", GroupSize: 1,
	})

	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
}

func TestBookingService_Book_CreateFails_ReleasesSeats(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.pricer.EXPECT().Quote(mock.Anything, mock.Anything).Return(&domain.PriceBreakdown{FinalPrice: 100}, nil)
	f.slotRepo.EXPECT().Reserve(mock.Anything, "s1", 2).Return(nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
	f.slotRepo.EXPECT().Release(mock.Anything, "s1", 2).Return(nil)

	_, _, err := f.svc.Book(context.Background(), domain.CreateBookingInput{
		ServiceID: "svc1", SlotID: "s1", CustomerID: "c1", GroupSize: 2,
	})

	require.Error(t, err)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot() // 3 seats remaining

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	av, err := f.svc.CheckAvailability(context.Background(), "s1", 3)

	require.NoError(t, err)
	assert.True(t, av.Available)
	assert.Equal(t, 3, av.RemainingCapacity)
}

func TestBookingService_CheckAvailability_NotEnough(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	av, err := f.svc.CheckAvailability(context.Background(), "s1", 4)

	require.NoError(t, err)
	assert.False(t, av.Available)
	assert.Equal(t, 3, av.RemainingCapacity)
}

func TestBookingService_Confirm(t *testing.T) {
	f := newBookingFixture(t)
	svc := testService()
	booking := &domain.Booking{
		ID: "b1", ServiceID: "svc1", SlotID: "s1", CustomerID: "c1",
		GroupSize: 3, Status: domain.BookingStatusPending, DepositRequired: true,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().ConfirmDeposit(mock.Anything, "b1").Return(nil)
	f.auditRepo.EXPECT().InsertChange(mock.Anything, mock.Anything).Return(nil)
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, booking, svc).Return()

	err := f.svc.Confirm(context.Background(), "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_NoDepositRequired(t *testing.T) {
	f := newBookingFixture(t)
	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := f.svc.Confirm(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Cancel_ReleasesAndPromotes(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()
	booking := &domain.Booking{
		ID: "b1", ServiceID: "svc1", SlotID: "s1", CustomerID: "c1",
		GroupSize: 2, Status: domain.BookingStatusConfirmed,
	}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.ActiveBookingStatuses, domain.BookingStatusCancelled).Return(nil)
	f.slotRepo.EXPECT().Release(mock.Anything, "s1", 2).Return(nil)
	f.auditRepo.EXPECT().InsertChange(mock.Anything, mock.Anything).Return(nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.demand.EXPECT().Invalidate(mock.Anything, "svc1", slot.StartTime).Return()
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking, svc).Return()
	f.promoter.EXPECT().PromoteFreed(mock.Anything, "s1").Return(1, nil)

	err := f.svc.Cancel(context.Background(), "b1", "customer")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	f := newBookingFixture(t)
	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.ActiveBookingStatuses, domain.BookingStatusCancelled).Return(domain.ErrBookingNotActive)

	err := f.svc.Cancel(context.Background(), "b1", "customer")

	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
}

func TestBookingService_CancelExpiredDeposits(t *testing.T) {
	f := newBookingFixture(t)
	svc, slot := testService(), testSlot()
	expired := &domain.Booking{
		ID: "b1", ServiceID: "svc1", SlotID: "s1", CustomerID: "c1",
		GroupSize: 4, Status: domain.BookingStatusPending,
	}

	f.bookingRepo.EXPECT().CancelExpiredPending(mock.Anything, 30*time.Minute).Return([]*domain.Booking{expired}, nil)
	f.slotRepo.EXPECT().Release(mock.Anything, "s1", 4).Return(nil)
	f.auditRepo.EXPECT().InsertChange(mock.Anything, mock.Anything).Return(nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.demand.EXPECT().Invalidate(mock.Anything, "svc1", slot.StartTime).Return()
	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(svc, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, expired, svc).Return()
	f.promoter.EXPECT().PromoteFreed(mock.Anything, "s1").Return(0, nil)

	cancelled, err := f.svc.CancelExpiredDeposits(context.Background(), 30*time.Minute)

	require.NoError(t, err)
	assert.Len(t, cancelled, 1)
	time.Sleep(50 * time.Millisecond)
}

// countingSlotRepo guards capacity with a mutex the way the SQL layer does
// with its conditional update, so concurrent Book calls race for real seats.
type countingSlotRepo struct {
	mu   sync.Mutex
	slot domain.Slot
}

func (r *countingSlotRepo) GetByID(_ context.Context, _ string) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := r.slot
	return &copied, nil
}

func (r *countingSlotRepo) Reserve(_ context.Context, _ string, size int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slot.CurrentBookings+size > r.slot.Capacity {
		return domain.ErrInsufficientCapacity
	}
	r.slot.CurrentBookings += size
	return nil
}

func (r *countingSlotRepo) Release(_ context.Context, _ string, size int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slot.CurrentBookings -= size
	if r.slot.CurrentBookings < 0 {
		r.slot.CurrentBookings = 0
	}
	return nil
}

func (r *countingSlotRepo) Create(context.Context, *domain.Slot) error        { return nil }
func (r *countingSlotRepo) CreateBatch(context.Context, []*domain.Slot) error { return nil }
func (r *countingSlotRepo) ListByServiceAndDate(context.Context, string, time.Time) ([]*domain.Slot, error) {
	return nil, nil
}
func (r *countingSlotRepo) ListOpen(context.Context, time.Time) ([]*domain.Slot, error) {
	return nil, nil
}
func (r *countingSlotRepo) DayUtilisation(context.Context, string, time.Time) (int, int, error) {
	return 0, 0, nil
}

func TestBookingService_Book_NoOverbookingUnderContention(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	serviceRepo := mocks.NewMockServiceRepo(t)
	auditRepo := mocks.NewMockAuditRepo(t)
	pricer := mocks.NewMockPriceQuoter(t)
	demand := mocks.NewMockDemandLevels(t)
	promoter := mocks.NewMockPromoter(t)
	notifier := mocks.NewMockNotifier(t)

	slotRepo := &countingSlotRepo{slot: domain.Slot{
		ID:        "s1",
		ServiceID: "svc1",
		StartTime: time.Now().UTC().Add(48 * time.Hour),
		EndTime:   time.Now().UTC().Add(49 * time.Hour),
		Capacity:  3,
	}}

	svc := NewBookingService(
		bookingRepo, slotRepo, serviceRepo, auditRepo,
		pricer, demand, promoter, notifier, newTestLogger(t),
	)

	serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(testService(), nil)
	pricer.EXPECT().Quote(mock.Anything, mock.Anything).Return(&domain.PriceBreakdown{BasePrice: 100, FinalPrice: 100, Currency: "PLN"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	auditRepo.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(nil)
	auditRepo.EXPECT().InsertChange(mock.Anything, mock.Anything).Return(nil)
	demand.EXPECT().Invalidate(mock.Anything, mock.Anything, mock.Anything).Return()
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, mock.Anything).Return()

	const workers = 10
	var succeeded atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.Book(context.Background(), domain.CreateBookingInput{
				ServiceID:  "svc1",
				SlotID:     "s1",
				CustomerID: "c1",
				GroupSize:  1,
			})
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), succeeded.Load())
	assert.Equal(t, 3, slotRepo.slot.CurrentBookings)

	time.Sleep(50 * time.Millisecond)
}
