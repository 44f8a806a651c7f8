package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_RunsBothDuties(t *testing.T) {
	canceller := mocks.NewMockDepositCanceller(t)
	sweeper := mocks.NewMockWaitlistSweeper(t)
	log := newTestLogger(t)

	s := New(canceller, sweeper, 50*time.Millisecond, 30*time.Minute, log)

	cancelled := []*domain.Booking{
		{ID: "b1", CustomerID: "c1", SlotID: "s1"},
	}
	canceller.EXPECT().CancelExpiredDeposits(mock.Anything, 30*time.Minute).Return(cancelled, nil)
	sweeper.EXPECT().Sweep(mock.Anything).Return(2, int64(1), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(canceller.Calls), 1)
	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_Tick_HandlesCancelError(t *testing.T) {
	canceller := mocks.NewMockDepositCanceller(t)
	sweeper := mocks.NewMockWaitlistSweeper(t)
	log := newTestLogger(t)

	s := New(canceller, sweeper, 50*time.Millisecond, 30*time.Minute, log)

	canceller.EXPECT().CancelExpiredDeposits(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))
	sweeper.EXPECT().Sweep(mock.Anything).Return(0, int64(0), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	// a failed cancel pass must not skip the waitlist sweep
	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_Tick_HandlesSweepError(t *testing.T) {
	canceller := mocks.NewMockDepositCanceller(t)
	sweeper := mocks.NewMockWaitlistSweeper(t)
	log := newTestLogger(t)

	s := New(canceller, sweeper, 50*time.Millisecond, 30*time.Minute, log)

	canceller.EXPECT().CancelExpiredDeposits(mock.Anything, mock.Anything).Return(nil, nil)
	sweeper.EXPECT().Sweep(mock.Anything).Return(0, int64(0), errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweeper.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	canceller := mocks.NewMockDepositCanceller(t)
	sweeper := mocks.NewMockWaitlistSweeper(t)
	log := newTestLogger(t)

	s := New(canceller, sweeper, time.Second, 30*time.Minute, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	canceller := mocks.NewMockDepositCanceller(t)
	sweeper := mocks.NewMockWaitlistSweeper(t)
	log := newTestLogger(t)

	s := New(canceller, sweeper, 30*time.Millisecond, 30*time.Minute, log)

	canceller.EXPECT().CancelExpiredDeposits(mock.Anything, mock.Anything).Return(nil, nil).Times(3)
	sweeper.EXPECT().Sweep(mock.Anything).Return(0, int64(0), nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(canceller.Calls), 3)
}
