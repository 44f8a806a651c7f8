package ports

import (
	"context"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	// UpdateStatus moves the booking to the target status only when its
	// current status is one of from; ErrBookingNotActive otherwise.
	UpdateStatus(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus) error
	// ConfirmDeposit moves a pending booking to confirmed and records the
	// deposit as paid; ErrBookingNotPending when the window already closed.
	ConfirmDeposit(ctx context.Context, id string) error
	CancelExpiredPending(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)
}
