package ports

import (
	"context"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

type Notifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, svc *domain.Service)
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, svc *domain.Service)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, svc *domain.Service)
	NotifyWaitlistPromoted(ctx context.Context, e *domain.WaitlistEntry, b *domain.Booking)
}
