package ports

import (
	"context"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

// AuditRepo covers the append-only booking change log and the price
// snapshots taken at booking time.
type AuditRepo interface {
	InsertChange(ctx context.Context, c *domain.BookingChange) error
	ListChanges(ctx context.Context, bookingID string) ([]*domain.BookingChange, error)
	InsertSnapshot(ctx context.Context, s *domain.PriceSnapshot) error
	GetSnapshot(ctx context.Context, bookingID string) (*domain.PriceSnapshot, error)
}
