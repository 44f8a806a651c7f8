package ports

import (
	"context"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

type WaitlistRepo interface {
	Create(ctx context.Context, e *domain.WaitlistEntry) error
	GetByID(ctx context.Context, id string) (*domain.WaitlistEntry, error)
	// ListCandidates returns active entries for the slot's service, date and
	// location (location-flexible entries match any location), ordered by
	// priority_score descending then created_at ascending.
	ListCandidates(ctx context.Context, slot *domain.Slot) ([]*domain.WaitlistEntry, error)
	IncrementAttempts(ctx context.Context, id string) (int, error)
	// MarkPromoted succeeds only while the entry is still active, so two
	// concurrent promotions cannot both claim it.
	MarkPromoted(ctx context.Context, id string) error
	MarkExpired(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	ExpireBefore(ctx context.Context, day time.Time) (int64, error)
}
