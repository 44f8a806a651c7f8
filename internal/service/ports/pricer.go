package ports

import (
	"context"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

type PriceQuoter interface {
	Quote(ctx context.Context, req domain.QuoteRequest) (*domain.PriceBreakdown, error)
}

// Promoter reacts to freed slot capacity by promoting matching waitlist
// entries. Returns the number of entries promoted.
type Promoter interface {
	PromoteFreed(ctx context.Context, slotID string) (int, error)
}
