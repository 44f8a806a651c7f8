package ports

import (
	"context"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

type RuleRepo interface {
	Create(ctx context.Context, r *domain.PricingRule) error
	// ListApplicable returns active rules for the service (including global
	// rules) whose validity window contains asOf, ascending by priority.
	ListApplicable(ctx context.Context, serviceID string, asOf time.Time) ([]domain.PricingRule, error)
	List(ctx context.Context, serviceID string) ([]*domain.PricingRule, error)
	Deactivate(ctx context.Context, id string) error
}
