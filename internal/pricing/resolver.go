package pricing

import (
	"fmt"
	"math"
	"sort"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const priceFloorTrace = "minimum price floor"

// Resolver turns a base price and a rule set into a PriceBreakdown. It is a
// pure computation over its inputs: same context and rules always produce
// the same breakdown.
//
// Rule semantics:
//   - rules apply in ascending priority order (lowest number first);
//   - a stackable percentage compounds against the running price, not the
//     base: 100 with +15% then -15% yields 97.75;
//   - the first matching non-stackable rule applies and ends the pass;
//   - the final price is clamped at minPrice, and the clamp is recorded as a
//     synthetic applied rule so itemized views stay honest.
type Resolver struct {
	registry *Registry
	minPrice float64
	currency string
	log      logger.Logger
}

func NewResolver(registry *Registry, minPrice float64, currency string, log logger.Logger) *Resolver {
	return &Resolver{
		registry: registry,
		minPrice: minPrice,
		currency: currency,
		log:      log,
	}
}

func (r *Resolver) Resolve(basePrice float64, ctx domain.PriceContext, rules []domain.PricingRule) (*domain.PriceBreakdown, error) {
	if basePrice < 0 || math.IsNaN(basePrice) || math.IsInf(basePrice, 0) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPrice, basePrice)
	}

	sorted := make([]domain.PricingRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	price := basePrice
	applied := make([]domain.AppliedRule, 0, len(sorted))

	for _, rule := range sorted {
		ok, err := r.registry.Matches(rule.Conditions, ctx)
		if err != nil {
			// Misconfigured rule: skip it, keep the booking flow alive.
			r.log.Warn("pricing rule skipped",
				logger.String("rule_id", rule.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !ok {
			continue
		}

		price = applyModifier(price, rule.ModifierType, rule.ModifierValue)
		applied = append(applied, domain.AppliedRule{
			RuleID:        rule.ID,
			Name:          rule.Name,
			Type:          rule.Type,
			ModifierType:  rule.ModifierType,
			ModifierValue: rule.ModifierValue,
			PriceAfter:    round2(price),
		})

		if !rule.IsStackable {
			break
		}
	}

	if price < r.minPrice {
		price = r.minPrice
		applied = append(applied, domain.AppliedRule{
			Name:       priceFloorTrace,
			Type:       domain.RuleTypePriceFloor,
			PriceAfter: round2(price),
		})
	}

	final := round2(price)

	return &domain.PriceBreakdown{
		BasePrice:     round2(basePrice),
		FinalPrice:    final,
		TotalModifier: round2(final - basePrice),
		Currency:      r.currency,
		AppliedRules:  applied,
	}, nil
}

func applyModifier(price float64, typ domain.ModifierType, value float64) float64 {
	switch typ {
	case domain.ModifierPercentage:
		return price * (1 + value/100)
	case domain.ModifierFixed:
		return price + value
	default:
		return price
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
