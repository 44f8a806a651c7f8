package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/stretchr/testify/assert"
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

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(NewRegistry(), 0, "PLN", newTestLogger(t))
}

func saturdayContext() domain.PriceContext {
	return domain.PriceContext{
		ServiceID: "svc-1",
		SlotStart: time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC), // Saturday
		GroupSize: 1,
		Now:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func percentRule(id string, priority int, value float64, stackable bool) domain.PricingRule {
	return domain.PricingRule{
		ID:            id,
		Name:          id,
		Type:          domain.RuleTypeTimeBased,
		ModifierType:  domain.ModifierPercentage,
		ModifierValue: value,
		Priority:      priority,
		IsStackable:   stackable,
	}
}

func TestResolver_NoMatchingRulesReturnsBasePrice(t *testing.T) {
	r := newTestResolver(t)

	bd, err := r.Resolve(100, saturdayContext(), nil)

	require.NoError(t, err)
	assert.Equal(t, 100.0, bd.BasePrice)
	assert.Equal(t, 100.0, bd.FinalPrice)
	assert.Equal(t, 0.0, bd.TotalModifier)
	assert.Empty(t, bd.AppliedRules)
}

func TestResolver_SingleWeekendPremium(t *testing.T) {
	r := newTestResolver(t)

	weekend := percentRule("weekend-premium", 50, 15, true)
	weekend.Conditions = domain.RuleConditions{DaysOfWeek: []int{0, 6}}

	bd, err := r.Resolve(100, saturdayContext(), []domain.PricingRule{weekend})

	require.NoError(t, err)
	assert.Equal(t, 115.0, bd.FinalPrice)
	assert.Equal(t, 15.0, bd.TotalModifier)
	require.Len(t, bd.AppliedRules, 1)
	assert.Equal(t, "weekend-premium", bd.AppliedRules[0].RuleID)
	assert.Equal(t, 115.0, bd.AppliedRules[0].PriceAfter)
}

func TestResolver_StackedPercentagesCompound(t *testing.T) {
	r := newTestResolver(t)

	rules := []domain.PricingRule{
		percentRule("group-discount", 70, -15, true),
		percentRule("weekend-premium", 50, 15, true),
	}

	bd, err := r.Resolve(100, saturdayContext(), rules)

	require.NoError(t, err)
	// 100 * 1.15 * 0.85 compounds to 97.75, not the base-relative 100.
	assert.Equal(t, 97.75, bd.FinalPrice)
	require.Len(t, bd.AppliedRules, 2)
	assert.Equal(t, "weekend-premium", bd.AppliedRules[0].RuleID, "lower priority number applies first")
	assert.Equal(t, "group-discount", bd.AppliedRules[1].RuleID)
	assert.Equal(t, 115.0, bd.AppliedRules[0].PriceAfter)
	assert.Equal(t, 97.75, bd.AppliedRules[1].PriceAfter)
}

func TestResolver_NonStackableHaltsThePass(t *testing.T) {
	r := newTestResolver(t)

	rules := []domain.PricingRule{
		percentRule("early", 10, 10, true),
		percentRule("promo-override", 20, -50, false),
		percentRule("late", 30, 25, true),
		percentRule("late-override", 40, 99, false),
	}

	bd, err := r.Resolve(200, saturdayContext(), rules)

	require.NoError(t, err)
	// 200 * 1.10 = 220, then the override halves it and nothing after applies.
	assert.Equal(t, 110.0, bd.FinalPrice)
	require.Len(t, bd.AppliedRules, 2)
	assert.Equal(t, "early", bd.AppliedRules[0].RuleID)
	assert.Equal(t, "promo-override", bd.AppliedRules[1].RuleID)
}

func TestResolver_FixedModifier(t *testing.T) {
	r := newTestResolver(t)

	surcharge := domain.PricingRule{
		ID:            "equipment-fee",
		Name:          "equipment fee",
		Type:          domain.RuleTypeCustom,
		ModifierType:  domain.ModifierFixed,
		ModifierValue: 20,
		Priority:      60,
		IsStackable:   true,
	}

	bd, err := r.Resolve(100, saturdayContext(), []domain.PricingRule{
		percentRule("weekend-premium", 50, 15, true),
		surcharge,
	})

	require.NoError(t, err)
	assert.Equal(t, 135.0, bd.FinalPrice) // 100*1.15 + 20
}

func TestResolver_FloorClampIsTraced(t *testing.T) {
	r := NewResolver(NewRegistry(), 10, "PLN", newTestLogger(t))

	bigDiscount := domain.PricingRule{
		ID:            "comp",
		Name:          "comp voucher",
		Type:          domain.RuleTypeCustom,
		ModifierType:  domain.ModifierFixed,
		ModifierValue: -500,
		Priority:      10,
		IsStackable:   true,
	}

	bd, err := r.Resolve(100, saturdayContext(), []domain.PricingRule{bigDiscount})

	require.NoError(t, err)
	assert.Equal(t, 10.0, bd.FinalPrice)
	require.Len(t, bd.AppliedRules, 2)
	assert.Equal(t, domain.RuleTypePriceFloor, bd.AppliedRules[1].Type)
	assert.Equal(t, 10.0, bd.AppliedRules[1].PriceAfter)
}

func TestResolver_FloorDefaultsToZero(t *testing.T) {
	r := newTestResolver(t)

	bd, err := r.Resolve(50, saturdayContext(), []domain.PricingRule{
		{
			ID: "big", Name: "big", Type: domain.RuleTypeCustom,
			ModifierType: domain.ModifierFixed, ModifierValue: -80,
			Priority: 1, IsStackable: true,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, bd.FinalPrice, "price never goes negative")
}

func TestResolver_InvalidBasePrice(t *testing.T) {
	r := newTestResolver(t)

	for _, base := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := r.Resolve(base, saturdayContext(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	}
}

func TestResolver_BadRuleIsSkippedNotFatal(t *testing.T) {
	r := newTestResolver(t)

	broken := percentRule("broken", 10, 50, true)
	broken.Conditions = domain.RuleConditions{CustomCondition: "does_not_exist"}

	good := percentRule("weekend-premium", 50, 15, true)

	bd, err := r.Resolve(100, saturdayContext(), []domain.PricingRule{broken, good})

	require.NoError(t, err)
	assert.Equal(t, 115.0, bd.FinalPrice)
	require.Len(t, bd.AppliedRules, 1)
	assert.Equal(t, "weekend-premium", bd.AppliedRules[0].RuleID)
}

func TestResolver_DeterministicAndIdempotent(t *testing.T) {
	r := newTestResolver(t)

	rules := []domain.PricingRule{
		percentRule("c", 30, -5, true),
		percentRule("a", 10, 10, true),
		percentRule("b", 20, 5, true),
	}
	ctx := saturdayContext()

	first, err := r.Resolve(100, ctx, rules)
	require.NoError(t, err)
	second, err := r.Resolve(100, ctx, rules)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first.AppliedRules, 3)
	assert.Equal(t, "a", first.AppliedRules[0].RuleID)
	assert.Equal(t, "b", first.AppliedRules[1].RuleID)
	assert.Equal(t, "c", first.AppliedRules[2].RuleID)
}

func TestResolver_InputRuleOrderDoesNotMatter(t *testing.T) {
	r := newTestResolver(t)

	forward := []domain.PricingRule{
		percentRule("a", 10, 10, true),
		percentRule("b", 20, -10, true),
	}
	reversed := []domain.PricingRule{forward[1], forward[0]}

	bd1, err := r.Resolve(100, saturdayContext(), forward)
	require.NoError(t, err)
	bd2, err := r.Resolve(100, saturdayContext(), reversed)
	require.NoError(t, err)

	assert.Equal(t, bd1, bd2)
}
