package service

import (
	"context"
	"testing"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/pricing"
	"github.com/mariia-hub/bookingcore/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pricingFixture struct {
	ruleRepo    *mocks.MockRuleRepo
	serviceRepo *mocks.MockServiceRepo
	demand      *mocks.MockDemandLevels
	svc         *PricingService
}

func newPricingFixture(t *testing.T) *pricingFixture {
	t.Helper()
	log := newTestLogger(t)
	f := &pricingFixture{
		ruleRepo:    mocks.NewMockRuleRepo(t),
		serviceRepo: mocks.NewMockServiceRepo(t),
		demand:      mocks.NewMockDemandLevels(t),
	}
	resolver := pricing.NewResolver(pricing.NewRegistry(), 10, "PLN", log)
	f.svc = NewPricingService(f.ruleRepo, f.serviceRepo, f.demand, resolver, log)
	return f
}

func TestPricingService_Quote_AppliesDemandRule(t *testing.T) {
	f := newPricingFixture(t)

	start := time.Now().UTC().Add(48 * time.Hour)
	minDemand := 80

	rules := []domain.PricingRule{
		{
			ID:   "r1",
			Name: "peak demand surcharge",
			Type: domain.RuleTypeDemandBased,
			Conditions: domain.RuleConditions{
				MinDemandLevel: &minDemand,
			},
			ModifierType:  domain.ModifierPercentage,
			ModifierValue: 20,
			Priority:      10,
			IsStackable:   true,
		},
	}

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(testService(), nil)
	f.ruleRepo.EXPECT().ListApplicable(mock.Anything, "svc1", mock.Anything).Return(rules, nil)
	f.demand.EXPECT().Level(mock.Anything, "svc1", start).Return(90)

	bd, err := f.svc.Quote(context.Background(), domain.QuoteRequest{
		ServiceID:  "svc1",
		CustomerID: "c1",
		StartTime:  start,
		GroupSize:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, bd.BasePrice)
	assert.Equal(t, 120.0, bd.FinalPrice)
	assert.Equal(t, "PLN", bd.Currency)
	require.Len(t, bd.AppliedRules, 1)
	assert.Equal(t, "r1", bd.AppliedRules[0].RuleID)
}

func TestPricingService_Quote_DemandBelowThreshold(t *testing.T) {
	f := newPricingFixture(t)

	start := time.Now().UTC().Add(48 * time.Hour)
	minDemand := 80

	rules := []domain.PricingRule{
		{
			ID:            "r1",
			Type:          domain.RuleTypeDemandBased,
			Conditions:    domain.RuleConditions{MinDemandLevel: &minDemand},
			ModifierType:  domain.ModifierPercentage,
			ModifierValue: 20,
			IsStackable:   true,
		},
	}

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(testService(), nil)
	f.ruleRepo.EXPECT().ListApplicable(mock.Anything, "svc1", mock.Anything).Return(rules, nil)
	f.demand.EXPECT().Level(mock.Anything, "svc1", start).Return(30)

	bd, err := f.svc.Quote(context.Background(), domain.QuoteRequest{
		ServiceID: "svc1",
		StartTime: start,
		GroupSize: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, bd.FinalPrice)
	assert.Empty(t, bd.AppliedRules)
}

func TestPricingService_Quote_BadGroupSize(t *testing.T) {
	f := newPricingFixture(t)

	_, err := f.svc.Quote(context.Background(), domain.QuoteRequest{
		ServiceID: "svc1",
		GroupSize: 0,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPricingService_CreateRule(t *testing.T) {
	f := newPricingFixture(t)

	f.ruleRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	rule, err := f.svc.CreateRule(context.Background(), domain.CreateRuleInput{
		Name:          "evening discount",
		Type:          domain.RuleTypeTimeBased,
		Conditions:    domain.RuleConditions{TimeStart: "18:00", TimeEnd: "21:00"},
		ModifierType:  domain.ModifierPercentage,
		ModifierValue: -10,
		Priority:      5,
		IsStackable:   true,
	})

	require.NoError(t, err)
	assert.True(t, rule.IsActive)
	assert.Nil(t, rule.ServiceID)
	assert.NotEmpty(t, rule.ID)
}

func TestPricingService_CreateRule_ScopedChecksService(t *testing.T) {
	f := newPricingFixture(t)
	serviceID := "missing"

	f.serviceRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrServiceNotFound)

	_, err := f.svc.CreateRule(context.Background(), domain.CreateRuleInput{
		ServiceID:    &serviceID,
		Name:         "scoped",
		Type:         domain.RuleTypeSeasonal,
		ModifierType: domain.ModifierFixed,
	})

	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestPricingService_CreateRule_Validation(t *testing.T) {
	f := newPricingFixture(t)

	from := time.Now().UTC()
	until := from.Add(-time.Hour)

	cases := []struct {
		name  string
		input domain.CreateRuleInput
	}{
		{"empty name", domain.CreateRuleInput{Type: domain.RuleTypeCustom, ModifierType: domain.ModifierFixed}},
		{"unknown rule type", domain.CreateRuleInput{Name: "x", Type: "lottery", ModifierType: domain.ModifierFixed}},
		{"unknown modifier type", domain.CreateRuleInput{Name: "x", Type: domain.RuleTypeCustom, ModifierType: "divide"}},
		{"percentage below -100", domain.CreateRuleInput{Name: "x", Type: domain.RuleTypeCustom, ModifierType: domain.ModifierPercentage, ModifierValue: -150}},
		{"inverted validity window", domain.CreateRuleInput{Name: "x", Type: domain.RuleTypeCustom, ModifierType: domain.ModifierFixed, ValidFrom: &from, ValidUntil: &until}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateRule(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPricingService_DeactivateRule(t *testing.T) {
	f := newPricingFixture(t)

	f.ruleRepo.EXPECT().Deactivate(mock.Anything, "r1").Return(nil)

	err := f.svc.DeactivateRule(context.Background(), "r1")

	require.NoError(t, err)
}
