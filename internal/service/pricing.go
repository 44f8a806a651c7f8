package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/metrics"
	"github.com/mariia-hub/bookingcore/internal/pricing"
	"github.com/mariia-hub/bookingcore/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PricingService struct {
	ruleRepo    ports.RuleRepo
	serviceRepo ports.ServiceRepo
	demand      ports.DemandLevels
	resolver    *pricing.Resolver
	logger      logger.Logger
}

func NewPricingService(
	ruleRepo ports.RuleRepo,
	serviceRepo ports.ServiceRepo,
	demand ports.DemandLevels,
	resolver *pricing.Resolver,
	logger logger.Logger,
) *PricingService {
	return &PricingService{
		ruleRepo:    ruleRepo,
		serviceRepo: serviceRepo,
		demand:      demand,
		resolver:    resolver,
		logger:      logger,
	}
}

// Quote resolves the per-person price for the requested context without
// touching any capacity. Safe to call from slot pickers on every render.
func (s *PricingService) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.PriceBreakdown, error) {
	if req.GroupSize < 1 {
		return nil, fmt.Errorf("%w: group_size must be at least 1", domain.ErrValidation)
	}

	svc, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}

	now := time.Now().UTC()
	rules, err := s.ruleRepo.ListApplicable(ctx, svc.ID, now)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	priceCtx := domain.PriceContext{
		ServiceID:   svc.ID,
		CustomerID:  req.CustomerID,
		SlotStart:   req.StartTime,
		GroupSize:   req.GroupSize,
		DemandLevel: s.demand.Level(ctx, svc.ID, req.StartTime),
		Location:    req.Location,
		Now:         now,
	}

	breakdown, err := s.resolver.Resolve(svc.BasePrice, priceCtx, rules)
	if err != nil {
		return nil, fmt.Errorf("resolve price: %w", err)
	}

	metrics.IncQuotesServed()

	return breakdown, nil
}

func (s *PricingService) CreateRule(ctx context.Context, input domain.CreateRuleInput) (*domain.PricingRule, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	switch input.Type {
	case domain.RuleTypeTimeBased, domain.RuleTypeDemandBased,
		domain.RuleTypeGroupSize, domain.RuleTypeSeasonal, domain.RuleTypeCustom:
	default:
		return nil, fmt.Errorf("%w: unknown rule type %q", domain.ErrValidation, input.Type)
	}
	switch input.ModifierType {
	case domain.ModifierPercentage:
		if input.ModifierValue < -100 {
			return nil, fmt.Errorf("%w: percentage below -100 would make the price negative", domain.ErrValidation)
		}
	case domain.ModifierFixed:
	default:
		return nil, fmt.Errorf("%w: unknown modifier type %q", domain.ErrValidation, input.ModifierType)
	}
	if input.ValidFrom != nil && input.ValidUntil != nil && input.ValidUntil.Before(*input.ValidFrom) {
		return nil, fmt.Errorf("%w: valid_until is before valid_from", domain.ErrValidation)
	}
	if input.ServiceID != nil {
		if _, err := s.serviceRepo.GetByID(ctx, *input.ServiceID); err != nil {
			return nil, fmt.Errorf("check service: %w", err)
		}
	}

	now := time.Now().UTC()
	rule := &domain.PricingRule{
		ID:            uuid.New().String(),
		ServiceID:     input.ServiceID,
		Name:          input.Name,
		Type:          input.Type,
		Conditions:    input.Conditions,
		ModifierType:  input.ModifierType,
		ModifierValue: input.ModifierValue,
		Priority:      input.Priority,
		IsStackable:   input.IsStackable,
		IsActive:      true,
		ValidFrom:     input.ValidFrom,
		ValidUntil:    input.ValidUntil,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("create rule: %w", err)
	}

	s.logger.Info("pricing rule created",
		logger.String("rule_id", rule.ID),
		logger.String("rule_type", string(rule.Type)),
		logger.Int("priority", rule.Priority),
	)

	return rule, nil
}

func (s *PricingService) ListRules(ctx context.Context, serviceID string) ([]*domain.PricingRule, error) {
	return s.ruleRepo.List(ctx, serviceID)
}

func (s *PricingService) DeactivateRule(ctx context.Context, id string) error {
	if err := s.ruleRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate rule: %w", err)
	}

	s.logger.Info("pricing rule deactivated", logger.String("rule_id", id))

	return nil
}
