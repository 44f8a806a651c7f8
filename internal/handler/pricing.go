package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Quote(c *ginext.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}

	breakdown, err := h.pricingService.Quote(c.Request.Context(), domain.QuoteRequest{
		ServiceID:  req.ServiceID,
		CustomerID: req.CustomerID,
		Location:   req.Location,
		StartTime:  start,
		GroupSize:  req.GroupSize,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceBreakdownResponse(breakdown))
}

func (h *Handler) CreatePricingRule(c *ginext.Context) {
	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	validFrom, err := parseTimePtr(req.ValidFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid valid_from format, expected RFC3339",
		})
		return
	}
	validUntil, err := parseTimePtr(req.ValidUntil)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid valid_until format, expected RFC3339",
		})
		return
	}

	input := domain.CreateRuleInput{
		ServiceID:     req.ServiceID,
		Name:          req.Name,
		Type:          domain.RuleType(req.Type),
		Conditions:    req.Conditions,
		ModifierType:  domain.ModifierType(req.ModifierType),
		ModifierValue: req.ModifierValue,
		Priority:      req.Priority,
		IsStackable:   req.IsStackable,
		ValidFrom:     validFrom,
		ValidUntil:    validUntil,
	}

	rule, err := h.pricingService.CreateRule(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRuleResponse(rule))
}

func (h *Handler) ListPricingRules(c *ginext.Context) {
	serviceID := c.Query("service_id")
	if serviceID != "" {
		if _, err := uuid.Parse(serviceID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid service_id"})
			return
		}
	}

	rules, err := h.pricingService.ListRules(c.Request.Context(), serviceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RuleResponse, 0, len(rules))
	for _, r := range rules {
		resp = append(resp, dto.ToRuleResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeactivatePricingRule(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rule id"})
		return
	}

	if err := h.pricingService.DeactivateRule(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deactivated"})
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
