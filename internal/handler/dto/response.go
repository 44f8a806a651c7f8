package dto

import (
	"encoding/json"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	DurationMinutes int     `json:"duration_minutes"`
	BasePrice       float64 `json:"base_price"`
	AllowsGroups    bool    `json:"allows_groups"`
	MaxGroupSize    int     `json:"max_group_size"`
	IsActive        bool    `json:"is_active"`
	CreatedAt       string  `json:"created_at"`
}

type SlotResponse struct {
	ID                string `json:"id"`
	ServiceID         string `json:"service_id"`
	Location          string `json:"location,omitempty"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Capacity          int    `json:"capacity"`
	CurrentBookings   int    `json:"current_bookings"`
	RemainingCapacity int    `json:"remaining_capacity"`
	AllowsGroups      bool   `json:"allows_groups"`
}

type AvailabilityResponse struct {
	Available         bool `json:"available"`
	RemainingCapacity int  `json:"remaining_capacity"`
}

type AppliedRuleResponse struct {
	RuleID        string  `json:"rule_id"`
	Name          string  `json:"name"`
	Type          string  `json:"rule_type"`
	ModifierType  string  `json:"modifier_type"`
	ModifierValue float64 `json:"modifier_value"`
	PriceAfter    float64 `json:"price_after"`
}

type PriceBreakdownResponse struct {
	BasePrice     float64               `json:"base_price"`
	FinalPrice    float64               `json:"final_price"`
	TotalModifier float64               `json:"total_modifier"`
	Currency      string                `json:"currency"`
	AppliedRules  []AppliedRuleResponse `json:"applied_rules"`
}

type BookingResponse struct {
	ID              string                  `json:"id"`
	ServiceID       string                  `json:"service_id"`
	SlotID          string                  `json:"slot_id"`
	CustomerID      string                  `json:"customer_id"`
	GroupSize       int                     `json:"group_size"`
	Status          string                  `json:"status"`
	PerPersonPrice  float64                 `json:"per_person_price"`
	TotalPrice      float64                 `json:"total_price"`
	DepositRequired bool                    `json:"deposit_required"`
	DepositPaid     bool                    `json:"deposit_paid"`
	Participants    []domain.Participant    `json:"participants,omitempty"`
	Price           *PriceBreakdownResponse `json:"price,omitempty"`
	CreatedAt       string                  `json:"created_at"`
}

type WaitlistEntryResponse struct {
	ID                   string `json:"id"`
	ServiceID            string `json:"service_id"`
	CustomerID           string `json:"customer_id"`
	PreferredDate        string `json:"preferred_date"`
	TimeStart            string `json:"time_start,omitempty"`
	TimeEnd              string `json:"time_end,omitempty"`
	Location             string `json:"location,omitempty"`
	GroupSize            int    `json:"group_size"`
	FlexibleWithTime     bool   `json:"flexible_with_time"`
	FlexibleWithLocation bool   `json:"flexible_with_location"`
	PriorityScore        int    `json:"priority_score"`
	PromotionAttempts    int    `json:"promotion_attempts"`
	Status               string `json:"status"`
	CreatedAt            string `json:"created_at"`
}

type RuleResponse struct {
	ID            string                `json:"id"`
	ServiceID     *string               `json:"service_id"`
	Name          string                `json:"name"`
	Type          string                `json:"rule_type"`
	Conditions    domain.RuleConditions `json:"conditions"`
	ModifierType  string                `json:"modifier_type"`
	ModifierValue float64               `json:"modifier_value"`
	Priority      int                   `json:"priority"`
	IsStackable   bool                  `json:"is_stackable"`
	IsActive      bool                  `json:"is_active"`
	ValidFrom     *string               `json:"valid_from,omitempty"`
	ValidUntil    *string               `json:"valid_until,omitempty"`
	CreatedAt     string                `json:"created_at"`
}

type SnapshotResponse struct {
	BookingID    string                `json:"booking_id"`
	BasePrice    float64               `json:"base_price"`
	FinalPrice   float64               `json:"final_price"`
	Currency     string                `json:"currency"`
	AppliedRules []AppliedRuleResponse `json:"applied_rules"`
	CreatedAt    string                `json:"created_at"`
}

type ChangeResponse struct {
	ID        string          `json:"id"`
	BookingID string          `json:"booking_id"`
	Type      string          `json:"change_type"`
	OldValue  json.RawMessage `json:"old_value,omitempty"`
	NewValue  json.RawMessage `json:"new_value,omitempty"`
	ChangedBy string          `json:"changed_by"`
	CreatedAt string          `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`

	// WaitlistEligible is set on capacity conflicts so the client can offer
	// the waitlist instead of a dead end.
	WaitlistEligible bool `json:"waitlist_eligible,omitempty"`
}

func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Type:            string(s.Type),
		DurationMinutes: s.DurationMinutes,
		BasePrice:       s.BasePrice,
		AllowsGroups:    s.AllowsGroups,
		MaxGroupSize:    s.MaxGroupSize,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponse(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:                s.ID,
		ServiceID:         s.ServiceID,
		Location:          s.Location,
		StartTime:         s.StartTime.Format(time.RFC3339),
		EndTime:           s.EndTime.Format(time.RFC3339),
		Capacity:          s.Capacity,
		CurrentBookings:   s.CurrentBookings,
		RemainingCapacity: s.Remaining(),
		AllowsGroups:      s.AllowsGroups,
	}
}

func ToPriceBreakdownResponse(b *domain.PriceBreakdown) PriceBreakdownResponse {
	return PriceBreakdownResponse{
		BasePrice:     b.BasePrice,
		FinalPrice:    b.FinalPrice,
		TotalModifier: b.TotalModifier,
		Currency:      b.Currency,
		AppliedRules:  toAppliedRules(b.AppliedRules),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		SlotID:          b.SlotID,
		CustomerID:      b.CustomerID,
		GroupSize:       b.GroupSize,
		Status:          string(b.Status),
		PerPersonPrice:  b.PerPersonPrice,
		TotalPrice:      b.TotalPrice,
		DepositRequired: b.DepositRequired,
		DepositPaid:     b.DepositPaid,
		Participants:    b.Participants,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

// ToBookingWithPriceResponse attaches the breakdown computed at booking time.
func ToBookingWithPriceResponse(b *domain.Booking, bd *domain.PriceBreakdown) BookingResponse {
	resp := ToBookingResponse(b)
	if bd != nil {
		price := ToPriceBreakdownResponse(bd)
		resp.Price = &price
	}
	return resp
}

func ToWaitlistEntryResponse(e *domain.WaitlistEntry) WaitlistEntryResponse {
	return WaitlistEntryResponse{
		ID:                   e.ID,
		ServiceID:            e.ServiceID,
		CustomerID:           e.CustomerID,
		PreferredDate:        e.PreferredDate.Format("2006-01-02"),
		TimeStart:            e.TimeStart,
		TimeEnd:              e.TimeEnd,
		Location:             e.Location,
		GroupSize:            e.GroupSize,
		FlexibleWithTime:     e.FlexibleWithTime,
		FlexibleWithLocation: e.FlexibleWithLocation,
		PriorityScore:        e.PriorityScore,
		PromotionAttempts:    e.PromotionAttempts,
		Status:               string(e.Status),
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
	}
}

func ToRuleResponse(r *domain.PricingRule) RuleResponse {
	return RuleResponse{
		ID:            r.ID,
		ServiceID:     r.ServiceID,
		Name:          r.Name,
		Type:          string(r.Type),
		Conditions:    r.Conditions,
		ModifierType:  string(r.ModifierType),
		ModifierValue: r.ModifierValue,
		Priority:      r.Priority,
		IsStackable:   r.IsStackable,
		IsActive:      r.IsActive,
		ValidFrom:     formatTimePtr(r.ValidFrom),
		ValidUntil:    formatTimePtr(r.ValidUntil),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

func ToSnapshotResponse(s *domain.PriceSnapshot) SnapshotResponse {
	return SnapshotResponse{
		BookingID:    s.BookingID,
		BasePrice:    s.BasePrice,
		FinalPrice:   s.FinalPrice,
		Currency:     s.Currency,
		AppliedRules: toAppliedRules(s.AppliedRules),
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
	}
}

func ToChangeResponse(c *domain.BookingChange) ChangeResponse {
	return ChangeResponse{
		ID:        c.ID,
		BookingID: c.BookingID,
		Type:      string(c.Type),
		OldValue:  c.OldValue,
		NewValue:  c.NewValue,
		ChangedBy: c.ChangedBy,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toAppliedRules(rules []domain.AppliedRule) []AppliedRuleResponse {
	resp := make([]AppliedRuleResponse, 0, len(rules))
	for _, r := range rules {
		resp = append(resp, AppliedRuleResponse{
			RuleID:        r.RuleID,
			Name:          r.Name,
			Type:          string(r.Type),
			ModifierType:  string(r.ModifierType),
			ModifierValue: r.ModifierValue,
			PriceAfter:    r.PriceAfter,
		})
	}
	return resp
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
