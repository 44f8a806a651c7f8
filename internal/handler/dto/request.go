package dto

import "github.com/mariia-hub/bookingcore/internal/domain"

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Type            string  `json:"type" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	BasePrice       float64 `json:"base_price" binding:"required,gt=0"`
	AllowsGroups    bool    `json:"allows_groups"`
	MaxGroupSize    int     `json:"max_group_size"`
}

type CreateSlotRequest struct {
	ServiceID    string `json:"service_id" binding:"required,uuid"`
	Location     string `json:"location"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,gt=0"`
	AllowsGroups bool   `json:"allows_groups"`
}

type GenerateSlotsRequest struct {
	ServiceID    string `json:"service_id" binding:"required,uuid"`
	Location     string `json:"location"`
	Weekdays     []int  `json:"weekdays" binding:"required"`
	DayStart     string `json:"day_start" binding:"required"`
	DayEnd       string `json:"day_end" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,gt=0"`
	AllowsGroups bool   `json:"allows_groups"`
	DateFrom     string `json:"date_from" binding:"required"`
	DateTo       string `json:"date_to" binding:"required"`
}

type QuoteRequest struct {
	ServiceID  string `json:"service_id" binding:"required,uuid"`
	CustomerID string `json:"customer_id"`
	Location   string `json:"location"`
	StartTime  string `json:"start_time" binding:"required"`
	GroupSize  int    `json:"group_size" binding:"required,gt=0"`
}

type CreateBookingRequest struct {
	ServiceID    string               `json:"service_id" binding:"required,uuid"`
	SlotID       string               `json:"slot_id" binding:"required,uuid"`
	CustomerID   string               `json:"customer_id" binding:"required"`
	GroupSize    int                  `json:"group_size" binding:"required,gt=0"`
	Participants []domain.Participant `json:"participants"`
}

type CancelBookingRequest struct {
	CancelledBy string `json:"cancelled_by"`
}

type JoinWaitlistRequest struct {
	ServiceID            string `json:"service_id" binding:"required,uuid"`
	CustomerID           string `json:"customer_id" binding:"required"`
	PreferredDate        string `json:"preferred_date" binding:"required"`
	TimeStart            string `json:"time_start"`
	TimeEnd              string `json:"time_end"`
	Location             string `json:"location"`
	GroupSize            int    `json:"group_size" binding:"required,gt=0"`
	FlexibleWithTime     bool   `json:"flexible_with_time"`
	FlexibleWithLocation bool   `json:"flexible_with_location"`
	PriorityScore        int    `json:"priority_score"`
}

type CreateRuleRequest struct {
	ServiceID     *string               `json:"service_id"`
	Name          string                `json:"name" binding:"required"`
	Type          string                `json:"rule_type" binding:"required"`
	Conditions    domain.RuleConditions `json:"conditions"`
	ModifierType  string                `json:"modifier_type" binding:"required"`
	ModifierValue float64               `json:"modifier_value"`
	Priority      int                   `json:"priority"`
	IsStackable   bool                  `json:"is_stackable"`
	ValidFrom     *string               `json:"valid_from"`
	ValidUntil    *string               `json:"valid_until"`
}
