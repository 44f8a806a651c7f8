package domain

import "time"

type RuleType string

const (
	RuleTypeTimeBased   RuleType = "time_based"
	RuleTypeDemandBased RuleType = "demand_based"
	RuleTypeGroupSize   RuleType = "group_size"
	RuleTypeSeasonal    RuleType = "seasonal"
	RuleTypeCustom      RuleType = "custom"

	// RuleTypePriceFloor appears only in breakdowns, as the synthetic trace
	// entry written when the final price was clamped to the minimum.
	RuleTypePriceFloor RuleType = "price_floor"
)

type ModifierType string

const (
	ModifierPercentage ModifierType = "percentage"
	ModifierFixed      ModifierType = "fixed"
)

// RuleConditions is the set of sub-conditions a rule may carry. All specified
// fields must hold for the rule to match (boolean AND); an absent field
// imposes no constraint. Keys the engine does not interpret stay untouched in
// the stored JSON.
type RuleConditions struct {
	// TimeStart/TimeEnd bound the slot's start time of day, "15:04" format.
	// Inclusive of TimeStart, exclusive of TimeEnd.
	TimeStart string `json:"time_start,omitempty"`
	TimeEnd   string `json:"time_end,omitempty"`

	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// DaysOfWeek uses 0=Sunday .. 6=Saturday.
	DaysOfWeek []int `json:"days_of_week,omitempty"`

	// Demand level is the day-utilisation percentage, 0..100. Bounds are
	// inclusive and independently optional.
	MinDemandLevel *int `json:"min_demand_level,omitempty"`
	MaxDemandLevel *int `json:"max_demand_level,omitempty"`

	MinGroupSize *int `json:"min_group_size,omitempty"`
	MaxGroupSize *int `json:"max_group_size,omitempty"`

	// CustomCondition names a predicate in the registry, e.g.
	// "booking_within_24h". An unknown name fails closed.
	CustomCondition string `json:"custom_condition,omitempty"`
}

// PricingRule is a conditional price modifier. Rules are soft-deactivated,
// never deleted: historical price snapshots reference them by id.
//
// Priority is ascending: the lowest number is evaluated and applied first.
type PricingRule struct {
	ID            string         `json:"id"`
	ServiceID     *string        `json:"service_id"` // nil applies to all services
	Name          string         `json:"name"`
	Type          RuleType       `json:"rule_type"`
	Conditions    RuleConditions `json:"conditions"`
	ModifierType  ModifierType   `json:"modifier_type"`
	ModifierValue float64        `json:"modifier_value"`
	Priority      int            `json:"priority"`
	IsStackable   bool           `json:"is_stackable"`
	IsActive      bool           `json:"is_active"`
	ValidFrom     *time.Time     `json:"valid_from"`
	ValidUntil    *time.Time     `json:"valid_until"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type CreateRuleInput struct {
	ServiceID     *string
	Name          string
	Type          RuleType
	Conditions    RuleConditions
	ModifierType  ModifierType
	ModifierValue float64
	Priority      int
	IsStackable   bool
	ValidFrom     *time.Time
	ValidUntil    *time.Time
}

// QuoteRequest asks for a price without reserving anything.
type QuoteRequest struct {
	ServiceID  string
	CustomerID string
	Location   string
	StartTime  time.Time
	GroupSize  int
}

// PriceContext is everything a rule may be conditioned on for one booking.
type PriceContext struct {
	ServiceID   string
	CustomerID  string
	SlotStart   time.Time
	GroupSize   int
	DemandLevel int
	Location    string
	Now         time.Time
}

// AppliedRule is one step of the price trace: the rule that fired and the
// running price after it was applied.
type AppliedRule struct {
	RuleID        string       `json:"rule_id"`
	Name          string       `json:"name"`
	Type          RuleType     `json:"rule_type"`
	ModifierType  ModifierType `json:"modifier_type"`
	ModifierValue float64      `json:"modifier_value"`
	PriceAfter    float64      `json:"price_after"`
}

// PriceBreakdown is the itemized result of one resolution pass. TotalModifier
// is the delta FinalPrice-BasePrice; AppliedRules is in application order.
type PriceBreakdown struct {
	BasePrice     float64       `json:"base_price"`
	FinalPrice    float64       `json:"final_price"`
	TotalModifier float64       `json:"total_modifier"`
	Currency      string        `json:"currency"`
	AppliedRules  []AppliedRule `json:"applied_rules"`
}

// PriceSnapshot persists the breakdown computed at booking time for audit.
type PriceSnapshot struct {
	ID           string        `json:"id"`
	BookingID    string        `json:"booking_id"`
	BasePrice    float64       `json:"base_price"`
	FinalPrice   float64       `json:"final_price"`
	Currency     string        `json:"currency"`
	AppliedRules []AppliedRule `json:"applied_rules"`
	CreatedAt    time.Time     `json:"created_at"`
}
