package domain

import "time"

type WaitlistStatus string

const (
	WaitlistStatusActive    WaitlistStatus = "active"
	WaitlistStatusPromoted  WaitlistStatus = "promoted"
	WaitlistStatusCancelled WaitlistStatus = "cancelled"
	WaitlistStatusExpired   WaitlistStatus = "expired"
)

// WaitlistEntry is a request for capacity that could not be fulfilled. It
// references a desired window but holds no reservation until promoted.
// Terminal states: promoted, cancelled, expired.
type WaitlistEntry struct {
	ID                   string         `json:"id"`
	ServiceID            string         `json:"service_id"`
	CustomerID           string         `json:"customer_id"`
	PreferredDate        time.Time      `json:"preferred_date"`
	TimeStart            string         `json:"time_start"` // "15:04"
	TimeEnd              string         `json:"time_end"`
	Location             string         `json:"location"`
	GroupSize            int            `json:"group_size"`
	FlexibleWithTime     bool           `json:"flexible_with_time"`
	FlexibleWithLocation bool           `json:"flexible_with_location"`
	PriorityScore        int            `json:"priority_score"`
	PromotionAttempts    int            `json:"promotion_attempts"`
	MaxPromotionAttempts int            `json:"max_promotion_attempts"`
	Status               WaitlistStatus `json:"status"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

type JoinWaitlistInput struct {
	ServiceID            string
	CustomerID           string
	PreferredDate        time.Time
	TimeStart            string
	TimeEnd              string
	Location             string
	GroupSize            int
	FlexibleWithTime     bool
	FlexibleWithLocation bool
	PriorityScore        int
}
