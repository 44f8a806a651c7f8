package domain

import "time"

// Slot is a bookable time window with finite capacity. Slots are generated
// from recurring templates and are never deleted; booking and cancellation
// only move the current_bookings counter.
type Slot struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"service_id"`
	Location        string    `json:"location"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Capacity        int       `json:"capacity"`
	CurrentBookings int       `json:"current_bookings"`
	AllowsGroups    bool      `json:"allows_groups"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s *Slot) Remaining() int {
	return s.Capacity - s.CurrentBookings
}

type Availability struct {
	Available         bool `json:"available"`
	RemainingCapacity int  `json:"remaining_capacity"`
}

type CreateSlotInput struct {
	ServiceID    string
	Location     string
	StartTime    time.Time
	EndTime      time.Time
	Capacity     int
	AllowsGroups bool
}

// GenerateSlotsInput describes a weekly recurring template expanded into
// concrete slots over [DateFrom, DateTo]. Weekdays use 0=Sunday.
type GenerateSlotsInput struct {
	ServiceID    string
	Location     string
	Weekdays     []int
	DayStart     string // "15:04"
	DayEnd       string
	Capacity     int
	AllowsGroups bool
	DateFrom     time.Time
	DateTo       time.Time
}
