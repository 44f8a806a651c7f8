package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

var ActiveBookingStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Booking is a reservation of GroupSize seats against one slot. GroupSize=1
// is an individual booking; larger groups require a deposit and start out
// pending until the deposit is confirmed.
type Booking struct {
	ID              string        `json:"id"`
	ServiceID       string        `json:"service_id"`
	SlotID          string        `json:"slot_id"`
	CustomerID      string        `json:"customer_id"`
	GroupSize       int           `json:"group_size"`
	Status          BookingStatus `json:"status"`
	PerPersonPrice  float64       `json:"per_person_price"`
	TotalPrice      float64       `json:"total_price"`
	DepositRequired bool          `json:"deposit_required"`
	DepositPaid     bool          `json:"deposit_paid"`
	Participants    []Participant `json:"participants,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	ServiceID    string
	SlotID       string
	CustomerID   string
	GroupSize    int
	Participants []Participant
}
