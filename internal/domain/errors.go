package domain

import "errors"

var (
	ErrServiceNotFound       = errors.New("service not found")
	ErrSlotNotFound          = errors.New("slot not found")
	ErrRuleNotFound          = errors.New("pricing rule not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrWaitlistEntryNotFound = errors.New("waitlist entry not found")
)

var (
	// ErrInsufficientCapacity is a normal outcome, not a fault: the caller
	// should offer the waitlist.
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrGroupNotAllowed      = errors.New("slot does not allow group bookings")
	ErrGroupTooLarge        = errors.New("group size exceeds service maximum")
	ErrConcurrencyConflict  = errors.New("reservation lost a concurrent update")
)

var (
	ErrBookingNotPending  = errors.New("booking is not in pending status")
	ErrBookingNotActive   = errors.New("booking is not active")
	ErrWaitlistNotActive  = errors.New("waitlist entry is not active")
	ErrPromotionExhausted = errors.New("promotion attempts exhausted")
)

var (
	ErrInvalidPrice     = errors.New("base price must be a finite non-negative number")
	ErrUnknownPredicate = errors.New("unknown custom condition")
	ErrValidation       = errors.New("validation error")
)
