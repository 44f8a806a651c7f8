package domain

import (
	"encoding/json"
	"time"
)

type ChangeType string

const (
	ChangeTypeCreated   ChangeType = "created"
	ChangeTypeConfirmed ChangeType = "confirmed"
	ChangeTypeCancelled ChangeType = "cancelled"
	ChangeTypePromoted  ChangeType = "promoted"
)

// BookingChange is an append-only audit record. Rows are only ever inserted.
type BookingChange struct {
	ID        string          `json:"id"`
	BookingID string          `json:"booking_id"`
	Type      ChangeType      `json:"change_type"`
	OldValue  json.RawMessage `json:"old_value,omitempty"`
	NewValue  json.RawMessage `json:"new_value,omitempty"`
	ChangedBy string          `json:"changed_by"`
	CreatedAt time.Time       `json:"created_at"`
}
