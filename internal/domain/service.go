package domain

import "time"

type ServiceType string

const (
	ServiceTypeBeauty    ServiceType = "beauty"
	ServiceTypeFitness   ServiceType = "fitness"
	ServiceTypeLifestyle ServiceType = "lifestyle"
)

// Service is a sellable unit: one treatment or class with a base duration
// and a per-person base price. Reference data, edited by admins only.
type Service struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Type            ServiceType `json:"type"`
	DurationMinutes int         `json:"duration_minutes"`
	BasePrice       float64     `json:"base_price"`
	AllowsGroups    bool        `json:"allows_groups"`
	MaxGroupSize    int         `json:"max_group_size"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type CreateServiceInput struct {
	Name            string
	Type            ServiceType
	DurationMinutes int
	BasePrice       float64
	AllowsGroups    bool
	MaxGroupSize    int
}
