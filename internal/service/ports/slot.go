package ports

import (
	"context"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.Slot) error
	CreateBatch(ctx context.Context, slots []*domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	ListByServiceAndDate(ctx context.Context, serviceID string, day time.Time) ([]*domain.Slot, error)
	ListOpen(ctx context.Context, from time.Time) ([]*domain.Slot, error)

	// Reserve atomically increments current_bookings by size iff the slot
	// still has that much capacity. Returns ErrInsufficientCapacity without
	// side effects otherwise.
	Reserve(ctx context.Context, slotID string, size int) error
	// Release decrements by the reserved size, never below zero.
	Release(ctx context.Context, slotID string, size int) error

	DayUtilisation(ctx context.Context, serviceID string, day time.Time) (booked, capacity int, err error)
}
