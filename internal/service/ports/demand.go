package ports

import (
	"context"
	"time"
)

// DemandLevels reports the day-utilisation percentage (0..100) of a
// service's slots, the number pricing rules condition on.
type DemandLevels interface {
	Level(ctx context.Context, serviceID string, day time.Time) int
	Invalidate(ctx context.Context, serviceID string, day time.Time)
}
