package pricing

import (
	"fmt"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
)

// Predicate is a named custom condition evaluated against the booking
// context. Admins reference predicates by key in rule conditions.
type Predicate func(ctx domain.PriceContext) bool

// Registry resolves custom condition keys. Lookups of unknown keys fail
// closed: admin-entered rule configuration must never break a booking flow.
type Registry struct {
	predicates map[string]Predicate
}

func NewRegistry() *Registry {
	r := &Registry{predicates: make(map[string]Predicate)}

	r.Register("booking_within_24h", func(ctx domain.PriceContext) bool {
		lead := ctx.SlotStart.Sub(ctx.Now)
		return lead >= 0 && lead <= 24*time.Hour
	})
	r.Register("booking_same_day", func(ctx domain.PriceContext) bool {
		y1, m1, d1 := ctx.Now.Date()
		y2, m2, d2 := ctx.SlotStart.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	})

	return r
}

func (r *Registry) Register(key string, p Predicate) {
	r.predicates[key] = p
}

// Matches reports whether every specified sub-condition holds for ctx.
// Unspecified fields impose no constraint. The returned error is set only
// for an unknown custom predicate and is reported no matter what the other
// sub-conditions say, so a misconfigured rule surfaces on every evaluation;
// the match result is then false and the caller may log and move on.
func (r *Registry) Matches(cond domain.RuleConditions, ctx domain.PriceContext) (bool, error) {
	var custom Predicate
	if cond.CustomCondition != "" {
		p, ok := r.predicates[cond.CustomCondition]
		if !ok {
			return false, fmt.Errorf("%w: %q", domain.ErrUnknownPredicate, cond.CustomCondition)
		}
		custom = p
	}

	if len(cond.DaysOfWeek) > 0 && !containsDay(cond.DaysOfWeek, int(ctx.SlotStart.Weekday())) {
		return false, nil
	}

	if cond.DateFrom != nil && ctx.SlotStart.Before(*cond.DateFrom) {
		return false, nil
	}
	if cond.DateTo != nil && ctx.SlotStart.After(*cond.DateTo) {
		return false, nil
	}

	if cond.TimeStart != "" || cond.TimeEnd != "" {
		ok, err := timeOfDayInRange(ctx.SlotStart, cond.TimeStart, cond.TimeEnd)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if cond.MinDemandLevel != nil && ctx.DemandLevel < *cond.MinDemandLevel {
		return false, nil
	}
	if cond.MaxDemandLevel != nil && ctx.DemandLevel > *cond.MaxDemandLevel {
		return false, nil
	}

	if cond.MinGroupSize != nil && ctx.GroupSize < *cond.MinGroupSize {
		return false, nil
	}
	if cond.MaxGroupSize != nil && ctx.GroupSize > *cond.MaxGroupSize {
		return false, nil
	}

	if custom != nil {
		return custom(ctx), nil
	}

	return true, nil
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// timeOfDayInRange checks t's time of day against ["15:04", "15:04").
// The lower bound is inclusive, the upper exclusive, so back-to-back rules
// never double-count a slot starting exactly on the boundary. An empty bound
// is open on that side.
func timeOfDayInRange(t time.Time, start, end string) (bool, error) {
	minute := t.Hour()*60 + t.Minute()

	if start != "" {
		from, err := parseMinutes(start)
		if err != nil {
			return false, err
		}
		if minute < from {
			return false, nil
		}
	}
	if end != "" {
		to, err := parseMinutes(end)
		if err != nil {
			return false, err
		}
		if minute >= to {
			return false, nil
		}
	}

	return true, nil
}

func parseMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad time of day %q", domain.ErrValidation, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
