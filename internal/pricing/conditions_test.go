package pricing

import (
	"testing"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// Saturday 2025-06-07, 18:30 local.
var saturdayEvening = time.Date(2025, 6, 7, 18, 30, 0, 0, time.UTC)

func TestRegistry_Matches_EmptyConditionsAlwaysMatch(t *testing.T) {
	r := NewRegistry()

	ok, err := r.Matches(domain.RuleConditions{}, domain.PriceContext{SlotStart: saturdayEvening})

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistry_Matches_DaysOfWeek(t *testing.T) {
	r := NewRegistry()

	sunday := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	weekend := domain.RuleConditions{DaysOfWeek: []int{0, 6}} // 0=Sunday, 6=Saturday

	ok, err := r.Matches(weekend, domain.PriceContext{SlotStart: sunday})
	require.NoError(t, err)
	assert.True(t, ok, "sunday is day 0")

	ok, err = r.Matches(weekend, domain.PriceContext{SlotStart: saturday})
	require.NoError(t, err)
	assert.True(t, ok, "saturday is day 6")

	ok, err = r.Matches(weekend, domain.PriceContext{SlotStart: monday})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Matches_TimeRangeBoundaries(t *testing.T) {
	r := NewRegistry()

	cond := domain.RuleConditions{TimeStart: "17:00", TimeEnd: "20:00"}

	cases := []struct {
		name  string
		hour  int
		min   int
		match bool
	}{
		{"before range", 16, 59, false},
		{"inclusive lower bound", 17, 0, true},
		{"inside range", 18, 30, true},
		{"exclusive upper bound", 20, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Date(2025, 6, 7, tc.hour, tc.min, 0, 0, time.UTC)
			ok, err := r.Matches(cond, domain.PriceContext{SlotStart: start})
			require.NoError(t, err)
			assert.Equal(t, tc.match, ok)
		})
	}
}

func TestRegistry_Matches_OpenEndedTimeRange(t *testing.T) {
	r := NewRegistry()

	early := time.Date(2025, 6, 7, 8, 0, 0, 0, time.UTC)

	ok, err := r.Matches(domain.RuleConditions{TimeEnd: "12:00"}, domain.PriceContext{SlotStart: early})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Matches(domain.RuleConditions{TimeStart: "12:00"}, domain.PriceContext{SlotStart: early})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Matches_MalformedTimeOfDay(t *testing.T) {
	r := NewRegistry()

	_, err := r.Matches(
		domain.RuleConditions{TimeStart: "25:99"},
		domain.PriceContext{SlotStart: saturdayEvening},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistry_Matches_DemandBoundsIndependent(t *testing.T) {
	r := NewRegistry()

	lowOnly := domain.RuleConditions{MinDemandLevel: intPtr(70)}
	highOnly := domain.RuleConditions{MaxDemandLevel: intPtr(30)}
	both := domain.RuleConditions{MinDemandLevel: intPtr(40), MaxDemandLevel: intPtr(60)}

	ok, err := r.Matches(lowOnly, domain.PriceContext{DemandLevel: 70})
	require.NoError(t, err)
	assert.True(t, ok, "min bound is inclusive")

	ok, err = r.Matches(lowOnly, domain.PriceContext{DemandLevel: 69})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Matches(highOnly, domain.PriceContext{DemandLevel: 30})
	require.NoError(t, err)
	assert.True(t, ok, "max bound is inclusive")

	ok, err = r.Matches(highOnly, domain.PriceContext{DemandLevel: 31})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Matches(both, domain.PriceContext{DemandLevel: 50})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistry_Matches_GroupSizeBounds(t *testing.T) {
	r := NewRegistry()

	cond := domain.RuleConditions{MinGroupSize: intPtr(3), MaxGroupSize: intPtr(8)}

	ok, err := r.Matches(cond, domain.PriceContext{GroupSize: 2})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Matches(cond, domain.PriceContext{GroupSize: 3})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Matches(cond, domain.PriceContext{GroupSize: 9})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Matches_SeasonalWindow(t *testing.T) {
	r := NewRegistry()

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 31, 23, 59, 0, 0, time.UTC)
	cond := domain.RuleConditions{DateFrom: &from, DateTo: &to}

	ok, err := r.Matches(cond, domain.PriceContext{SlotStart: saturdayEvening})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Matches(cond, domain.PriceContext{
		SlotStart: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Matches_CustomPredicate(t *testing.T) {
	r := NewRegistry()

	now := time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC)
	cond := domain.RuleConditions{CustomCondition: "booking_within_24h"}

	ok, err := r.Matches(cond, domain.PriceContext{
		Now:       now,
		SlotStart: now.Add(6 * time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Matches(cond, domain.PriceContext{
		Now:       now,
		SlotStart: now.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Matches_UnknownPredicateFailsClosed(t *testing.T) {
	r := NewRegistry()

	ok, err := r.Matches(
		domain.RuleConditions{CustomCondition: "no_such_predicate"},
		domain.PriceContext{SlotStart: saturdayEvening},
	)

	assert.False(t, ok, "unknown keys must not match")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPredicate)
}

func TestRegistry_Matches_UnknownPredicateReportedOnNonMatch(t *testing.T) {
	r := NewRegistry()

	// The weekday condition already rules the slot out, but the bad key must
	// still be reported so the misconfigured rule is visible in the logs.
	ok, err := r.Matches(
		domain.RuleConditions{DaysOfWeek: []int{0}, CustomCondition: "no_such_predicate"},
		domain.PriceContext{SlotStart: saturdayEvening},
	)

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUnknownPredicate)
}

func TestRegistry_Register_Override(t *testing.T) {
	r := NewRegistry()
	r.Register("vip_customer", func(ctx domain.PriceContext) bool {
		return ctx.CustomerID == "vip-1"
	})

	cond := domain.RuleConditions{CustomCondition: "vip_customer"}

	ok, err := r.Matches(cond, domain.PriceContext{CustomerID: "vip-1"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Matches(cond, domain.PriceContext{CustomerID: "other"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Matches_CombinedConditionsAreANDed(t *testing.T) {
	r := NewRegistry()

	cond := domain.RuleConditions{
		DaysOfWeek:   []int{6},
		TimeStart:    "17:00",
		TimeEnd:      "21:00",
		MinGroupSize: intPtr(2),
	}

	ok, err := r.Matches(cond, domain.PriceContext{SlotStart: saturdayEvening, GroupSize: 4})
	require.NoError(t, err)
	assert.True(t, ok)

	// Same slot, group of one: one failed sub-condition sinks the match.
	ok, err = r.Matches(cond, domain.PriceContext{SlotStart: saturdayEvening, GroupSize: 1})
	require.NoError(t, err)
	assert.False(t, ok)
}
