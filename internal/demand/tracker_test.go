package demand

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeUtilisation struct {
	booked   int
	capacity int
	err      error
	calls    int
}

func (f *fakeUtilisation) DayUtilisation(ctx context.Context, serviceID string, day time.Time) (int, int, error) {
	f.calls++
	return f.booked, f.capacity, f.err
}

func TestLevelFromCounts(t *testing.T) {
	cases := []struct {
		booked, capacity, want int
	}{
		{0, 10, 0},
		{5, 10, 50},
		{10, 10, 100},
		{3, 4, 75},
		{12, 10, 100}, // overbooked data still caps at 100
		{5, 0, 0},     // no capacity published that day
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, levelFromCounts(tc.booked, tc.capacity))
	}
}

func TestTracker_PassThroughWithoutRedis(t *testing.T) {
	src := &fakeUtilisation{booked: 4, capacity: 5}
	tr := NewTracker(nil, src, time.Minute, newTestLogger(t))

	day := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 80, tr.Level(context.Background(), "svc-1", day))
	assert.Equal(t, 80, tr.Level(context.Background(), "svc-1", day))
	assert.Equal(t, 2, src.calls, "no cache, every call recomputes")
}

func TestTracker_SourceErrorDegradesToZero(t *testing.T) {
	src := &fakeUtilisation{err: errors.New("db down")}
	tr := NewTracker(nil, src, time.Minute, newTestLogger(t))

	level := tr.Level(context.Background(), "svc-1", time.Now())

	assert.Equal(t, 0, level, "pricing must keep working when demand is unknown")
}

func TestTracker_InvalidateWithoutRedisIsNoop(t *testing.T) {
	tr := NewTracker(nil, &fakeUtilisation{}, time.Minute, newTestLogger(t))

	tr.Invalidate(context.Background(), "svc-1", time.Now())
}
