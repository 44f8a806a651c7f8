package demand

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// SlotUtilisation is the source of truth the cache falls back to.
type SlotUtilisation interface {
	DayUtilisation(ctx context.Context, serviceID string, day time.Time) (booked, capacity int, err error)
}

// Tracker reports the demand level pricing rules condition on: the
// utilisation percentage (0..100) of a service's slots on a given day.
// Levels are cached in redis with a short TTL; with a nil client the tracker
// runs in pass-through mode and computes every level from the database.
type Tracker struct {
	rdb   *redis.Client
	slots SlotUtilisation
	ttl   time.Duration
	log   logger.Logger
}

func NewTracker(rdb *redis.Client, slots SlotUtilisation, ttl time.Duration, log logger.Logger) *Tracker {
	if rdb == nil {
		log.Warn("redis client is nil, demand levels are computed per request")
	}
	return &Tracker{rdb: rdb, slots: slots, ttl: ttl, log: log}
}

// Level never fails: demand is an input to pricing, and a cache or database
// hiccup must not block a quote. Errors degrade to level 0 and a log line.
func (t *Tracker) Level(ctx context.Context, serviceID string, day time.Time) int {
	key := demandKey(serviceID, day)

	if t.rdb != nil {
		if val, err := t.rdb.Get(ctx, key).Result(); err == nil {
			if level, convErr := strconv.Atoi(val); convErr == nil {
				return level
			}
		} else if err != redis.Nil {
			t.log.Warn("demand cache read failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}

	level := t.compute(ctx, serviceID, day)

	if t.rdb != nil {
		if err := t.rdb.Set(ctx, key, strconv.Itoa(level), t.ttl).Err(); err != nil {
			t.log.Warn("demand cache write failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
	}

	return level
}

// Invalidate drops the cached level after a booking or cancellation moved
// the counters.
func (t *Tracker) Invalidate(ctx context.Context, serviceID string, day time.Time) {
	if t.rdb == nil {
		return
	}
	if err := t.rdb.Del(ctx, demandKey(serviceID, day)).Err(); err != nil {
		t.log.Warn("demand cache invalidate failed",
			logger.String("service_id", serviceID),
			logger.String("error", err.Error()),
		)
	}
}

func (t *Tracker) compute(ctx context.Context, serviceID string, day time.Time) int {
	booked, capacity, err := t.slots.DayUtilisation(ctx, serviceID, day)
	if err != nil {
		t.log.Error("demand computation failed",
			logger.String("service_id", serviceID),
			logger.String("error", err.Error()),
		)
		return 0
	}

	return levelFromCounts(booked, capacity)
}

func levelFromCounts(booked, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	level := booked * 100 / capacity
	if level > 100 {
		level = 100
	}
	return level
}

func demandKey(serviceID string, day time.Time) string {
	return fmt.Sprintf("demand:%s:%s", serviceID, day.Format("2006-01-02"))
}
