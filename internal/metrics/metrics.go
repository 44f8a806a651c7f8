package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookingcore",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by status.",
		},
		[]string{"status"},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookingcore",
			Name:      "booking_cancelled_total",
			Help:      "Count of bookings cancelled.",
		},
	)

	reservationRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookingcore",
			Name:      "reservation_rejected_total",
			Help:      "Count of reservations rejected by reason.",
		},
		[]string{"reason"},
	)

	quotesServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookingcore",
			Name:      "price_quotes_total",
			Help:      "Count of price quotes served.",
		},
	)

	waitlistPromotion = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookingcore",
			Name:      "waitlist_promotion_total",
			Help:      "Count of waitlist promotion attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingCreated, bookingCancelled, reservationRejected,
			quotesServed, waitlistPromotion,
		)
	})
}

func IncBookingCreated(status string) {
	bookingCreated.WithLabelValues(status).Inc()
}

func IncBookingCancelled() {
	bookingCancelled.Inc()
}

func IncReservationRejected(reason string) {
	reservationRejected.WithLabelValues(reason).Inc()
}

func IncQuotesServed() {
	quotesServed.Inc()
}

func IncWaitlistPromotion(outcome string) {
	waitlistPromotion.WithLabelValues(outcome).Inc()
}
