package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateService(c *ginext.Context)
	GetService(c *ginext.Context)
	ListServices(c *ginext.Context)
	CreateSlot(c *ginext.Context)
	GenerateSlots(c *ginext.Context)
	ListSlots(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	Quote(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetPriceSnapshot(c *ginext.Context)
	ListBookingChanges(c *ginext.Context)
	GetCustomerBookings(c *ginext.Context)
	JoinWaitlist(c *ginext.Context)
	GetWaitlistEntry(c *ginext.Context)
	CancelWaitlistEntry(c *ginext.Context)
	CreatePricingRule(c *ginext.Context)
	ListPricingRules(c *ginext.Context)
	DeactivatePricingRule(c *ginext.Context)
	ExportBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.POST("/services", h.CreateService)
		api.GET("/services", h.ListServices)
		api.GET("/services/:id", h.GetService)
		api.GET("/services/:id/slots", h.ListSlots)

		// Slots
		api.POST("/slots", h.CreateSlot)
		api.POST("/slots/generate", h.GenerateSlots)
		api.GET("/slots/:id/availability", h.CheckAvailability)

		// Pricing
		api.POST("/quotes", h.Quote)
		api.POST("/pricing-rules", h.CreatePricingRule)
		api.GET("/pricing-rules", h.ListPricingRules)
		api.POST("/pricing-rules/:id/deactivate", h.DeactivatePricingRule)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/:id/price-snapshot", h.GetPriceSnapshot)
		api.GET("/bookings/:id/changes", h.ListBookingChanges)
		api.GET("/customers/:id/bookings", h.GetCustomerBookings)

		// Waitlist
		api.POST("/waitlist", h.JoinWaitlist)
		api.GET("/waitlist/:id", h.GetWaitlistEntry)
		api.POST("/waitlist/:id/cancel", h.CancelWaitlistEntry)

		// Reports
		api.GET("/export/bookings", h.ExportBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
