package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	CreateService(ctx context.Context, input domain.CreateServiceInput) (*domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	CreateSlot(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error)
	GenerateSlots(ctx context.Context, input domain.GenerateSlotsInput) ([]*domain.Slot, error)
	ListSlots(ctx context.Context, serviceID string, day time.Time) ([]*domain.Slot, error)
}

type PricingSvc interface {
	Quote(ctx context.Context, req domain.QuoteRequest) (*domain.PriceBreakdown, error)
	CreateRule(ctx context.Context, input domain.CreateRuleInput) (*domain.PricingRule, error)
	ListRules(ctx context.Context, serviceID string) ([]*domain.PricingRule, error)
	DeactivateRule(ctx context.Context, id string) error
}

type BookingSvc interface {
	CheckAvailability(ctx context.Context, slotID string, groupSize int) (*domain.Availability, error)
	Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, *domain.PriceBreakdown, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id, changedBy string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetPriceSnapshot(ctx context.Context, bookingID string) (*domain.PriceSnapshot, error)
	ListChanges(ctx context.Context, bookingID string) ([]*domain.BookingChange, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
}

type WaitlistSvc interface {
	Join(ctx context.Context, input domain.JoinWaitlistInput) (*domain.WaitlistEntry, error)
	Get(ctx context.Context, id string) (*domain.WaitlistEntry, error)
	Cancel(ctx context.Context, id string) error
}

type ReportExporter interface {
	WriteBookingsReport(ctx context.Context, w io.Writer, from, to time.Time) (string, error)
}

type Handler struct {
	catalogService  CatalogSvc
	pricingService  PricingSvc
	bookingService  BookingSvc
	waitlistService WaitlistSvc
	exporter        ReportExporter
}

func NewHandler(
	catalogService CatalogSvc,
	pricingService PricingSvc,
	bookingService BookingSvc,
	waitlistService WaitlistSvc,
	exporter ReportExporter,
) *Handler {
	return &Handler{
		catalogService:  catalogService,
		pricingService:  pricingService,
		bookingService:  bookingService,
		waitlistService: waitlistService,
		exporter:        exporter,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrRuleNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrWaitlistEntryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientCapacity):
		// A full slot is the one conflict the caller can act on: point them
		// at the waitlist.
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:            err.Error(),
			WaitlistEligible: true,
		})

	case errors.Is(err, domain.ErrConcurrencyConflict),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingNotActive),
		errors.Is(err, domain.ErrWaitlistNotActive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrGroupNotAllowed),
		errors.Is(err, domain.ErrGroupTooLarge),
		errors.Is(err, domain.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
