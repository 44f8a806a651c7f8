package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/handler/dto"
	hmocks "github.com/mariia-hub/bookingcore/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type routerMocks struct {
	catalog  *hmocks.MockCatalogSvc
	pricing  *hmocks.MockPricingSvc
	booking  *hmocks.MockBookingSvc
	waitlist *hmocks.MockWaitlistSvc
	exporter *hmocks.MockReportExporter
}

func setupRouter(t *testing.T) (*routerMocks, http.Handler) {
	t.Helper()
	m := &routerMocks{
		catalog:  hmocks.NewMockCatalogSvc(t),
		pricing:  hmocks.NewMockPricingSvc(t),
		booking:  hmocks.NewMockBookingSvc(t),
		waitlist: hmocks.NewMockWaitlistSvc(t),
		exporter: hmocks.NewMockReportExporter(t),
	}

	h := NewHandler(m.catalog, m.pricing, m.booking, m.waitlist, m.exporter)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/services", h.CreateService)
		api.GET("/services", h.ListServices)
		api.GET("/services/:id", h.GetService)
		api.GET("/services/:id/slots", h.ListSlots)
		api.POST("/slots", h.CreateSlot)
		api.POST("/slots/generate", h.GenerateSlots)
		api.GET("/slots/:id/availability", h.CheckAvailability)
		api.POST("/quotes", h.Quote)
		api.POST("/pricing-rules", h.CreatePricingRule)
		api.GET("/pricing-rules", h.ListPricingRules)
		api.POST("/pricing-rules/:id/deactivate", h.DeactivatePricingRule)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/:id/price-snapshot", h.GetPriceSnapshot)
		api.GET("/bookings/:id/changes", h.ListBookingChanges)
		api.GET("/customers/:id/bookings", h.GetCustomerBookings)
		api.POST("/waitlist", h.JoinWaitlist)
		api.GET("/waitlist/:id", h.GetWaitlistEntry)
		api.POST("/waitlist/:id/cancel", h.CancelWaitlistEntry)
		api.GET("/export/bookings", h.ExportBookings)
	}

	return m, r
}

// --- Catalog ---

func TestHandler_CreateService_Success(t *testing.T) {
	m, r := setupRouter(t)

	svc := &domain.Service{
		ID:              uuid.New().String(),
		Name:            "Gel Manicure",
		Type:            domain.ServiceTypeBeauty,
		DurationMinutes: 60,
		BasePrice:       120,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	m.catalog.EXPECT().CreateService(mock.Anything, mock.Anything).Return(svc, nil)

	body, _ := json.Marshal(dto.CreateServiceRequest{
		Name:            "Gel Manicure",
		Type:            "beauty",
		DurationMinutes: 60,
		BasePrice:       120,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/services", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ServiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gel Manicure", resp.Name)
}

func TestHandler_CreateService_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/services", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetService_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetService_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	serviceID := uuid.New().String()
	m.catalog.EXPECT().GetService(mock.Anything, serviceID).Return(nil, domain.ErrServiceNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services/"+serviceID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListSlots_Success(t *testing.T) {
	m, r := setupRouter(t)

	serviceID := uuid.New().String()
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	slots := []*domain.Slot{
		{ID: "s1", ServiceID: serviceID, StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour), Capacity: 5},
	}
	m.catalog.EXPECT().ListSlots(mock.Anything, serviceID, day).Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services/"+serviceID+"/slots?date=2026-09-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 5, resp[0].RemainingCapacity)
}

func TestHandler_ListSlots_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services/"+uuid.New().String()+"/slots?date=tomorrow", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Availability and quotes ---

func TestHandler_CheckAvailability_Success(t *testing.T) {
	m, r := setupRouter(t)

	slotID := uuid.New().String()
	m.booking.EXPECT().CheckAvailability(mock.Anything, slotID, 3).
		Return(&domain.Availability{Available: true, RemainingCapacity: 4}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/"+slotID+"/availability?group_size=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, 4, resp.RemainingCapacity)
}

func TestHandler_CheckAvailability_BadGroupSize(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots/"+uuid.New().String()+"/availability?group_size=zero", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Quote_Success(t *testing.T) {
	m, r := setupRouter(t)

	breakdown := &domain.PriceBreakdown{
		BasePrice:  100,
		FinalPrice: 85,
		Currency:   "PLN",
		AppliedRules: []domain.AppliedRule{
			{RuleID: "r1", Name: "off-peak", Type: domain.RuleTypeTimeBased, ModifierType: domain.ModifierPercentage, ModifierValue: -15, PriceAfter: 85},
		},
	}
	m.pricing.EXPECT().Quote(mock.Anything, mock.Anything).Return(breakdown, nil)

	body, _ := json.Marshal(dto.QuoteRequest{
		ServiceID: uuid.New().String(),
		StartTime: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		GroupSize: 1,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PriceBreakdownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 85.0, resp.FinalPrice)
	require.Len(t, resp.AppliedRules, 1)
	assert.Equal(t, "off-peak", resp.AppliedRules[0].Name)
}

func TestHandler_Quote_InvalidStartTime(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"service_id":"` + uuid.New().String() + `","start_time":"not-a-date","group_size":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	serviceID := uuid.New().String()
	slotID := uuid.New().String()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		ServiceID:      serviceID,
		SlotID:         slotID,
		CustomerID:     "c1",
		GroupSize:      1,
		Status:         domain.BookingStatusConfirmed,
		PerPersonPrice: 120,
		TotalPrice:     120,
		CreatedAt:      time.Now(),
	}
	breakdown := &domain.PriceBreakdown{BasePrice: 100, FinalPrice: 120, Currency: "PLN"}

	m.booking.EXPECT().Book(mock.Anything, mock.Anything).Return(booking, breakdown, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ServiceID:  serviceID,
		SlotID:     slotID,
		CustomerID: "c1",
		GroupSize:  1,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.Price)
	assert.Equal(t, 120.0, resp.Price.FinalPrice)
}

func TestHandler_CreateBooking_NoCapacity(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, nil, domain.ErrInsufficientCapacity)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ServiceID:  uuid.New().String(),
		SlotID:     uuid.New().String(),
		CustomerID: "c1",
		GroupSize:  2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.WaitlistEligible)
}

func TestHandler_CreateBooking_ConcurrencyConflictNoWaitlistOffer(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, nil, domain.ErrConcurrencyConflict)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ServiceID:  uuid.New().String(),
		SlotID:     uuid.New().String(),
		CustomerID: "c1",
		GroupSize:  1,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.WaitlistEligible)
}

func TestHandler_CreateBooking_GroupTooLarge(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, nil, domain.ErrGroupTooLarge)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		ServiceID:  uuid.New().String(),
		SlotID:     uuid.New().String(),
		CustomerID: "c1",
		GroupSize:  9,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Confirm(mock.Anything, bookingID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ConfirmBooking_WindowClosed(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Confirm(mock.Anything, bookingID).Return(domain.ErrBookingNotPending)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_DefaultsActor(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Cancel(mock.Anything, bookingID, "customer").Return(nil)

	// empty body: cancelled_by falls back to customer
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_AdminActor(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Cancel(mock.Anything, bookingID, "admin").Return(nil)

	body := []byte(`{"cancelled_by":"admin"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetPriceSnapshot_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	snap := &domain.PriceSnapshot{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		BasePrice:  100,
		FinalPrice: 85,
		Currency:   "PLN",
		CreatedAt:  time.Now(),
	}
	m.booking.EXPECT().GetPriceSnapshot(mock.Anything, bookingID).Return(snap, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID+"/price-snapshot", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SnapshotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 85.0, resp.FinalPrice)
}

func TestHandler_GetCustomerBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookings := []*domain.Booking{
		{ID: "b1", CustomerID: "c1", Status: domain.BookingStatusConfirmed, CreatedAt: time.Now()},
	}
	m.booking.EXPECT().ListByCustomer(mock.Anything, "c1").Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/c1/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Waitlist ---

func TestHandler_JoinWaitlist_Success(t *testing.T) {
	m, r := setupRouter(t)

	serviceID := uuid.New().String()
	entry := &domain.WaitlistEntry{
		ID:            uuid.New().String(),
		ServiceID:     serviceID,
		CustomerID:    "c1",
		PreferredDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		GroupSize:     2,
		Status:        domain.WaitlistStatusActive,
		CreatedAt:     time.Now(),
	}
	m.waitlist.EXPECT().Join(mock.Anything, mock.Anything).Return(entry, nil)

	body, _ := json.Marshal(dto.JoinWaitlistRequest{
		ServiceID:     serviceID,
		CustomerID:    "c1",
		PreferredDate: "2026-09-15",
		TimeStart:     "10:00",
		TimeEnd:       "14:00",
		GroupSize:     2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.WaitlistEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "active", resp.Status)
}

func TestHandler_JoinWaitlist_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"service_id":"` + uuid.New().String() + `","customer_id":"c1","preferred_date":"someday","group_size":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelWaitlistEntry_Terminal(t *testing.T) {
	m, r := setupRouter(t)

	entryID := uuid.New().String()
	m.waitlist.EXPECT().Cancel(mock.Anything, entryID).Return(domain.ErrWaitlistNotActive)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist/"+entryID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Pricing rules ---

func TestHandler_CreatePricingRule_Success(t *testing.T) {
	m, r := setupRouter(t)

	rule := &domain.PricingRule{
		ID:            uuid.New().String(),
		Name:          "weekend surcharge",
		Type:          domain.RuleTypeTimeBased,
		ModifierType:  domain.ModifierPercentage,
		ModifierValue: 15,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
	m.pricing.EXPECT().CreateRule(mock.Anything, mock.Anything).Return(rule, nil)

	body, _ := json.Marshal(dto.CreateRuleRequest{
		Name:          "weekend surcharge",
		Type:          "time_based",
		ModifierType:  "percentage",
		ModifierValue: 15,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pricing-rules", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RuleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsActive)
}

func TestHandler_DeactivatePricingRule_Success(t *testing.T) {
	m, r := setupRouter(t)

	ruleID := uuid.New().String()
	m.pricing.EXPECT().DeactivateRule(mock.Anything, ruleID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/pricing-rules/"+ruleID+"/deactivate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Export ---

func TestHandler_ExportBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.exporter.EXPECT().WriteBookingsReport(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, w io.Writer, _ time.Time, _ time.Time) {
			_, _ = w.Write([]byte("PK"))
		}).
		Return("bookings_2026-09-01_to_2026-09-30.xlsx", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/export/bookings?from=2026-09-01&to=2026-09-30", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings_2026-09-01_to_2026-09-30.xlsx")
	assert.Equal(t, "PK", w.Body.String())
}

func TestHandler_ExportBookings_MissingRange(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/export/bookings?from=2026-09-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().GetByID(mock.Anything, bookingID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
