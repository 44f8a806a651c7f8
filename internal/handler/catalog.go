package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateService(c *ginext.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateServiceInput{
		Name:            req.Name,
		Type:            domain.ServiceType(req.Type),
		DurationMinutes: req.DurationMinutes,
		BasePrice:       req.BasePrice,
		AllowsGroups:    req.AllowsGroups,
		MaxGroupSize:    req.MaxGroupSize,
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceResponse(svc))
}

func (h *Handler) GetService(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid service id"})
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(svc))
}

func (h *Handler) ListServices(c *ginext.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateSlotInput{
		ServiceID:    req.ServiceID,
		Location:     req.Location,
		StartTime:    start,
		EndTime:      end,
		Capacity:     req.Capacity,
		AllowsGroups: req.AllowsGroups,
	}

	slot, err := h.catalogService.CreateSlot(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) GenerateSlots(c *ginext.Context) {
	var req dto.GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dateFrom, err := time.Parse("2006-01-02", req.DateFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date_from format, expected YYYY-MM-DD",
		})
		return
	}
	dateTo, err := time.Parse("2006-01-02", req.DateTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date_to format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.GenerateSlotsInput{
		ServiceID:    req.ServiceID,
		Location:     req.Location,
		Weekdays:     req.Weekdays,
		DayStart:     req.DayStart,
		DayEnd:       req.DayEnd,
		Capacity:     req.Capacity,
		AllowsGroups: req.AllowsGroups,
		DateFrom:     dateFrom,
		DateTo:       dateTo,
	}

	slots, err := h.catalogService.GenerateSlots(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ListSlots(c *ginext.Context) {
	serviceID := c.Param("id")
	if _, err := uuid.Parse(serviceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid service id"})
		return
	}

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date, expected YYYY-MM-DD",
		})
		return
	}

	slots, err := h.catalogService.ListSlots(c.Request.Context(), serviceID, day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}
