package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) JoinWaitlist(c *ginext.Context) {
	var req dto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	preferredDate, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid preferred_date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.JoinWaitlistInput{
		ServiceID:            req.ServiceID,
		CustomerID:           req.CustomerID,
		PreferredDate:        preferredDate,
		TimeStart:            req.TimeStart,
		TimeEnd:              req.TimeEnd,
		Location:             req.Location,
		GroupSize:            req.GroupSize,
		FlexibleWithTime:     req.FlexibleWithTime,
		FlexibleWithLocation: req.FlexibleWithLocation,
		PriorityScore:        req.PriorityScore,
	}

	entry, err := h.waitlistService.Join(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) GetWaitlistEntry(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid waitlist entry id"})
		return
	}

	entry, err := h.waitlistService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) CancelWaitlistEntry(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid waitlist entry id"})
		return
	}

	if err := h.waitlistService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}
