package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/mariia-hub/bookingcore/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) ExportBookings(c *ginext.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid from date, expected YYYY-MM-DD",
		})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid to date, expected YYYY-MM-DD",
		})
		return
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "to must be after from"})
		return
	}

	var buf bytes.Buffer
	fileName, err := h.exporter.WriteBookingsReport(c.Request.Context(), &buf, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
