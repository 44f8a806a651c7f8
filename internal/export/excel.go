package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Bookings"

// Exporter renders booking reports as xlsx for the studio's back office.
type Exporter struct {
	bookingRepo ports.BookingRepo
	serviceRepo ports.ServiceRepo
	logger      logger.Logger
}

func NewExporter(bookingRepo ports.BookingRepo, serviceRepo ports.ServiceRepo, logger logger.Logger) *Exporter {
	return &Exporter{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// WriteBookingsReport streams an xlsx with every booking created in
// [from, to) to w. Returns the suggested file name.
func (e *Exporter) WriteBookingsReport(ctx context.Context, w io.Writer, from, to time.Time) (string, error) {
	bookings, err := e.bookingRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("list bookings: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Bookings %s - %s",
		from.Format("02.01.2006"), to.Format("02.01.2006")))
	if style, styleErr := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); styleErr == nil {
		f.SetCellStyle(sheetName, "A1", "A1", style)
	}
	f.MergeCell(sheetName, "A1", "I1")

	headers := []string{"Booking ID", "Service", "Customer", "Status", "Group size",
		"Per person", "Total", "Deposit", "Created at"}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	serviceNames := make(map[string]string)
	for i, b := range bookings {
		row := i + 3
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), b.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.serviceName(ctx, serviceNames, b.ServiceID))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), b.CustomerID)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), string(b.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), b.GroupSize)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), b.PerPersonPrice)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), b.TotalPrice)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), depositLabel(b))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), b.CreatedAt.Format("02.01.2006 15:04"))
	}

	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "C", 24)
	f.SetColWidth(sheetName, "D", "H", 12)
	f.SetColWidth(sheetName, "I", "I", 18)

	f.DeleteSheet("Sheet1")

	if err = f.Write(w); err != nil {
		return "", fmt.Errorf("write xlsx: %w", err)
	}

	fileName := fmt.Sprintf("bookings_%s_to_%s.xlsx",
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	e.logger.Info("bookings report generated",
		logger.String("file", fileName),
		logger.Int("rows", len(bookings)),
	)

	return fileName, nil
}

func (e *Exporter) serviceName(ctx context.Context, cache map[string]string, serviceID string) string {
	if name, ok := cache[serviceID]; ok {
		return name
	}

	svc, err := e.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		e.logger.Warn("service lookup failed for export",
			logger.String("service_id", serviceID),
		)
		cache[serviceID] = serviceID
		return serviceID
	}

	cache[serviceID] = svc.Name
	return svc.Name
}

func depositLabel(b *domain.Booking) string {
	switch {
	case !b.DepositRequired:
		return "-"
	case b.DepositPaid:
		return "paid"
	default:
		return "pending"
	}
}
