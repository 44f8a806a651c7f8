package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/mariia-hub/bookingcore/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/xuri/excelize/v2"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestExporter_WriteBookingsReport(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	serviceRepo := mocks.NewMockServiceRepo(t)
	exporter := NewExporter(bookingRepo, serviceRepo, newTestLogger(t))

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{
			ID:             "b1",
			ServiceID:      "svc1",
			CustomerID:     "c1",
			GroupSize:      1,
			Status:         domain.BookingStatusConfirmed,
			PerPersonPrice: 120,
			TotalPrice:     120,
			CreatedAt:      time.Date(2026, 9, 3, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:              "b2",
			ServiceID:       "svc1",
			CustomerID:      "c2",
			GroupSize:       3,
			Status:          domain.BookingStatusPending,
			PerPersonPrice:  90,
			TotalPrice:      270,
			DepositRequired: true,
			CreatedAt:       time.Date(2026, 9, 4, 9, 0, 0, 0, time.UTC),
		},
	}

	bookingRepo.EXPECT().ListByDateRange(mock.Anything, from, to).Return(bookings, nil)
	// both rows share the service; the lookup must happen once
	serviceRepo.EXPECT().GetByID(mock.Anything, "svc1").Return(&domain.Service{ID: "svc1", Name: "Gel Manicure"}, nil).Once()

	var buf bytes.Buffer
	fileName, err := exporter.WriteBookingsReport(context.Background(), &buf, from, to)

	require.NoError(t, err)
	assert.Equal(t, "bookings_2026-09-01_to_2026-09-30.xlsx", fileName)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Bookings", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Bookings 01.09.2026 - 30.09.2026", title)

	id, _ := f.GetCellValue("Bookings", "A3")
	assert.Equal(t, "b1", id)
	name, _ := f.GetCellValue("Bookings", "B3")
	assert.Equal(t, "Gel Manicure", name)
	deposit, _ := f.GetCellValue("Bookings", "H3")
	assert.Equal(t, "-", deposit)
	deposit2, _ := f.GetCellValue("Bookings", "H4")
	assert.Equal(t, "pending", deposit2)

	assert.NotContains(t, f.GetSheetList(), "Sheet1")
}

func TestExporter_WriteBookingsReport_ServiceLookupFailure(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	serviceRepo := mocks.NewMockServiceRepo(t)
	exporter := NewExporter(bookingRepo, serviceRepo, newTestLogger(t))

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{ID: "b1", ServiceID: "gone", CustomerID: "c1", Status: domain.BookingStatusConfirmed},
	}

	bookingRepo.EXPECT().ListByDateRange(mock.Anything, from, to).Return(bookings, nil)
	serviceRepo.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrServiceNotFound)

	var buf bytes.Buffer
	_, err := exporter.WriteBookingsReport(context.Background(), &buf, from, to)

	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	// the row falls back to the raw service id
	name, _ := f.GetCellValue("Bookings", "B3")
	assert.Equal(t, "gone", name)
}
