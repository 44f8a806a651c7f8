package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, service_id, slot_id, customer_id, group_size, status,
		per_person_price, total_price, deposit_required, deposit_paid, participants,
		created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	participants, err := json.Marshal(b.Participants)
	if err != nil {
		return fmt.Errorf("marshal participants: %w", err)
	}

	query := `INSERT INTO bookings
				(id, service_id, slot_id, customer_id, group_size, status,
				 per_person_price, total_price, deposit_required, deposit_paid,
				 participants, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.ServiceID, b.SlotID, b.CustomerID, b.GroupSize, b.Status,
		b.PerPersonPrice, b.TotalPrice, b.DepositRequired, b.DepositPaid,
		participants, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return b, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE customer_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE created_at >= $1 AND created_at < $2
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bookings by range: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = ANY($2)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, pq.Array(from), to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a missing booking from one in the wrong state.
		var exists bool
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
			`SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, id)
		if err != nil {
			return fmt.Errorf("check booking: %w", err)
		}
		if err = row.Scan(&exists); err != nil {
			return fmt.Errorf("scan booking check: %w", err)
		}
		if !exists {
			return domain.ErrBookingNotFound
		}
		return domain.ErrBookingNotActive
	}

	return nil
}

func (r *BookingRepository) ConfirmDeposit(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status = $2, deposit_paid = true, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusConfirmed, domain.BookingStatusPending,
	)
	if err != nil {
		return fmt.Errorf("confirm deposit: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("confirm rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
			`SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, id)
		if err != nil {
			return fmt.Errorf("check booking: %w", err)
		}
		if err = row.Scan(&exists); err != nil {
			return fmt.Errorf("scan booking check: %w", err)
		}
		if !exists {
			return domain.ErrBookingNotFound
		}
		return domain.ErrBookingNotPending
	}

	return nil
}

// CancelExpiredPending cancels pending group bookings whose deposit window
// has run out. Capacity release and audit are the caller's job: the rows are
// returned for exactly that.
func (r *BookingRepository) CancelExpiredPending(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND created_at < now() - make_interval(secs => $3)
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled, olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired pending: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func scanBooking(scan func(...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var participants []byte
	if err := scan(
		&b.ID, &b.ServiceID, &b.SlotID, &b.CustomerID, &b.GroupSize, &b.Status,
		&b.PerPersonPrice, &b.TotalPrice, &b.DepositRequired, &b.DepositPaid,
		&participants, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	if len(participants) > 0 {
		if err := json.Unmarshal(participants, &b.Participants); err != nil {
			return nil, fmt.Errorf("unmarshal participants: %w", err)
		}
	}

	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
