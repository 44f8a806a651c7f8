package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const slotColumns = `id, service_id, location, start_time, end_time, capacity,
		current_bookings, allows_groups, created_at, updated_at`

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	query := `INSERT INTO availability_slots
				(id, service_id, location, start_time, end_time, capacity,
				 current_bookings, allows_groups, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.ServiceID, s.Location, s.StartTime, s.EndTime,
		s.Capacity, s.CurrentBookings, s.AllowsGroups, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) CreateBatch(ctx context.Context, slots []*domain.Slot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO availability_slots
				(id, service_id, location, start_time, end_time, capacity,
				 current_bookings, allows_groups, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	for _, s := range slots {
		if _, err = tx.ExecContext(
			ctx, query,
			s.ID, s.ServiceID, s.Location, s.StartTime, s.EndTime,
			s.Capacity, s.CurrentBookings, s.AllowsGroups, now, now,
		); err != nil {
			return fmt.Errorf("insert slot batch: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM availability_slots
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.Slot
	if err = scanSlot(row.Scan, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

func (r *SlotRepository) ListByServiceAndDate(ctx context.Context, serviceID string, day time.Time) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM availability_slots
			  WHERE service_id = $1 AND start_time >= $2 AND start_time < $3
			  ORDER BY start_time ASC`

	from := day.Truncate(24 * time.Hour)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, serviceID, from, from.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	return collectSlots(rows)
}

func (r *SlotRepository) ListOpen(ctx context.Context, from time.Time) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM availability_slots
			  WHERE start_time >= $1 AND current_bookings < capacity
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from)
	if err != nil {
		return nil, fmt.Errorf("list open slots: %w", err)
	}
	defer rows.Close()

	return collectSlots(rows)
}

// Reserve is the single write path that can consume capacity. The guarded
// update makes check-and-increment one atomic statement, so concurrent
// requests can never push current_bookings past capacity.
func (r *SlotRepository) Reserve(ctx context.Context, slotID string, size int) error {
	query := `UPDATE availability_slots
			  SET current_bookings = current_bookings + $2, updated_at = now()
			  WHERE id = $1 AND current_bookings + $2 <= capacity`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, slotID, size)
	if err != nil {
		return fmt.Errorf("reserve slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM availability_slots WHERE id = $1)`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, slotID)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if err = row.Scan(&exists); err != nil {
			return fmt.Errorf("scan slot check: %w", err)
		}
		if !exists {
			return domain.ErrSlotNotFound
		}
		return domain.ErrInsufficientCapacity
	}

	return nil
}

func (r *SlotRepository) Release(ctx context.Context, slotID string, size int) error {
	query := `UPDATE availability_slots
			  SET current_bookings = GREATEST(current_bookings - $2, 0), updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, slotID, size)
	if err != nil {
		return fmt.Errorf("release slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

func (r *SlotRepository) DayUtilisation(ctx context.Context, serviceID string, day time.Time) (int, int, error) {
	query := `SELECT COALESCE(SUM(current_bookings), 0), COALESCE(SUM(capacity), 0)
			  FROM availability_slots
			  WHERE service_id = $1 AND start_time >= $2 AND start_time < $3`

	from := day.Truncate(24 * time.Hour)
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, serviceID, from, from.Add(24*time.Hour))
	if err != nil {
		return 0, 0, fmt.Errorf("day utilisation: %w", err)
	}

	var booked, capacity int
	if err = row.Scan(&booked, &capacity); err != nil {
		return 0, 0, fmt.Errorf("scan utilisation: %w", err)
	}

	return booked, capacity, nil
}

func scanSlot(scan func(...any) error, s *domain.Slot) error {
	return scan(
		&s.ID, &s.ServiceID, &s.Location, &s.StartTime, &s.EndTime,
		&s.Capacity, &s.CurrentBookings, &s.AllowsGroups, &s.CreatedAt, &s.UpdatedAt,
	)
}

func collectSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	var res []*domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err := scanSlot(rows.Scan, &s); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
