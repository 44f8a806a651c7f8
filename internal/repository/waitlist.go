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

const waitlistColumns = `id, service_id, customer_id, preferred_date, time_start, time_end,
		location, group_size, flexible_with_time, flexible_with_location, priority_score,
		promotion_attempts, max_promotion_attempts, status, created_at, updated_at`

type WaitlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWaitlistRepo(db *dbpg.DB) *WaitlistRepository {
	return &WaitlistRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *WaitlistRepository) Create(ctx context.Context, e *domain.WaitlistEntry) error {
	query := `INSERT INTO waitlist_entries
				(id, service_id, customer_id, preferred_date, time_start, time_end,
				 location, group_size, flexible_with_time, flexible_with_location,
				 priority_score, promotion_attempts, max_promotion_attempts, status,
				 created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.ServiceID, e.CustomerID, e.PreferredDate, e.TimeStart, e.TimeEnd,
		e.Location, e.GroupSize, e.FlexibleWithTime, e.FlexibleWithLocation,
		e.PriorityScore, e.PromotionAttempts, e.MaxPromotionAttempts, e.Status,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert waitlist entry: %w", err)
	}

	return nil
}

func (r *WaitlistRepository) GetByID(ctx context.Context, id string) (*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `
			  FROM waitlist_entries
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get waitlist entry: %w", err)
	}

	var e domain.WaitlistEntry
	if err = scanWaitlistEntry(row.Scan, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWaitlistEntryNotFound
		}
		return nil, fmt.Errorf("scan waitlist entry: %w", err)
	}

	return &e, nil
}

// ListCandidates returns active entries that could take the slot, best first:
// priority_score descending, then FIFO among equals. Time-window matching is
// the promoter's job; the query narrows by service, date and location.
func (r *WaitlistRepository) ListCandidates(ctx context.Context, slot *domain.Slot) ([]*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `
			  FROM waitlist_entries
			  WHERE status = $1
			    AND service_id = $2
			    AND preferred_date = $3::date
			    AND (location = $4 OR flexible_with_location)
			  ORDER BY priority_score DESC, created_at ASC`

	day := slot.StartTime.Truncate(24 * time.Hour)
	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.WaitlistStatusActive, slot.ServiceID, day, slot.Location,
	)
	if err != nil {
		return nil, fmt.Errorf("list waitlist candidates: %w", err)
	}
	defer rows.Close()

	var res []*domain.WaitlistEntry
	for rows.Next() {
		var e domain.WaitlistEntry
		if err = scanWaitlistEntry(rows.Scan, &e); err != nil {
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *WaitlistRepository) IncrementAttempts(ctx context.Context, id string) (int, error) {
	query := `UPDATE waitlist_entries
			  SET promotion_attempts = promotion_attempts + 1, updated_at = now()
			  WHERE id = $1
			  RETURNING promotion_attempts`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return 0, fmt.Errorf("increment attempts: %w", err)
	}

	var attempts int
	if err = row.Scan(&attempts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrWaitlistEntryNotFound
		}
		return 0, fmt.Errorf("scan attempts: %w", err)
	}

	return attempts, nil
}

// MarkPromoted is guarded on status: only an active entry can be promoted,
// so a raced second promotion of the same entry fails here and the caller
// releases its reservation.
func (r *WaitlistRepository) MarkPromoted(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, domain.WaitlistStatusPromoted)
}

func (r *WaitlistRepository) MarkExpired(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, domain.WaitlistStatusExpired)
}

func (r *WaitlistRepository) Cancel(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, domain.WaitlistStatusCancelled)
}

func (r *WaitlistRepository) setStatus(ctx context.Context, id string, to domain.WaitlistStatus) error {
	query := `UPDATE waitlist_entries
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, to, domain.WaitlistStatusActive)
	if err != nil {
		return fmt.Errorf("set waitlist status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("waitlist rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
			`SELECT EXISTS(SELECT 1 FROM waitlist_entries WHERE id = $1)`, id)
		if err != nil {
			return fmt.Errorf("check waitlist entry: %w", err)
		}
		if err = row.Scan(&exists); err != nil {
			return fmt.Errorf("scan waitlist check: %w", err)
		}
		if !exists {
			return domain.ErrWaitlistEntryNotFound
		}
		return domain.ErrWaitlistNotActive
	}

	return nil
}

func (r *WaitlistRepository) ExpireBefore(ctx context.Context, day time.Time) (int64, error) {
	query := `UPDATE waitlist_entries
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND preferred_date < $3::date`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		domain.WaitlistStatusActive, domain.WaitlistStatusExpired, day,
	)
	if err != nil {
		return 0, fmt.Errorf("expire waitlist entries: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expire rows affected: %w", err)
	}

	return rows, nil
}

func scanWaitlistEntry(scan func(...any) error, e *domain.WaitlistEntry) error {
	return scan(
		&e.ID, &e.ServiceID, &e.CustomerID, &e.PreferredDate, &e.TimeStart, &e.TimeEnd,
		&e.Location, &e.GroupSize, &e.FlexibleWithTime, &e.FlexibleWithLocation,
		&e.PriorityScore, &e.PromotionAttempts, &e.MaxPromotionAttempts, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
}
