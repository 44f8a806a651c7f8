package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mariia-hub/bookingcore/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// AuditRepository writes the append-only booking change log and the price
// snapshots taken when a booking is priced. Neither table is ever updated.
type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AuditRepository) InsertChange(ctx context.Context, c *domain.BookingChange) error {
	query := `INSERT INTO booking_changes (id, booking_id, change_type, old_value, new_value, changed_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.BookingID, c.Type, nullableJSON(c.OldValue), nullableJSON(c.NewValue),
		c.ChangedBy, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking change: %w", err)
	}

	return nil
}

func (r *AuditRepository) ListChanges(ctx context.Context, bookingID string) ([]*domain.BookingChange, error) {
	query := `SELECT id, booking_id, change_type, old_value, new_value, changed_by, created_at
			  FROM booking_changes
			  WHERE booking_id = $1
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking changes: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingChange
	for rows.Next() {
		var c domain.BookingChange
		var oldValue, newValue []byte
		if err = rows.Scan(
			&c.ID, &c.BookingID, &c.Type, &oldValue, &newValue, &c.ChangedBy, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking change: %w", err)
		}
		c.OldValue = oldValue
		c.NewValue = newValue
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *AuditRepository) InsertSnapshot(ctx context.Context, s *domain.PriceSnapshot) error {
	applied, err := json.Marshal(s.AppliedRules)
	if err != nil {
		return fmt.Errorf("marshal applied rules: %w", err)
	}

	query := `INSERT INTO price_snapshots (id, booking_id, base_price, final_price, currency, applied_rules, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.BookingID, s.BasePrice, s.FinalPrice, s.Currency, applied, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price snapshot: %w", err)
	}

	return nil
}

func (r *AuditRepository) GetSnapshot(ctx context.Context, bookingID string) (*domain.PriceSnapshot, error) {
	query := `SELECT id, booking_id, base_price, final_price, currency, applied_rules, created_at
			  FROM price_snapshots
			  WHERE booking_id = $1
			  ORDER BY created_at DESC
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get price snapshot: %w", err)
	}

	var s domain.PriceSnapshot
	var applied []byte
	if err = row.Scan(
		&s.ID, &s.BookingID, &s.BasePrice, &s.FinalPrice, &s.Currency, &applied, &s.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan price snapshot: %w", err)
	}

	if len(applied) > 0 {
		if err = json.Unmarshal(applied, &s.AppliedRules); err != nil {
			return nil, fmt.Errorf("unmarshal applied rules: %w", err)
		}
	}

	return &s, nil
}

func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
