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

type ServiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewServiceRepo(db *dbpg.DB) *ServiceRepository {
	return &ServiceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	query := `INSERT INTO services (id, name, service_type, duration_minutes, base_price,
                                    allows_groups, max_group_size, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Name, s.Type, s.DurationMinutes, s.BasePrice,
		s.AllowsGroups, s.MaxGroupSize, s.IsActive, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}

	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT id, name, service_type, duration_minutes, base_price,
       			allows_groups, max_group_size, is_active, created_at, updated_at
			  FROM services
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	var s domain.Service
	if err = row.Scan(
		&s.ID, &s.Name, &s.Type, &s.DurationMinutes, &s.BasePrice,
		&s.AllowsGroups, &s.MaxGroupSize, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	query := `SELECT id, name, service_type, duration_minutes, base_price,
       			allows_groups, max_group_size, is_active, created_at, updated_at
			  FROM services
			  ORDER BY name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var res []*domain.Service
	for rows.Next() {
		var s domain.Service
		if err = rows.Scan(
			&s.ID, &s.Name, &s.Type, &s.DurationMinutes, &s.BasePrice,
			&s.AllowsGroups, &s.MaxGroupSize, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
