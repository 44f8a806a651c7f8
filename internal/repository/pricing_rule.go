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

const ruleColumns = `id, service_id, name, rule_type, conditions, modifier_type,
		modifier_value, priority, is_stackable, is_active, valid_from, valid_until,
		created_at, updated_at`

type RuleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRuleRepo(db *dbpg.DB) *RuleRepository {
	return &RuleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RuleRepository) Create(ctx context.Context, rule *domain.PricingRule) error {
	conditions, err := json.Marshal(rule.Conditions)
	if err != nil {
		return fmt.Errorf("marshal conditions: %w", err)
	}

	query := `INSERT INTO pricing_rules
				(id, service_id, name, rule_type, conditions, modifier_type, modifier_value,
				 priority, is_stackable, is_active, valid_from, valid_until, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now().UTC()
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rule.ID, rule.ServiceID, rule.Name, rule.Type, conditions,
		rule.ModifierType, rule.ModifierValue, rule.Priority,
		rule.IsStackable, rule.IsActive, rule.ValidFrom, rule.ValidUntil, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert pricing rule: %w", err)
	}

	return nil
}

// ListApplicable returns the rule set the resolver walks: active rules bound
// to the service or to all services, valid at asOf (open bounds are
// unbounded), ordered ascending by priority so the lowest number applies
// first.
func (r *RuleRepository) ListApplicable(ctx context.Context, serviceID string, asOf time.Time) ([]domain.PricingRule, error) {
	var exists bool
	checkQuery := `SELECT EXISTS(SELECT 1 FROM services WHERE id = $1)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, serviceID)
	if err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}
	if err = row.Scan(&exists); err != nil {
		return nil, fmt.Errorf("scan service check: %w", err)
	}
	if !exists {
		return nil, domain.ErrServiceNotFound
	}

	query := `SELECT ` + ruleColumns + `
			  FROM pricing_rules
			  WHERE is_active
			    AND (service_id IS NULL OR service_id = $1)
			    AND (valid_from IS NULL OR valid_from <= $2)
			    AND (valid_until IS NULL OR valid_until >= $2)
			  ORDER BY priority ASC, created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, serviceID, asOf)
	if err != nil {
		return nil, fmt.Errorf("list applicable rules: %w", err)
	}
	defer rows.Close()

	var res []domain.PricingRule
	for rows.Next() {
		rule, err := scanRule(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, *rule)
	}

	return res, rows.Err()
}

func (r *RuleRepository) List(ctx context.Context, serviceID string) ([]*domain.PricingRule, error) {
	query := `SELECT ` + ruleColumns + `
			  FROM pricing_rules
			  WHERE ($1 = '' OR service_id = $1)
			  ORDER BY priority ASC, created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	defer rows.Close()

	var res []*domain.PricingRule
	for rows.Next() {
		rule, err := scanRule(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, rule)
	}

	return res, rows.Err()
}

// Deactivate soft-disables the rule. Rules are never deleted: historical
// price snapshots reference them.
func (r *RuleRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE pricing_rules
			  SET is_active = false, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("deactivate rule: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deactivate rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRuleNotFound
	}

	return nil
}

func scanRule(scan func(...any) error) (*domain.PricingRule, error) {
	var rule domain.PricingRule
	var conditions []byte
	if err := scan(
		&rule.ID, &rule.ServiceID, &rule.Name, &rule.Type, &conditions,
		&rule.ModifierType, &rule.ModifierValue, &rule.Priority,
		&rule.IsStackable, &rule.IsActive, &rule.ValidFrom, &rule.ValidUntil,
		&rule.CreatedAt, &rule.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRuleNotFound
		}
		return nil, fmt.Errorf("scan rule: %w", err)
	}

	if len(conditions) > 0 {
		if err := json.Unmarshal(conditions, &rule.Conditions); err != nil {
			return nil, fmt.Errorf("unmarshal conditions: %w", err)
		}
	}

	return &rule, nil
}
