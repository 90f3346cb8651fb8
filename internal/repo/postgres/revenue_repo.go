package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/model"
)

type RevenueRepo struct {
	pool *pgxpool.Pool
}

func NewRevenueRepo(pool *pgxpool.Pool) *RevenueRepo {
	return &RevenueRepo{pool: pool}
}

const revenueColumns = `
	day_key,
	total,
	owner_amount,
	operating_amount,
	subscriptions,
	premium_features,
	super_likes,
	boosts,
	target_met,
	payout_status,
	updated_at`

func (r *RevenueRepo) Get(ctx context.Context, dayKey string) (model.RevenueRecord, bool, error) {
	if dayKey == "" {
		return model.RevenueRecord{}, false, fmt.Errorf("day key is required")
	}
	if r.pool == nil {
		return model.RevenueRecord{}, false, fmt.Errorf("postgres pool is nil")
	}

	row := r.pool.QueryRow(ctx, `SELECT`+revenueColumns+` FROM daily_revenue WHERE day_key = $1`, dayKey)
	record, err := scanRevenue(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RevenueRecord{}, false, nil
		}
		return model.RevenueRecord{}, false, fmt.Errorf("scan revenue record: %w", err)
	}

	return record, true, nil
}

func (r *RevenueRepo) Upsert(ctx context.Context, record model.RevenueRecord) error {
	if record.DayKey == "" {
		return fmt.Errorf("invalid revenue payload")
	}
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	_, err := r.pool.Exec(ctx, `
INSERT INTO daily_revenue (
	day_key,
	total,
	owner_amount,
	operating_amount,
	subscriptions,
	premium_features,
	super_likes,
	boosts,
	target_met,
	payout_status,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (day_key) DO UPDATE SET
	total = EXCLUDED.total,
	owner_amount = EXCLUDED.owner_amount,
	operating_amount = EXCLUDED.operating_amount,
	subscriptions = EXCLUDED.subscriptions,
	premium_features = EXCLUDED.premium_features,
	super_likes = EXCLUDED.super_likes,
	boosts = EXCLUDED.boosts,
	target_met = EXCLUDED.target_met,
	updated_at = EXCLUDED.updated_at
`,
		record.DayKey,
		record.Total,
		record.OwnerAmount,
		record.OperatingAmount,
		record.Breakdown.Subscriptions,
		record.Breakdown.PremiumFeatures,
		record.Breakdown.SuperLikes,
		record.Breakdown.Boosts,
		record.TargetMet,
		string(record.PayoutStatus),
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert revenue record: %w", err)
	}

	return nil
}

func (r *RevenueRepo) UpdatePayoutStatus(ctx context.Context, dayKey string, status enums.PayoutStatus) (model.RevenueRecord, error) {
	if dayKey == "" {
		return model.RevenueRecord{}, fmt.Errorf("day key is required")
	}
	if r.pool == nil {
		return model.RevenueRecord{}, fmt.Errorf("postgres pool is nil")
	}

	row := r.pool.QueryRow(ctx, `
UPDATE daily_revenue
SET payout_status = $2, updated_at = NOW()
WHERE day_key = $1 AND payout_status <> 'processed'
RETURNING`+revenueColumns,
		dayKey, string(status))
	record, err := scanRevenue(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RevenueRecord{}, fmt.Errorf("revenue record %s is missing or already processed", dayKey)
		}
		return model.RevenueRecord{}, fmt.Errorf("update payout status: %w", err)
	}

	return record, nil
}

func scanRevenue(row pgx.Row) (model.RevenueRecord, error) {
	var (
		record model.RevenueRecord
		status string
	)
	err := row.Scan(
		&record.DayKey,
		&record.Total,
		&record.OwnerAmount,
		&record.OperatingAmount,
		&record.Breakdown.Subscriptions,
		&record.Breakdown.PremiumFeatures,
		&record.Breakdown.SuperLikes,
		&record.Breakdown.Boosts,
		&record.TargetMet,
		&status,
		&record.UpdatedAt,
	)
	if err != nil {
		return model.RevenueRecord{}, err
	}

	record.PayoutStatus = enums.PayoutStatus(status)
	return record, nil
}
