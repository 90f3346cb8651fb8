package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/model"
)

type MatchRepo struct {
	pool *pgxpool.Pool
}

func NewMatchRepo(pool *pgxpool.Pool) *MatchRepo {
	return &MatchRepo{pool: pool}
}

const matchColumns = `
	id,
	pair_key,
	user_a_id,
	user_b_id,
	score,
	match_type,
	status,
	action_a,
	action_b,
	emotional,
	intellectual,
	lifestyle,
	values_score,
	communication,
	strengths,
	challenges,
	created_at,
	expires_at`

func (r *MatchRepo) Create(ctx context.Context, m model.Match) error {
	if m.ID == "" || m.PairKey == "" || m.UserAID <= 0 || m.UserBID <= 0 {
		return fmt.Errorf("invalid match payload")
	}
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	_, err := r.pool.Exec(ctx, `
INSERT INTO matches (
	id,
	pair_key,
	user_a_id,
	user_b_id,
	score,
	match_type,
	status,
	action_a,
	action_b,
	emotional,
	intellectual,
	lifestyle,
	values_score,
	communication,
	strengths,
	challenges,
	created_at,
	expires_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (pair_key) DO NOTHING
`,
		m.ID,
		m.PairKey,
		m.UserAID,
		m.UserBID,
		m.Score,
		string(m.MatchType),
		string(m.Status),
		string(m.ActionA),
		string(m.ActionB),
		m.Breakdown.Emotional,
		m.Breakdown.Intellectual,
		m.Breakdown.Lifestyle,
		m.Breakdown.Values,
		m.Breakdown.Communication,
		m.Strengths,
		m.Challenges,
		m.CreatedAt,
		m.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}

	return nil
}

func (r *MatchRepo) GetByID(ctx context.Context, id string) (model.Match, bool, error) {
	if id == "" {
		return model.Match{}, false, fmt.Errorf("match id is required")
	}
	if r.pool == nil {
		return model.Match{}, false, fmt.Errorf("postgres pool is nil")
	}

	row := r.pool.QueryRow(ctx, `SELECT`+matchColumns+` FROM matches WHERE id = $1`, id)
	return scanMatch(row)
}

func (r *MatchRepo) GetByPairKey(ctx context.Context, pairKey string) (model.Match, bool, error) {
	if pairKey == "" {
		return model.Match{}, false, fmt.Errorf("pair key is required")
	}
	if r.pool == nil {
		return model.Match{}, false, fmt.Errorf("postgres pool is nil")
	}

	row := r.pool.QueryRow(ctx, `SELECT`+matchColumns+` FROM matches WHERE pair_key = $1`, pairKey)
	return scanMatch(row)
}

func (r *MatchRepo) UpdateOutcome(ctx context.Context, id string, actionA, actionB enums.MatchAction, status enums.MatchStatus) (model.Match, bool, error) {
	if id == "" {
		return model.Match{}, false, fmt.Errorf("match id is required")
	}
	if r.pool == nil {
		return model.Match{}, false, fmt.Errorf("postgres pool is nil")
	}

	row := r.pool.QueryRow(ctx, `
UPDATE matches
SET
	action_a = $2,
	action_b = $3,
	status = $4
WHERE id = $1 AND status = 'pending'
RETURNING`+matchColumns,
		id, string(actionA), string(actionB), string(status))
	return scanMatch(row)
}

func (r *MatchRepo) ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]model.Match, error) {
	if limit <= 0 {
		limit = 500
	}
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT`+matchColumns+`
FROM matches
WHERE status = 'pending' AND expires_at <= $1
ORDER BY expires_at ASC, id ASC
LIMIT $2
`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired matches: %w", err)
	}
	defer rows.Close()

	items := make([]model.Match, 0, limit)
	for rows.Next() {
		match, err := scanMatchValues(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expired match: %w", err)
		}
		items = append(items, match)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate expired matches: %w", rows.Err())
	}

	return items, nil
}

func (r *MatchRepo) MarkExpired(ctx context.Context, id string, now time.Time) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("match id is required")
	}
	if r.pool == nil {
		return false, fmt.Errorf("postgres pool is nil")
	}

	result, err := r.pool.Exec(ctx, `
UPDATE matches
SET status = 'expired'
WHERE id = $1 AND status = 'pending' AND expires_at <= $2
`, id, now)
	if err != nil {
		return false, fmt.Errorf("expire match: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func scanMatch(row pgx.Row) (model.Match, bool, error) {
	match, err := scanMatchValues(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, false, nil
		}
		return model.Match{}, false, fmt.Errorf("scan match: %w", err)
	}
	return match, true, nil
}

func scanMatchValues(row pgx.Row) (model.Match, error) {
	var (
		m         model.Match
		matchType string
		status    string
		actionA   string
		actionB   string
	)
	err := row.Scan(
		&m.ID,
		&m.PairKey,
		&m.UserAID,
		&m.UserBID,
		&m.Score,
		&matchType,
		&status,
		&actionA,
		&actionB,
		&m.Breakdown.Emotional,
		&m.Breakdown.Intellectual,
		&m.Breakdown.Lifestyle,
		&m.Breakdown.Values,
		&m.Breakdown.Communication,
		&m.Strengths,
		&m.Challenges,
		&m.CreatedAt,
		&m.ExpiresAt,
	)
	if err != nil {
		return model.Match{}, err
	}

	m.MatchType = enums.MatchType(matchType)
	m.Status = enums.MatchStatus(status)
	m.ActionA = enums.MatchAction(actionA)
	m.ActionB = enums.MatchAction(actionB)
	return m, nil
}
