package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	compatsvc "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/services/compat"
)

const (
	scorePrefix     = "compat:score:"
	defaultScoreTTL = 12 * time.Hour
)

// ScoreCacheRepo memoizes compatibility results per canonical pair key.
// Scoring is deterministic, so a cached entry is valid until a profile
// changes; the TTL bounds staleness after edits.
type ScoreCacheRepo struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewScoreCacheRepo(client *goredis.Client, ttl time.Duration) *ScoreCacheRepo {
	if ttl <= 0 {
		ttl = defaultScoreTTL
	}
	return &ScoreCacheRepo{client: client, ttl: ttl}
}

func (r *ScoreCacheRepo) Get(ctx context.Context, pairKey string) (compatsvc.Result, bool, error) {
	if r.client == nil {
		return compatsvc.Result{}, false, fmt.Errorf("redis client is nil")
	}
	if pairKey == "" {
		return compatsvc.Result{}, false, fmt.Errorf("pair key is required")
	}

	payload, err := r.client.Get(ctx, scoreKey(pairKey)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return compatsvc.Result{}, false, nil
		}
		return compatsvc.Result{}, false, fmt.Errorf("get cached score: %w", err)
	}

	var result compatsvc.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return compatsvc.Result{}, false, fmt.Errorf("decode cached score: %w", err)
	}

	return result, true, nil
}

func (r *ScoreCacheRepo) Set(ctx context.Context, pairKey string, result compatsvc.Result) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if pairKey == "" {
		return fmt.Errorf("pair key is required")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode score for cache: %w", err)
	}

	if err := r.client.Set(ctx, scoreKey(pairKey), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("set cached score: %w", err)
	}

	return nil
}

func scoreKey(pairKey string) string {
	return scorePrefix + pairKey
}
