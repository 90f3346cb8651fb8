package expiry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Sweeper is implemented by the match lifecycle service.
type Sweeper interface {
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

type Job struct {
	sweeper Sweeper
	now     func() time.Time
	logger  *zap.Logger
}

func New(sweeper Sweeper, logger *zap.Logger) *Job {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Job{
		sweeper: sweeper,
		now:     time.Now,
		logger:  logger,
	}
}

// Run performs one expiration sweep. It is safe to invoke concurrently with
// live action submissions; the lifecycle service holds the per-match locks.
func (j *Job) Run(ctx context.Context) error {
	if j.sweeper == nil {
		return nil
	}

	count, err := j.sweeper.SweepExpired(ctx, j.now().UTC())
	if err != nil {
		return fmt.Errorf("sweep expired matches: %w", err)
	}
	if count > 0 {
		j.logger.Info("expired pending matches", zap.Int("count", count))
	}

	return nil
}
