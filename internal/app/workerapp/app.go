package workerapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/config"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/jobs/expiry"
	pgrepo "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/repo/postgres"
	redrepo "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/repo/redis"
	compatsvc "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/services/compat"
	matchsvc "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/services/matches"
	revenuesvc "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/services/revenue"
)

// App wires the core services for the background worker and exposes them to
// the surrounding application. Its own loop runs the periodic expiration
// sweep.
type App struct {
	cfg      config.Config
	logger   *zap.Logger
	postgres *pgxpool.Pool
	redis    *goredis.Client

	scorer    *compatsvc.Scorer
	matches   *matchsvc.Service
	revenue   *revenuesvc.Service
	expiryJob *expiry.Job
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	pool, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("init postgres for worker app: %w", err)
	}

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	scorer := compatsvc.NewScorer(compatsvc.Weights{
		Emotional:     cfg.Matching.Weights.Emotional,
		Intellectual:  cfg.Matching.Weights.Intellectual,
		Lifestyle:     cfg.Matching.Weights.Lifestyle,
		Values:        cfg.Matching.Weights.Values,
		Communication: cfg.Matching.Weights.Communication,
	})
	scorer.AttachCache(redrepo.NewScoreCacheRepo(redisClient, cfg.Matching.ScoreCacheTTL))

	matchRepo := pgrepo.NewMatchRepo(pool)
	matchService := matchsvc.NewService(matchsvc.Dependencies{
		Store:  matchRepo,
		Scorer: scorer,
	}, matchsvc.Config{
		MatchTTL:       cfg.Matching.MatchTTL,
		SweepBatchSize: cfg.Matching.SweepBatchSize,
	})

	revenueService := revenuesvc.NewService(pgrepo.NewRevenueRepo(pool), revenuesvc.Config{
		DailyTarget:       cfg.Revenue.DailyTarget,
		DefaultOwnerRatio: cfg.Revenue.OwnerRatio,
	})

	return &App{
		cfg:       cfg,
		logger:    logger,
		postgres:  pool,
		redis:     redisClient,
		scorer:    scorer,
		matches:   matchService,
		revenue:   revenueService,
		expiryJob: expiry.New(matchService, logger),
	}, nil
}

func (a *App) Matches() *matchsvc.Service { return a.matches }

func (a *App) Revenue() *revenuesvc.Service { return a.revenue }

func (a *App) Scorer() *compatsvc.Scorer { return a.scorer }

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("worker app started")

	if err := a.runSweepLoop(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.logger.Info("worker app stopped")
	return nil
}

func (a *App) runSweepLoop(ctx context.Context) error {
	interval := a.cfg.Worker.SweepInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	if err := a.expiryJob.Run(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := a.expiryJob.Run(ctx); err != nil {
				return err
			}
		}
	}
}

func (a *App) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
}
