package revenue

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/model"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/rules"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/pkg/keylock"
)

const (
	defaultOwnerRatio = 0.7

	// Tolerance for float accumulation when checking the reconciliation
	// invariant; amounts are currency values, so anything past this is a bug.
	reconcileEpsilon = 1e-6
)

var (
	ErrValidation          = errors.New("validation error")
	ErrUnsupportedCategory = errors.New("unsupported revenue category")
	ErrRecordNotFound      = errors.New("revenue record not found")
	ErrPayoutFinalized     = errors.New("payout already finalized")
	ErrReconciliation      = errors.New("revenue reconciliation violated")
)

type RevenueStore interface {
	Get(ctx context.Context, dayKey string) (model.RevenueRecord, bool, error)
	// Upsert writes the full record for its day key, creating it on first
	// sight of the date.
	Upsert(ctx context.Context, record model.RevenueRecord) error
	UpdatePayoutStatus(ctx context.Context, dayKey string, status enums.PayoutStatus) (model.RevenueRecord, error)
}

type Config struct {
	DailyTarget       float64
	DefaultOwnerRatio float64
}

type Service struct {
	store RevenueStore
	locks *keylock.KeyedMutex
	cfg   Config
}

func NewService(store RevenueStore, cfg Config) *Service {
	if cfg.DefaultOwnerRatio <= 0 || cfg.DefaultOwnerRatio > 1 {
		cfg.DefaultOwnerRatio = defaultOwnerRatio
	}

	return &Service{
		store: store,
		locks: keylock.New(),
		cfg:   cfg,
	}
}

// RecordEvent folds one monetary event into the day's rollup. Events are
// additive; the caller is responsible for invoking it exactly once per real
// event. ownerRatio <= 0 falls back to the configured default split.
func (s *Service) RecordEvent(ctx context.Context, at time.Time, category enums.RevenueCategory, amount, ownerRatio float64) (model.RevenueRecord, error) {
	if at.IsZero() || amount <= 0 {
		return model.RevenueRecord{}, ErrValidation
	}
	if !category.Valid() {
		return model.RevenueRecord{}, ErrUnsupportedCategory
	}
	if ownerRatio <= 0 {
		ownerRatio = s.cfg.DefaultOwnerRatio
	}
	if ownerRatio > 1 {
		return model.RevenueRecord{}, ErrValidation
	}
	if s.store == nil {
		return model.RevenueRecord{}, fmt.Errorf("revenue store is nil")
	}

	dayKey := rules.DayKey(at)
	s.locks.Lock(dayKey)
	defer s.locks.Unlock(dayKey)

	record, found, err := s.store.Get(ctx, dayKey)
	if err != nil {
		return model.RevenueRecord{}, fmt.Errorf("load revenue record: %w", err)
	}
	if !found {
		record = model.RevenueRecord{
			DayKey:       dayKey,
			PayoutStatus: enums.PayoutStatusPending,
		}
	}

	switch category {
	case enums.RevenueCategorySubscriptions:
		record.Breakdown.Subscriptions += amount
	case enums.RevenueCategoryPremiumFeatures:
		record.Breakdown.PremiumFeatures += amount
	case enums.RevenueCategorySuperLikes:
		record.Breakdown.SuperLikes += amount
	case enums.RevenueCategoryBoosts:
		record.Breakdown.Boosts += amount
	}
	record.Total += amount
	record.OwnerAmount += amount * ownerRatio
	record.OperatingAmount += amount * (1 - ownerRatio)
	record.TargetMet = s.cfg.DailyTarget > 0 && record.Total >= s.cfg.DailyTarget
	record.UpdatedAt = at.UTC()

	if err := reconcile(record); err != nil {
		return model.RevenueRecord{}, err
	}

	if err := s.store.Upsert(ctx, record); err != nil {
		return model.RevenueRecord{}, fmt.Errorf("persist revenue record: %w", err)
	}

	return record, nil
}

// MarkPayout moves the day's payout status forward. Only processed is
// terminal: a failed payout may be retried into processed (or marked failed
// again), while a processed one can never change.
func (s *Service) MarkPayout(ctx context.Context, dayKey string, status enums.PayoutStatus) (model.RevenueRecord, error) {
	if dayKey == "" {
		return model.RevenueRecord{}, ErrValidation
	}
	if status != enums.PayoutStatusProcessed && status != enums.PayoutStatusFailed {
		return model.RevenueRecord{}, ErrValidation
	}
	if s.store == nil {
		return model.RevenueRecord{}, fmt.Errorf("revenue store is nil")
	}

	s.locks.Lock(dayKey)
	defer s.locks.Unlock(dayKey)

	record, found, err := s.store.Get(ctx, dayKey)
	if err != nil {
		return model.RevenueRecord{}, fmt.Errorf("load revenue record: %w", err)
	}
	if !found {
		return model.RevenueRecord{}, ErrRecordNotFound
	}
	if record.PayoutStatus == enums.PayoutStatusProcessed {
		return model.RevenueRecord{}, ErrPayoutFinalized
	}

	updated, err := s.store.UpdatePayoutStatus(ctx, dayKey, status)
	if err != nil {
		return model.RevenueRecord{}, fmt.Errorf("update payout status: %w", err)
	}
	return updated, nil
}

// Get exposes the day's rollup to the caller.
func (s *Service) Get(ctx context.Context, dayKey string) (model.RevenueRecord, error) {
	if dayKey == "" {
		return model.RevenueRecord{}, ErrValidation
	}
	if s.store == nil {
		return model.RevenueRecord{}, fmt.Errorf("revenue store is nil")
	}

	record, found, err := s.store.Get(ctx, dayKey)
	if err != nil {
		return model.RevenueRecord{}, fmt.Errorf("load revenue record: %w", err)
	}
	if !found {
		return model.RevenueRecord{}, ErrRecordNotFound
	}
	return record, nil
}

func reconcile(record model.RevenueRecord) error {
	breakdownSum := record.Breakdown.Sum()
	splitSum := record.OwnerAmount + record.OperatingAmount
	if math.Abs(record.Total-breakdownSum) > reconcileEpsilon ||
		math.Abs(record.Total-splitSum) > reconcileEpsilon {
		return fmt.Errorf("%w: day %s total=%v breakdown=%v split=%v",
			ErrReconciliation, record.DayKey, record.Total, breakdownSum, splitSum)
	}
	return nil
}
