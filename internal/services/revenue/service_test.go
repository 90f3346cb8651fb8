package revenue

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/model"
)

type memoryRevenueStore struct {
	mu      sync.Mutex
	records map[string]model.RevenueRecord
}

func newMemoryRevenueStore() *memoryRevenueStore {
	return &memoryRevenueStore{records: make(map[string]model.RevenueRecord)}
}

func (s *memoryRevenueStore) Get(_ context.Context, dayKey string) (model.RevenueRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[dayKey]
	return record, ok, nil
}

func (s *memoryRevenueStore) Upsert(_ context.Context, record model.RevenueRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.DayKey] = record
	return nil
}

func (s *memoryRevenueStore) UpdatePayoutStatus(_ context.Context, dayKey string, status enums.PayoutStatus) (model.RevenueRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.records[dayKey]
	record.PayoutStatus = status
	s.records[dayKey] = record
	return record, nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRecordEventAccumulates(t *testing.T) {
	store := newMemoryRevenueStore()
	svc := NewService(store, Config{DailyTarget: 1000})

	ctx := context.Background()
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	if _, err := svc.RecordEvent(ctx, at, enums.RevenueCategoryBoosts, 10, 0.7); err != nil {
		t.Fatalf("first event: %v", err)
	}
	record, err := svc.RecordEvent(ctx, at.Add(2*time.Hour), enums.RevenueCategoryBoosts, 5, 0.7)
	if err != nil {
		t.Fatalf("second event: %v", err)
	}

	if !almostEqual(record.Total, 15) {
		t.Fatalf("unexpected total: %v", record.Total)
	}
	if !almostEqual(record.OwnerAmount, 10.5) {
		t.Fatalf("unexpected owner amount: %v", record.OwnerAmount)
	}
	if !almostEqual(record.OperatingAmount, 4.5) {
		t.Fatalf("unexpected operating amount: %v", record.OperatingAmount)
	}
	if !almostEqual(record.Breakdown.Boosts, 15) {
		t.Fatalf("unexpected boosts breakdown: %v", record.Breakdown.Boosts)
	}
	if record.TargetMet {
		t.Fatalf("target must not be met at 15/1000")
	}
	if record.PayoutStatus != enums.PayoutStatusPending {
		t.Fatalf("new record must start with pending payout, got %s", record.PayoutStatus)
	}
}

func TestRecordEventSplitsDatesByCalendarDay(t *testing.T) {
	store := newMemoryRevenueStore()
	svc := NewService(store, Config{DailyTarget: 100})

	ctx := context.Background()
	if _, err := svc.RecordEvent(ctx, time.Date(2026, 4, 2, 23, 59, 0, 0, time.UTC), enums.RevenueCategorySubscriptions, 80, 0.7); err != nil {
		t.Fatalf("day one event: %v", err)
	}
	if _, err := svc.RecordEvent(ctx, time.Date(2026, 4, 3, 0, 1, 0, 0, time.UTC), enums.RevenueCategorySubscriptions, 80, 0.7); err != nil {
		t.Fatalf("day two event: %v", err)
	}

	dayOne, err := svc.Get(ctx, "2026-04-02")
	if err != nil {
		t.Fatalf("get day one: %v", err)
	}
	dayTwo, err := svc.Get(ctx, "2026-04-03")
	if err != nil {
		t.Fatalf("get day two: %v", err)
	}
	if !almostEqual(dayOne.Total, 80) || !almostEqual(dayTwo.Total, 80) {
		t.Fatalf("events leaked across day boundary: %v / %v", dayOne.Total, dayTwo.Total)
	}
}

func TestRecordEventTargetMet(t *testing.T) {
	store := newMemoryRevenueStore()
	svc := NewService(store, Config{DailyTarget: 100})

	ctx := context.Background()
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	record, err := svc.RecordEvent(ctx, at, enums.RevenueCategorySubscriptions, 60, 0.7)
	if err != nil {
		t.Fatalf("first event: %v", err)
	}
	if record.TargetMet {
		t.Fatalf("target met too early")
	}

	record, err = svc.RecordEvent(ctx, at, enums.RevenueCategoryPremiumFeatures, 40, 0.7)
	if err != nil {
		t.Fatalf("second event: %v", err)
	}
	if !record.TargetMet {
		t.Fatalf("expected target met at 100/100")
	}
}

func TestRecordEventValidation(t *testing.T) {
	svc := NewService(newMemoryRevenueStore(), Config{})
	ctx := context.Background()
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	if _, err := svc.RecordEvent(ctx, at, enums.RevenueCategory("tips"), 10, 0.7); !errors.Is(err, ErrUnsupportedCategory) {
		t.Fatalf("expected ErrUnsupportedCategory, got %v", err)
	}
	if _, err := svc.RecordEvent(ctx, at, enums.RevenueCategoryBoosts, 0, 0.7); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero amount, got %v", err)
	}
	if _, err := svc.RecordEvent(ctx, at, enums.RevenueCategoryBoosts, 10, 1.5); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for ratio above 1, got %v", err)
	}
	if _, err := svc.RecordEvent(ctx, time.Time{}, enums.RevenueCategoryBoosts, 10, 0.7); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero time, got %v", err)
	}
}

func TestRecordEventDefaultOwnerRatio(t *testing.T) {
	svc := NewService(newMemoryRevenueStore(), Config{DefaultOwnerRatio: 0.6})
	ctx := context.Background()
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	record, err := svc.RecordEvent(ctx, at, enums.RevenueCategorySuperLikes, 10, 0)
	if err != nil {
		t.Fatalf("record event: %v", err)
	}
	if !almostEqual(record.OwnerAmount, 6) || !almostEqual(record.OperatingAmount, 4) {
		t.Fatalf("default split not applied: owner=%v operating=%v", record.OwnerAmount, record.OperatingAmount)
	}
}

func TestMarkPayoutTransitions(t *testing.T) {
	store := newMemoryRevenueStore()
	svc := NewService(store, Config{})
	ctx := context.Background()
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	if _, err := svc.RecordEvent(ctx, at, enums.RevenueCategoryBoosts, 10, 0.7); err != nil {
		t.Fatalf("seed record: %v", err)
	}
	dayKey := "2026-04-02"

	record, err := svc.MarkPayout(ctx, dayKey, enums.PayoutStatusFailed)
	if err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if record.PayoutStatus != enums.PayoutStatusFailed {
		t.Fatalf("unexpected status: %s", record.PayoutStatus)
	}

	// Failed is retryable into processed.
	record, err = svc.MarkPayout(ctx, dayKey, enums.PayoutStatusProcessed)
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if record.PayoutStatus != enums.PayoutStatusProcessed {
		t.Fatalf("unexpected status after retry: %s", record.PayoutStatus)
	}

	// Processed is terminal.
	if _, err := svc.MarkPayout(ctx, dayKey, enums.PayoutStatusProcessed); !errors.Is(err, ErrPayoutFinalized) {
		t.Fatalf("expected ErrPayoutFinalized, got %v", err)
	}
	if _, err := svc.MarkPayout(ctx, dayKey, enums.PayoutStatusFailed); !errors.Is(err, ErrPayoutFinalized) {
		t.Fatalf("expected ErrPayoutFinalized for failed after processed, got %v", err)
	}

	if _, err := svc.MarkPayout(ctx, "2026-04-09", enums.PayoutStatusProcessed); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for unknown date, got %v", err)
	}
	if _, err := svc.MarkPayout(ctx, dayKey, enums.PayoutStatusPending); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for pending target, got %v", err)
	}
}

func TestReconciliationViolationIsFatal(t *testing.T) {
	store := newMemoryRevenueStore()
	svc := NewService(store, Config{})
	ctx := context.Background()
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	if _, err := svc.RecordEvent(ctx, at, enums.RevenueCategoryBoosts, 10, 0.7); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	// Corrupt the stored record behind the service's back.
	corrupted := store.records["2026-04-02"]
	corrupted.Total = 999
	store.records["2026-04-02"] = corrupted

	if _, err := svc.RecordEvent(ctx, at, enums.RevenueCategoryBoosts, 5, 0.7); !errors.Is(err, ErrReconciliation) {
		t.Fatalf("expected ErrReconciliation, got %v", err)
	}
}

func TestConcurrentEventsSameDayDoNotLoseUpdates(t *testing.T) {
	store := newMemoryRevenueStore()
	svc := NewService(store, Config{})
	ctx := context.Background()
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.RecordEvent(ctx, at, enums.RevenueCategoryBoosts, 1, 0.5); err != nil {
				t.Errorf("record event: %v", err)
			}
		}()
	}
	wg.Wait()

	record, err := svc.Get(ctx, "2026-04-02")
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if !almostEqual(record.Total, workers) {
		t.Fatalf("lost updates: total=%v want %v", record.Total, float64(workers))
	}
}
