package matches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/model"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/rules"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/pkg/keylock"
	compatsvc "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/services/compat"
)

const (
	defaultMatchTTL       = 30 * 24 * time.Hour
	defaultSweepBatchSize = 500
)

var (
	ErrValidation          = errors.New("validation error")
	ErrUnsupportedAction   = errors.New("unsupported action")
	ErrMatchNotFound       = errors.New("match not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrMatchFinalized      = errors.New("match already finalized")
)

type MatchStore interface {
	Create(ctx context.Context, m model.Match) error
	GetByID(ctx context.Context, id string) (model.Match, bool, error)
	GetByPairKey(ctx context.Context, pairKey string) (model.Match, bool, error)
	// UpdateOutcome persists both actions and the resulting status, but only
	// while the stored status is still pending. It reports whether a row was
	// updated.
	UpdateOutcome(ctx context.Context, id string, actionA, actionB enums.MatchAction, status enums.MatchStatus) (model.Match, bool, error)
	ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]model.Match, error)
	// MarkExpired flips a pending match whose deadline has passed to expired.
	// It reports whether the row transitioned.
	MarkExpired(ctx context.Context, id string, now time.Time) (bool, error)
}

type Scorer interface {
	Score(ctx context.Context, a, b model.Profile) (compatsvc.Result, error)
}

type Config struct {
	MatchTTL       time.Duration
	SweepBatchSize int
}

type Service struct {
	store  MatchStore
	scorer Scorer
	locks  *keylock.KeyedMutex
	cfg    Config
	now    func() time.Time
}

type Dependencies struct {
	Store  MatchStore
	Scorer Scorer
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.MatchTTL <= 0 {
		cfg.MatchTTL = defaultMatchTTL
	}
	if cfg.SweepBatchSize <= 0 {
		cfg.SweepBatchSize = defaultSweepBatchSize
	}

	return &Service{
		store:  deps.Store,
		scorer: deps.Scorer,
		locks:  keylock.New(),
		cfg:    cfg,
		now:    time.Now,
	}
}

// CreateOrGet returns the match record for the unordered pair, scoring and
// creating it on first sight. Pairs excluded by either profile's hard
// preferences surface compat.ErrNotEligible without a record being written.
func (s *Service) CreateOrGet(ctx context.Context, a, b model.Profile) (model.Match, error) {
	if a.UserID <= 0 || b.UserID <= 0 || a.UserID == b.UserID {
		return model.Match{}, ErrValidation
	}
	if s.store == nil || s.scorer == nil {
		return model.Match{}, fmt.Errorf("match dependencies are not configured")
	}

	result, err := s.scorer.Score(ctx, a, b)
	if err != nil {
		return model.Match{}, err
	}

	pairKey := rules.PairKey(a.UserID, b.UserID)
	s.locks.Lock(pairKey)
	defer s.locks.Unlock(pairKey)

	existing, found, err := s.store.GetByPairKey(ctx, pairKey)
	if err != nil {
		return model.Match{}, fmt.Errorf("load match by pair: %w", err)
	}
	if found {
		return existing, nil
	}

	now := s.now().UTC()
	userA, userB := rules.OrderPair(a.UserID, b.UserID)
	match := model.Match{
		ID:         uuid.NewString(),
		PairKey:    pairKey,
		UserAID:    userA,
		UserBID:    userB,
		Score:      result.Score,
		MatchType:  result.MatchType,
		Status:     enums.MatchStatusPending,
		ActionA:    enums.MatchActionNone,
		ActionB:    enums.MatchActionNone,
		Breakdown:  result.Breakdown,
		Strengths:  result.Strengths,
		Challenges: result.Challenges,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.cfg.MatchTTL),
	}

	if err := s.store.Create(ctx, match); err != nil {
		return model.Match{}, fmt.Errorf("create match: %w", err)
	}

	return match, nil
}

// SubmitAction records one side's action and resolves the combined status.
// Re-submission overwrites the caller's own action while the match is still
// pending; any submission after a terminal status is an error.
func (s *Service) SubmitAction(ctx context.Context, matchID string, userID int64, action enums.MatchAction) (model.Match, error) {
	if matchID == "" || userID <= 0 {
		return model.Match{}, ErrValidation
	}
	if action == enums.MatchActionNone || !action.Valid() {
		return model.Match{}, ErrUnsupportedAction
	}
	if s.store == nil {
		return model.Match{}, fmt.Errorf("match store is nil")
	}

	s.locks.Lock(matchID)
	defer s.locks.Unlock(matchID)

	match, found, err := s.store.GetByID(ctx, matchID)
	if err != nil {
		return model.Match{}, fmt.Errorf("load match: %w", err)
	}
	if !found {
		return model.Match{}, ErrMatchNotFound
	}
	if _, ok := match.ActionFor(userID); !ok {
		return model.Match{}, ErrParticipantNotFound
	}
	if match.Status.Terminal() {
		return model.Match{}, ErrMatchFinalized
	}

	actionA, actionB := match.ActionA, match.ActionB
	if userID == match.UserAID {
		actionA = action
	} else {
		actionB = action
	}
	status := rules.CombineActions(actionA, actionB)

	updated, ok, err := s.store.UpdateOutcome(ctx, matchID, actionA, actionB, status)
	if err != nil {
		return model.Match{}, fmt.Errorf("update match outcome: %w", err)
	}
	if !ok {
		// The store refused the conditional update: another writer (an
		// expiry sweep in a sibling process) finalized the match first.
		return model.Match{}, ErrMatchFinalized
	}

	return updated, nil
}

// SweepExpired transitions every pending match whose deadline passed to
// expired and returns how many transitioned. Matches already terminal are
// untouched, so repeated sweeps are no-ops.
func (s *Service) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	if s.store == nil {
		return 0, fmt.Errorf("match store is nil")
	}
	if now.IsZero() {
		now = s.now()
	}
	now = now.UTC()

	expired := 0
	for {
		batch, err := s.store.ListExpiredPending(ctx, now, s.cfg.SweepBatchSize)
		if err != nil {
			return expired, fmt.Errorf("list expired matches: %w", err)
		}
		if len(batch) == 0 {
			return expired, nil
		}

		progressed := false
		for _, match := range batch {
			ok, err := s.expireOne(ctx, match.ID, now)
			if err != nil {
				return expired, err
			}
			if ok {
				expired++
				progressed = true
			}
		}
		// Every candidate lost its race to a live action submission; the
		// next sweep will pick up anything genuinely left over.
		if !progressed {
			return expired, nil
		}
		if len(batch) < s.cfg.SweepBatchSize {
			return expired, nil
		}
	}
}

func (s *Service) expireOne(ctx context.Context, matchID string, now time.Time) (bool, error) {
	s.locks.Lock(matchID)
	defer s.locks.Unlock(matchID)

	ok, err := s.store.MarkExpired(ctx, matchID, now)
	if err != nil {
		return false, fmt.Errorf("expire match %s: %w", matchID, err)
	}
	return ok, nil
}
