package compat

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/model"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/rules"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotEligible = errors.New("pair is not eligible")
)

// Weights control the contribution of each breakdown dimension to the
// overall score. They are relative, not normalized.
type Weights struct {
	Emotional     float64
	Intellectual  float64
	Lifestyle     float64
	Values        float64
	Communication float64
}

// DefaultWeights favor the emotional and communication dimensions 1.5x.
func DefaultWeights() Weights {
	return Weights{
		Emotional:     1.5,
		Intellectual:  1,
		Lifestyle:     1,
		Values:        1,
		Communication: 1.5,
	}
}

func (w Weights) total() float64 {
	return w.Emotional + w.Intellectual + w.Lifestyle + w.Values + w.Communication
}

type Result struct {
	Score      float64         `json:"score"`
	MatchType  enums.MatchType `json:"match_type"`
	Breakdown  model.Breakdown `json:"breakdown"`
	Strengths  []string        `json:"strengths"`
	Challenges []string        `json:"challenges"`
}

// ScoreCache memoizes deterministic scoring results by canonical pair key.
type ScoreCache interface {
	Get(ctx context.Context, pairKey string) (Result, bool, error)
	Set(ctx context.Context, pairKey string, result Result) error
}

type Scorer struct {
	weights Weights
	cache   ScoreCache
}

func NewScorer(weights Weights) *Scorer {
	if weights.total() <= 0 {
		weights = DefaultWeights()
	}
	return &Scorer{weights: weights}
}

func (s *Scorer) AttachCache(cache ScoreCache) {
	s.cache = cache
}

// Score computes the compatibility result for a pair of profiles. It is
// deterministic and symmetric in its arguments. Pairs excluded by either
// side's age, gender or distance preference are not scored at all.
func (s *Scorer) Score(ctx context.Context, a, b model.Profile) (Result, error) {
	if a.UserID == b.UserID {
		return Result{}, fmt.Errorf("%w: cannot score a profile against itself", ErrValidation)
	}
	if err := a.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: profile %d: %v", ErrValidation, a.UserID, err)
	}
	if err := b.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: profile %d: %v", ErrValidation, b.UserID, err)
	}

	if !eligible(a, b) || !eligible(b, a) {
		return Result{}, ErrNotEligible
	}

	pairKey := rules.PairKey(a.UserID, b.UserID)
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, pairKey); err == nil && ok {
			return cached, nil
		}
	}

	result := s.compute(a, b)

	if s.cache != nil {
		// Cache misses and write failures only cost a recompute.
		_ = s.cache.Set(ctx, pairKey, result)
	}

	return result, nil
}

func (s *Scorer) compute(a, b model.Profile) Result {
	breakdown := model.Breakdown{
		Emotional:     emotionalScore(a.Traits, b.Traits),
		Intellectual:  intellectualScore(a.Traits, b.Traits),
		Lifestyle:     lifestyleScore(a.DealBreakers, b.DealBreakers),
		Values:        valuesScore(a.DealBreakers, b.DealBreakers),
		Communication: communicationScore(a, b),
	}

	weighted := breakdown.Emotional*s.weights.Emotional +
		breakdown.Intellectual*s.weights.Intellectual +
		breakdown.Lifestyle*s.weights.Lifestyle +
		breakdown.Values*s.weights.Values +
		breakdown.Communication*s.weights.Communication
	score := clamp(weighted / s.weights.total())

	strengths, challenges := insights(a, b, breakdown)

	return Result{
		Score:      score,
		MatchType:  rules.MatchTypeForScore(score),
		Breakdown:  breakdown,
		Strengths:  strengths,
		Challenges: challenges,
	}
}

func eligible(viewer, candidate model.Profile) bool {
	pref := viewer.LookingFor
	if pref.AgeRange.Min > 0 && candidate.Age < pref.AgeRange.Min {
		return false
	}
	if pref.AgeRange.Max > 0 && candidate.Age > pref.AgeRange.Max {
		return false
	}
	if len(pref.Genders) > 0 {
		found := false
		for _, g := range pref.Genders {
			if g == candidate.Gender {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if pref.MaxDistanceKM > 0 &&
		viewer.Lat != nil && viewer.Lon != nil &&
		candidate.Lat != nil && candidate.Lon != nil {
		distance := rules.HaversineKM(*viewer.Lat, *viewer.Lon, *candidate.Lat, *candidate.Lon)
		if distance > float64(pref.MaxDistanceKM) {
			return false
		}
	}
	return true
}

// similarity maps the absolute distance between two bounded values to
// [0,100], where identical values score 100.
func similarity(x, y float64) float64 {
	return 100 - math.Abs(x-y)
}

func emotionalScore(a, b model.PersonalityTraits) float64 {
	ei := similarity(a.EmotionalIntelligence, b.EmotionalIntelligence)
	neuro := similarity(a.Neuroticism, b.Neuroticism)
	return clamp(0.7*ei + 0.3*neuro)
}

func intellectualScore(a, b model.PersonalityTraits) float64 {
	openness := similarity(a.Openness, b.Openness)
	conscientiousness := similarity(a.Conscientiousness, b.Conscientiousness)
	return clamp((openness + conscientiousness) / 2)
}

func lifestyleScore(a, b model.DealBreakers) float64 {
	score := 100.0
	if a.Smoking != b.Smoking {
		score -= smokingPenalty
	}
	if a.Pets != b.Pets {
		score -= petsPenalty
	}
	if da, db := a.Drinking.Scale(), b.Drinking.Scale(); da >= 0 && db >= 0 {
		score -= float64(abs(da-db)) * drinkingStepPenalty
	}
	if ea, eb := a.Exercise.Scale(), b.Exercise.Scale(); ea >= 0 && eb >= 0 {
		score -= float64(abs(ea-eb)) * exerciseStepPenalty
	}
	return clamp(score)
}

func valuesScore(a, b model.DealBreakers) float64 {
	score := valuesBase
	score += childrenAdjustment(a.Children, b.Children)

	if a.Religion != "" && b.Religion != "" {
		if a.Religion == b.Religion {
			score += religionMatchBonus
		} else {
			score -= religionMismatchPenalty
		}
	}

	if a.Politics != "" && b.Politics != "" {
		switch {
		case a.Politics == b.Politics:
			score += politicsMatchBonus
		case politicsOpposed(a.Politics, b.Politics):
			score -= politicsConflictPenalty
		}
	}

	return clamp(score)
}

func childrenAdjustment(a, b enums.ChildrenStance) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return childrenExactBonus
	}
	if childrenConflict(a, b) || childrenConflict(b, a) {
		return -childrenConflictPenalty
	}
	if childrenAligned(a, b) || childrenAligned(b, a) {
		return childrenAlignedBonus
	}
	return 0
}

func childrenConflict(a, b enums.ChildrenStance) bool {
	return a == enums.ChildrenDontWant && (b.WantsChildren() || b == enums.ChildrenHaveSome)
}

func childrenAligned(a, b enums.ChildrenStance) bool {
	if a == enums.ChildrenHaveSome && b.WantsChildren() {
		return true
	}
	return a == enums.ChildrenDontWant && b == enums.ChildrenNone
}

func politicsOpposed(a, b enums.PoliticalLeaning) bool {
	return (a == enums.PoliticsLiberal && b == enums.PoliticsConservative) ||
		(a == enums.PoliticsConservative && b == enums.PoliticsLiberal)
}

func communicationScore(a, b model.Profile) float64 {
	comm := commStyleScore(a.CommunicationStyle, b.CommunicationStyle)
	conflict := conflictStyleScore(a.ConflictStyle, b.ConflictStyle)
	attachment := attachmentStyleScore(a.AttachmentStyle, b.AttachmentStyle)
	return clamp(commStyleWeight*comm + conflictStyleWeight*conflict + attachStyleWeight*attachment)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
