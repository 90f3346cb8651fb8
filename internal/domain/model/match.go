package model

import (
	"time"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
)

// Breakdown is the per-dimension compatibility score, each in [0,100].
type Breakdown struct {
	Emotional     float64 `json:"emotional"`
	Intellectual  float64 `json:"intellectual"`
	Lifestyle     float64 `json:"lifestyle"`
	Values        float64 `json:"values"`
	Communication float64 `json:"communication"`
}

// Match is the single record for an unordered user pair. UserAID is always
// the lower of the two IDs and PairKey is derived from the ordered pair, so
// (A,B) and (B,A) collide on the same row.
type Match struct {
	ID         string            `json:"id"`
	PairKey    string            `json:"pair_key"`
	UserAID    int64             `json:"user_a_id"`
	UserBID    int64             `json:"user_b_id"`
	Score      float64           `json:"score"`
	MatchType  enums.MatchType   `json:"match_type"`
	Status     enums.MatchStatus `json:"status"`
	ActionA    enums.MatchAction `json:"action_a"`
	ActionB    enums.MatchAction `json:"action_b"`
	Breakdown  Breakdown         `json:"breakdown"`
	Strengths  []string          `json:"strengths"`
	Challenges []string          `json:"challenges"`
	CreatedAt  time.Time         `json:"created_at"`
	ExpiresAt  time.Time         `json:"expires_at"`
}

// ActionFor returns the recorded action of the given participant.
func (m Match) ActionFor(userID int64) (enums.MatchAction, bool) {
	switch userID {
	case m.UserAID:
		return m.ActionA, true
	case m.UserBID:
		return m.ActionB, true
	default:
		return enums.MatchActionNone, false
	}
}
