package rules

import "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"

// MatchTypeForScore maps a compatibility score to its tier.
// Boundaries:
// perfect: >= 90
// excellent: >= 75
// good: >= 60
// potential: everything below
func MatchTypeForScore(score float64) enums.MatchType {
	switch {
	case score >= 90:
		return enums.MatchTypePerfect
	case score >= 75:
		return enums.MatchTypeExcellent
	case score >= 60:
		return enums.MatchTypeGood
	default:
		return enums.MatchTypePotential
	}
}
