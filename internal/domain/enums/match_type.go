package enums

type MatchType string

const (
	MatchTypePerfect   MatchType = "perfect"
	MatchTypeExcellent MatchType = "excellent"
	MatchTypeGood      MatchType = "good"
	MatchTypePotential MatchType = "potential"
)
