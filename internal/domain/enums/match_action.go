package enums

type MatchAction string

const (
	MatchActionNone      MatchAction = "none"
	MatchActionLike      MatchAction = "like"
	MatchActionPass      MatchAction = "pass"
	MatchActionSuperLike MatchAction = "super_like"
)

func (a MatchAction) Valid() bool {
	switch a {
	case MatchActionNone, MatchActionLike, MatchActionPass, MatchActionSuperLike:
		return true
	default:
		return false
	}
}

// Positive reports whether the action counts toward a mutual match.
func (a MatchAction) Positive() bool {
	return a == MatchActionLike || a == MatchActionSuperLike
}
