package enums

type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusMutual   MatchStatus = "mutual"
	MatchStatusRejected MatchStatus = "rejected"
	MatchStatusExpired  MatchStatus = "expired"
)

// Terminal reports whether no further transition is permitted from s.
func (s MatchStatus) Terminal() bool {
	switch s {
	case MatchStatusMutual, MatchStatusRejected, MatchStatusExpired:
		return true
	default:
		return false
	}
}
