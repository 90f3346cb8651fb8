package rules

import "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"

// CombineActions resolves a match status from the two recorded actions. The
// function is commutative, so the outcome does not depend on which side's
// action arrived first: a pass from either side rejects the match even when
// the other side liked concurrently, and two positive actions are mutual.
func CombineActions(a, b enums.MatchAction) enums.MatchStatus {
	if a == enums.MatchActionPass || b == enums.MatchActionPass {
		return enums.MatchStatusRejected
	}
	if a.Positive() && b.Positive() {
		return enums.MatchStatusMutual
	}
	return enums.MatchStatusPending
}
