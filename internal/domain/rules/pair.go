package rules

import "fmt"

// OrderPair returns the two user IDs in canonical (ascending) order.
func OrderPair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// PairKey derives the unordered-pair identifier: PairKey(a,b) == PairKey(b,a).
func PairKey(a, b int64) string {
	lo, hi := OrderPair(a, b)
	return fmt.Sprintf("%d:%d", lo, hi)
}
