package rules

import (
	"testing"
	"time"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	if PairKey(42, 7) != PairKey(7, 42) {
		t.Fatalf("pair key depends on argument order")
	}
	if PairKey(7, 42) != "7:42" {
		t.Fatalf("unexpected pair key: %s", PairKey(7, 42))
	}

	lo, hi := OrderPair(42, 7)
	if lo != 7 || hi != 42 {
		t.Fatalf("unexpected order: %d, %d", lo, hi)
	}
}

func TestDayKeyUsesUTCCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2026, 2, 9, 1, 30, 0, 0, loc) // 22:30 previous day UTC

	if got := DayKey(at); got != "2026-02-08" {
		t.Fatalf("unexpected day key: %s", got)
	}

	parsed, err := ParseDayKey("2026-02-08")
	if err != nil {
		t.Fatalf("parse day key: %v", err)
	}
	if DayKey(parsed) != "2026-02-08" {
		t.Fatalf("parse/format roundtrip broken: %s", DayKey(parsed))
	}
}

func TestMatchTypeThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  enums.MatchType
	}{
		{score: 100, want: enums.MatchTypePerfect},
		{score: 90, want: enums.MatchTypePerfect},
		{score: 89.9, want: enums.MatchTypeExcellent},
		{score: 75, want: enums.MatchTypeExcellent},
		{score: 74.9, want: enums.MatchTypeGood},
		{score: 60, want: enums.MatchTypeGood},
		{score: 59.9, want: enums.MatchTypePotential},
		{score: 0, want: enums.MatchTypePotential},
	}

	for _, tc := range tests {
		if got := MatchTypeForScore(tc.score); got != tc.want {
			t.Fatalf("MatchTypeForScore(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
