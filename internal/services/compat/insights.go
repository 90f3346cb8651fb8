package compat

import (
	"fmt"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/model"
)

const (
	strengthThreshold  = 80.0
	challengeThreshold = 40.0
)

// insights derives the free-text strengths and challenges lists from the
// breakdown and the shared love languages. Output order is fixed so the
// lists are identical regardless of argument order.
func insights(a, b model.Profile, breakdown model.Breakdown) ([]string, []string) {
	strengths := make([]string, 0, 6)
	challenges := make([]string, 0, 5)

	dims := []struct {
		value     float64
		strength  string
		challenge string
	}{
		{breakdown.Emotional, "strong emotional attunement", "large gap in emotional wavelength"},
		{breakdown.Intellectual, "well-matched intellectual curiosity", "different intellectual rhythms"},
		{breakdown.Lifestyle, "aligned day-to-day lifestyle", "conflicting lifestyle habits"},
		{breakdown.Values, "shared core values", "diverging core values"},
		{breakdown.Communication, "complementary communication styles", "communication styles likely to clash"},
	}
	for _, dim := range dims {
		if dim.value >= strengthThreshold {
			strengths = append(strengths, dim.strength)
		} else if dim.value <= challengeThreshold {
			challenges = append(challenges, dim.challenge)
		}
	}

	if shared := sharedLoveLanguages(a.LoveLanguages, b.LoveLanguages); len(shared) > 0 {
		strengths = append(strengths, fmt.Sprintf("shared love language: %s", shared[0]))
	}

	return strengths, challenges
}

func sharedLoveLanguages(a, b []enums.LoveLanguage) []enums.LoveLanguage {
	has := func(list []enums.LoveLanguage, target enums.LoveLanguage) bool {
		for _, l := range list {
			if l == target {
				return true
			}
		}
		return false
	}

	shared := make([]enums.LoveLanguage, 0, len(loveLanguageOrder))
	for _, lang := range loveLanguageOrder {
		if has(a, lang) && has(b, lang) {
			shared = append(shared, lang)
		}
	}
	return shared
}
