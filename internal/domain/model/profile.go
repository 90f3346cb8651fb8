package model

import (
	"fmt"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
)

// PersonalityTraits are the five normalized Big Five traits plus emotional
// intelligence, each in [0,100].
type PersonalityTraits struct {
	Openness              float64 `json:"openness"`
	Conscientiousness     float64 `json:"conscientiousness"`
	Extraversion          float64 `json:"extraversion"`
	Agreeableness         float64 `json:"agreeableness"`
	Neuroticism           float64 `json:"neuroticism"`
	EmotionalIntelligence float64 `json:"emotional_intelligence"`
}

type DealBreakers struct {
	Smoking   bool                   `json:"smoking"`
	Drinking  enums.DrinkingHabit    `json:"drinking"`
	Children  enums.ChildrenStance   `json:"children"`
	Pets      bool                   `json:"pets"`
	Religion  string                 `json:"religion,omitempty"`
	Politics  enums.PoliticalLeaning `json:"politics,omitempty"`
	Exercise  enums.ExerciseHabit    `json:"exercise"`
	Education enums.EducationLevel   `json:"education"`
}

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// LookingFor is the stated partner preference used by the hard eligibility
// filter.
type LookingFor struct {
	AgeRange      AgeRange       `json:"age_range"`
	MaxDistanceKM int            `json:"max_distance_km"`
	Genders       []enums.Gender `json:"genders"`
}

// Profile is the read-only user view supplied by the surrounding
// application; it is already authenticated and belongs to an active user.
type Profile struct {
	UserID             int64                    `json:"user_id"`
	Age                int                      `json:"age"`
	Gender             enums.Gender             `json:"gender"`
	Traits             PersonalityTraits        `json:"traits"`
	CommunicationStyle enums.CommunicationStyle `json:"communication_style"`
	ConflictStyle      enums.ConflictStyle      `json:"conflict_style"`
	AttachmentStyle    enums.AttachmentStyle    `json:"attachment_style"`
	LoveLanguages      []enums.LoveLanguage     `json:"love_languages"`
	DealBreakers       DealBreakers             `json:"deal_breakers"`
	LookingFor         LookingFor               `json:"looking_for"`
	Lat                *float64                 `json:"lat,omitempty"`
	Lon                *float64                 `json:"lon,omitempty"`
}

func (p Profile) Validate() error {
	if p.UserID <= 0 {
		return fmt.Errorf("user id must be positive")
	}
	bounded := []struct {
		name  string
		value float64
	}{
		{"openness", p.Traits.Openness},
		{"conscientiousness", p.Traits.Conscientiousness},
		{"extraversion", p.Traits.Extraversion},
		{"agreeableness", p.Traits.Agreeableness},
		{"neuroticism", p.Traits.Neuroticism},
		{"emotional_intelligence", p.Traits.EmotionalIntelligence},
	}
	for _, field := range bounded {
		if field.value < 0 || field.value > 100 {
			return fmt.Errorf("trait %s out of range [0,100]: %v", field.name, field.value)
		}
	}
	if len(p.LoveLanguages) == 0 {
		return fmt.Errorf("love languages must not be empty")
	}
	if p.LookingFor.AgeRange.Min > 0 && p.LookingFor.AgeRange.Max > 0 &&
		p.LookingFor.AgeRange.Min > p.LookingFor.AgeRange.Max {
		return fmt.Errorf("age range min exceeds max")
	}
	return nil
}
