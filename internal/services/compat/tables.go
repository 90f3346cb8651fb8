package compat

import "github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"

// Tunable scoring constants. Only the category names and the [0,100] ranges
// are fixed; the weights and penalties below are product defaults.
const (
	smokingPenalty      = 25.0
	petsPenalty         = 15.0
	drinkingStepPenalty = 10.0
	exerciseStepPenalty = 7.5

	valuesBase              = 50.0
	childrenExactBonus      = 25.0
	childrenAlignedBonus    = 10.0
	childrenConflictPenalty = 30.0
	religionMatchBonus      = 15.0
	religionMismatchPenalty = 10.0
	politicsMatchBonus      = 10.0
	politicsConflictPenalty = 15.0

	commStyleWeight     = 0.5
	conflictStyleWeight = 0.3
	attachStyleWeight   = 0.2
)

// communicationPairScores is a symmetric lookup: some opposite styles are
// complementary, so direct+analytical outranks direct+direct.
var communicationPairScores = map[enums.CommunicationStyle]map[enums.CommunicationStyle]float64{
	enums.CommunicationDirect: {
		enums.CommunicationDirect:     55,
		enums.CommunicationIndirect:   35,
		enums.CommunicationAssertive:  75,
		enums.CommunicationPassive:    45,
		enums.CommunicationAnalytical: 85,
		enums.CommunicationEmotional:  50,
	},
	enums.CommunicationIndirect: {
		enums.CommunicationIndirect:   50,
		enums.CommunicationAssertive:  55,
		enums.CommunicationPassive:    70,
		enums.CommunicationAnalytical: 45,
		enums.CommunicationEmotional:  65,
	},
	enums.CommunicationAssertive: {
		enums.CommunicationAssertive:  65,
		enums.CommunicationPassive:    40,
		enums.CommunicationAnalytical: 70,
		enums.CommunicationEmotional:  60,
	},
	enums.CommunicationPassive: {
		enums.CommunicationPassive:    45,
		enums.CommunicationAnalytical: 55,
		enums.CommunicationEmotional:  50,
	},
	enums.CommunicationAnalytical: {
		enums.CommunicationAnalytical: 60,
		enums.CommunicationEmotional:  40,
	},
	enums.CommunicationEmotional: {
		enums.CommunicationEmotional: 55,
	},
}

var conflictPairScores = map[enums.ConflictStyle]map[enums.ConflictStyle]float64{
	enums.ConflictCollaborative: {
		enums.ConflictCollaborative:   95,
		enums.ConflictAccommodating:   80,
		enums.ConflictConfrontational: 60,
		enums.ConflictCompetitive:     55,
		enums.ConflictAvoidant:        50,
	},
	enums.ConflictAccommodating: {
		enums.ConflictAccommodating:   60,
		enums.ConflictConfrontational: 55,
		enums.ConflictCompetitive:     50,
		enums.ConflictAvoidant:        55,
	},
	enums.ConflictConfrontational: {
		enums.ConflictConfrontational: 30,
		enums.ConflictCompetitive:     35,
		enums.ConflictAvoidant:        25,
	},
	enums.ConflictCompetitive: {
		enums.ConflictCompetitive: 25,
		enums.ConflictAvoidant:    40,
	},
	enums.ConflictAvoidant: {
		enums.ConflictAvoidant: 35,
	},
}

var attachmentPairScores = map[enums.AttachmentStyle]map[enums.AttachmentStyle]float64{
	enums.AttachmentSecure: {
		enums.AttachmentSecure:       95,
		enums.AttachmentAnxious:      70,
		enums.AttachmentAvoidant:     70,
		enums.AttachmentDisorganized: 55,
	},
	enums.AttachmentAnxious: {
		enums.AttachmentAnxious:      40,
		enums.AttachmentAvoidant:     25,
		enums.AttachmentDisorganized: 35,
	},
	enums.AttachmentAvoidant: {
		enums.AttachmentAvoidant:     35,
		enums.AttachmentDisorganized: 30,
	},
	enums.AttachmentDisorganized: {
		enums.AttachmentDisorganized: 25,
	},
}

// loveLanguageOrder fixes the iteration order when deriving shared-language
// strengths so the output is identical regardless of argument order.
var loveLanguageOrder = []enums.LoveLanguage{
	enums.LoveLanguageWordsOfAffirmation,
	enums.LoveLanguageQualityTime,
	enums.LoveLanguagePhysicalTouch,
	enums.LoveLanguageActsOfService,
	enums.LoveLanguageReceivingGifts,
}

const pairScoreDefault = 50.0

func commStyleScore(a, b enums.CommunicationStyle) float64 {
	if v, ok := communicationPairScores[a][b]; ok {
		return v
	}
	if v, ok := communicationPairScores[b][a]; ok {
		return v
	}
	return pairScoreDefault
}

func conflictStyleScore(a, b enums.ConflictStyle) float64 {
	if v, ok := conflictPairScores[a][b]; ok {
		return v
	}
	if v, ok := conflictPairScores[b][a]; ok {
		return v
	}
	return pairScoreDefault
}

func attachmentStyleScore(a, b enums.AttachmentStyle) float64 {
	if v, ok := attachmentPairScores[a][b]; ok {
		return v
	}
	if v, ok := attachmentPairScores[b][a]; ok {
		return v
	}
	return pairScoreDefault
}
