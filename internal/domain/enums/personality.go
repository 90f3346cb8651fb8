package enums

type CommunicationStyle string

const (
	CommunicationDirect     CommunicationStyle = "direct"
	CommunicationIndirect   CommunicationStyle = "indirect"
	CommunicationAssertive  CommunicationStyle = "assertive"
	CommunicationPassive    CommunicationStyle = "passive"
	CommunicationAnalytical CommunicationStyle = "analytical"
	CommunicationEmotional  CommunicationStyle = "emotional"
)

type ConflictStyle string

const (
	ConflictConfrontational ConflictStyle = "confrontational"
	ConflictAvoidant        ConflictStyle = "avoidant"
	ConflictCollaborative   ConflictStyle = "collaborative"
	ConflictCompetitive     ConflictStyle = "competitive"
	ConflictAccommodating   ConflictStyle = "accommodating"
)

type AttachmentStyle string

const (
	AttachmentSecure       AttachmentStyle = "secure"
	AttachmentAnxious      AttachmentStyle = "anxious"
	AttachmentAvoidant     AttachmentStyle = "avoidant"
	AttachmentDisorganized AttachmentStyle = "disorganized"
)

type LoveLanguage string

const (
	LoveLanguageWordsOfAffirmation LoveLanguage = "words_of_affirmation"
	LoveLanguageQualityTime        LoveLanguage = "quality_time"
	LoveLanguagePhysicalTouch      LoveLanguage = "physical_touch"
	LoveLanguageActsOfService      LoveLanguage = "acts_of_service"
	LoveLanguageReceivingGifts     LoveLanguage = "receiving_gifts"
)
