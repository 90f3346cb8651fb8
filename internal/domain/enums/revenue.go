package enums

type RevenueCategory string

const (
	RevenueCategorySubscriptions   RevenueCategory = "subscriptions"
	RevenueCategoryPremiumFeatures RevenueCategory = "premium_features"
	RevenueCategorySuperLikes      RevenueCategory = "super_likes"
	RevenueCategoryBoosts          RevenueCategory = "boosts"
)

func (c RevenueCategory) Valid() bool {
	switch c {
	case RevenueCategorySubscriptions, RevenueCategoryPremiumFeatures,
		RevenueCategorySuperLikes, RevenueCategoryBoosts:
		return true
	default:
		return false
	}
}

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusProcessed PayoutStatus = "processed"
	PayoutStatusFailed    PayoutStatus = "failed"
)

func (s PayoutStatus) Valid() bool {
	switch s {
	case PayoutStatusPending, PayoutStatusProcessed, PayoutStatusFailed:
		return true
	default:
		return false
	}
}
