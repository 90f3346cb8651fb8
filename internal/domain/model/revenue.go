package model

import (
	"time"

	"github.com/heatherkrueger1234-design/soulmate-connect/backend/internal/domain/enums"
)

// RevenueBreakdown splits a day's total across monetary event categories.
type RevenueBreakdown struct {
	Subscriptions   float64 `json:"subscriptions"`
	PremiumFeatures float64 `json:"premium_features"`
	SuperLikes      float64 `json:"super_likes"`
	Boosts          float64 `json:"boosts"`
}

func (b RevenueBreakdown) Sum() float64 {
	return b.Subscriptions + b.PremiumFeatures + b.SuperLikes + b.Boosts
}

// RevenueRecord is the daily rollup of monetary events, one per calendar
// date. Invariant: Total == Breakdown.Sum() == OwnerAmount + OperatingAmount.
type RevenueRecord struct {
	DayKey          string             `json:"day_key"`
	Total           float64            `json:"total"`
	OwnerAmount     float64            `json:"owner_amount"`
	OperatingAmount float64            `json:"operating_amount"`
	Breakdown       RevenueBreakdown   `json:"breakdown"`
	TargetMet       bool               `json:"target_met"`
	PayoutStatus    enums.PayoutStatus `json:"payout_status"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
