package models

import (
	"github.com/shopspring/decimal"
)

// BetSide identifies which first-inning outcome a recommendation backs.
type BetSide string

const (
	BetSideYRFI BetSide = "YRFI"
	BetSideNRFI BetSide = "NRFI"
)

// BetRecommendation is the output of the Kelly sizing step. It is transient
// display data and is never persisted.
type BetRecommendation struct {
	Side               BetSide         `json:"side"`
	AmericanOdds       float64         `json:"american_odds"`
	DecimalOdds        float64         `json:"decimal_odds"`
	ImpliedProbability float64         `json:"implied_probability"`
	ModelProbability   float64         `json:"model_probability"`
	KellyFraction      float64         `json:"kelly_fraction"`
	BetAmount          decimal.Decimal `json:"bet_amount"`
}

// Edge returns the model's probability advantage over the market's implied
// probability, in percentage points.
func (b *BetRecommendation) Edge() float64 {
	return (b.ModelProbability - b.ImpliedProbability) * 100
}
