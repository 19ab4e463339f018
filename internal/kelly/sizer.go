// Package kelly sizes first-inning bets with the Kelly criterion from a model
// probability and American-format odds.
package kelly

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/yrfi-edge/internal/models"
)

var (
	// ErrInvalidOdds is returned for American odds that cannot be priced
	// (zero, NaN, infinite).
	ErrInvalidOdds = errors.New("invalid american odds")

	// ErrNoPositiveEdge is returned when neither side of the matchup
	// carries a positive Kelly fraction.
	ErrNoPositiveEdge = errors.New("no positive edge on either side")
)

// Config holds sizing parameters
type Config struct {
	// Multiplier scales the raw Kelly fraction (fractional Kelly). 1.0
	// stakes the full Kelly amount.
	Multiplier float64
	// MinStake is the smallest bet worth placing; smaller recommendations
	// are suppressed as no-edge.
	MinStake float64
}

// DefaultConfig returns full-Kelly sizing with no stake floor
func DefaultConfig() Config {
	return Config{Multiplier: 1.0, MinStake: 0}
}

// Sizer converts matchup probabilities plus market odds into bet
// recommendations.
type Sizer struct {
	config Config
	logger *logrus.Logger
}

// NewSizer creates a new Kelly sizer
func NewSizer(cfg Config, logger *logrus.Logger) *Sizer {
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = 1.0
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Sizer{config: cfg, logger: logger}
}

// AmericanToDecimal converts American odds to decimal odds.
// +120 → 2.20, -150 → 1.667. Odds of zero are rejected: they would price the
// bet at even money with no stake returned (decimal odds of exactly 1), which
// makes the Kelly denominator vanish.
func AmericanToDecimal(odds float64) (float64, error) {
	if odds == 0 || math.IsNaN(odds) || math.IsInf(odds, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidOdds, odds)
	}
	if odds > 0 {
		return 1 + odds/100, nil
	}
	return 1 + 100/math.Abs(odds), nil
}

// ImpliedProbability returns the probability (0..1) implied by American odds.
// +120 → 0.4545, -150 → 0.60.
func ImpliedProbability(odds float64) float64 {
	if odds > 0 {
		return 100 / (odds + 100)
	}
	return math.Abs(odds) / (math.Abs(odds) + 100)
}

// Fraction computes the raw Kelly fraction for a model probability (0..1)
// against decimal odds. Negative or zero means no edge.
func Fraction(decimalOdds, modelProbability float64) float64 {
	return (decimalOdds*modelProbability - 1) / (decimalOdds - 1)
}

// Size evaluates the YRFI side first and, when it has no positive edge and
// NRFI odds were supplied, falls back to the complementary NRFI side with
// probability 100−p. ErrNoPositiveEdge is returned when no side qualifies.
func (s *Sizer) Size(yrfiProbPct float64, yrfiOdds float64, nrfiOdds *float64, bankroll float64) (*models.BetRecommendation, error) {
	if math.IsNaN(yrfiProbPct) || yrfiProbPct < 0 || yrfiProbPct > 100 {
		return nil, fmt.Errorf("probability %.2f%% out of range [0,100]", yrfiProbPct)
	}
	if math.IsNaN(bankroll) || math.IsInf(bankroll, 0) || bankroll <= 0 {
		return nil, fmt.Errorf("bankroll must be a positive amount, got %v", bankroll)
	}

	rec, err := s.evaluate(models.BetSideYRFI, yrfiProbPct/100, yrfiOdds, bankroll)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}

	s.logger.WithFields(logrus.Fields{
		"side":       models.BetSideYRFI,
		"odds":       yrfiOdds,
		"model_prob": yrfiProbPct / 100,
	}).Debug("No positive edge on primary side")

	if nrfiOdds == nil {
		return nil, ErrNoPositiveEdge
	}

	rec, err = s.evaluate(models.BetSideNRFI, (100-yrfiProbPct)/100, *nrfiOdds, bankroll)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoPositiveEdge
	}
	return rec, nil
}

// evaluate computes one side's recommendation, or nil when the Kelly fraction
// is not positive.
func (s *Sizer) evaluate(side models.BetSide, modelProb, americanOdds, bankroll float64) (*models.BetRecommendation, error) {
	decimalOdds, err := AmericanToDecimal(americanOdds)
	if err != nil {
		return nil, err
	}

	fraction := Fraction(decimalOdds, modelProb)
	if fraction <= 0 {
		return nil, nil
	}

	staked := fraction * s.config.Multiplier
	amount := decimal.NewFromFloat(bankroll).
		Mul(decimal.NewFromFloat(staked)).
		Round(2)

	if s.config.MinStake > 0 && amount.LessThan(decimal.NewFromFloat(s.config.MinStake)) {
		s.logger.WithFields(logrus.Fields{
			"side":      side,
			"amount":    amount,
			"min_stake": s.config.MinStake,
		}).Debug("Stake below minimum, no bet recommended")
		return nil, nil
	}

	s.logger.WithFields(logrus.Fields{
		"side":           side,
		"decimal_odds":   decimalOdds,
		"model_prob":     modelProb,
		"kelly_fraction": fraction,
		"bet_amount":     amount,
	}).Debug("Position size calculated")

	return &models.BetRecommendation{
		Side:               side,
		AmericanOdds:       americanOdds,
		DecimalOdds:        decimalOdds,
		ImpliedProbability: ImpliedProbability(americanOdds),
		ModelProbability:   modelProb,
		KellyFraction:      fraction,
		BetAmount:          amount,
	}, nil
}
