package scoring

import (
	"errors"

	"github.com/yourusername/yrfi-edge/internal/models"
)

// ErrInsufficientPitchers is returned when a matchup probability is requested
// without two resolved pitcher analyses.
var ErrInsufficientPitchers = errors.New("matchup requires two resolved pitchers")

// Combine folds two pitchers' total scores into the probability (percent)
// that at least one run scores in the first inning. The result is symmetric
// in its arguments and always within [5,95].
func Combine(a, b *models.PitcherAnalysis) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrInsufficientPitchers
	}

	combined := a.Scores.TotalScore + b.Scores.TotalScore

	var prob float64
	if combined > 0 {
		prob = 40 - float64(combined)*2.5
	} else {
		prob = 40 + float64(abs(combined))*2.5
	}
	return clamp(prob, 5, 95), nil
}
