package scoring

import (
	"github.com/yourusername/yrfi-edge/internal/models"
)

// band is one rung of a threshold ladder: the first band whose predicate
// matches supplies the metric score.
type band struct {
	matches func(v float64) bool
	score   int
}

// K% is scored on the difference to the league average, higher is better.
var kDiffBands = []band{
	{func(d float64) bool { return d >= 5 }, 2},
	{func(d float64) bool { return d >= 0 }, 1},
	{func(d float64) bool { return d >= -5 }, -1},
	{func(d float64) bool { return true }, -2},
}

// BB% is scored on the difference to the league average, lower is better.
var bbDiffBands = []band{
	{func(d float64) bool { return d <= -2 }, 2},
	{func(d float64) bool { return d <= 0 }, 1},
	{func(d float64) bool { return d <= 2 }, -1},
	{func(d float64) bool { return true }, -2},
}

// First-inning WHIP is scored on absolute bands, lower is better.
var whipBands = []band{
	{func(v float64) bool { return v < 1.0 }, 2},
	{func(v float64) bool { return v < 1.1 }, 1},
	{func(v float64) bool { return v < 1.25 }, -1},
	{func(v float64) bool { return true }, -2},
}

// First-inning ERA is scored on absolute bands, lower is better.
var eraBands = []band{
	{func(v float64) bool { return v < 3.0 }, 2},
	{func(v float64) bool { return v < 3.5 }, 1},
	{func(v float64) bool { return v < 4.5 }, -1},
	{func(v float64) bool { return true }, -2},
}

// Score rates the normalized stats into a ScoreSet. A metric whose inputs are
// unavailable contributes 0 rather than aborting the pipeline.
func Score(n models.NormalizedStats) models.ScoreSet {
	set := models.ScoreSet{
		KScore:    scoreRelative(n.KPercent, n.MLBKPercent, kDiffBands),
		BBScore:   scoreRelative(n.BBPercent, n.MLBBBPercent, bbDiffBands),
		WHIPScore: scoreAbsolute(n.WHIP, whipBands),
		ERAScore:  scoreAbsolute(n.ERA, eraBands),
	}
	set.TotalScore = set.KScore + set.BBScore + set.WHIPScore + set.ERAScore
	set.RunPercentage = runPercentage(set.TotalScore)
	return set
}

// scoreRelative rates a metric against its league baseline; both operands are
// required.
func scoreRelative(value, baseline *float64, bands []band) int {
	if value == nil || baseline == nil {
		return 0
	}
	return evaluate(*value-*baseline, bands)
}

// scoreAbsolute rates a metric against fixed bands.
func scoreAbsolute(value *float64, bands []band) int {
	if value == nil {
		return 0
	}
	return evaluate(*value, bands)
}

// evaluate walks the ladder and returns the first matching band's score.
func evaluate(v float64, bands []band) int {
	for _, b := range bands {
		if b.matches(v) {
			return b.score
		}
	}
	return 0
}

// runPercentage maps a total score to the single-pitcher first-inning run
// likelihood. A higher total means a better pitcher and so a lower run
// likelihood; a total of exactly 0 maps to 50.
func runPercentage(total int) float64 {
	var pct float64
	if total > 0 {
		pct = 50 - float64(total)*5
	} else {
		pct = 50 + float64(abs(total))*5
	}
	return clamp(pct, 10, 90)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
