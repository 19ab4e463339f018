package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/yrfi-edge/internal/models"
)

func f(v float64) *float64 { return &v }

func TestKScoreBands(t *testing.T) {
	tests := []struct {
		name     string
		k, mlbK  float64
		expected int
	}{
		{"Well above league", 27.5, 22.0, 2},
		{"Exactly plus five", 27.0, 22.0, 2},
		{"Slightly above league", 25.0, 22.0, 1},
		{"Exactly league average", 22.0, 22.0, 1},
		{"Slightly below league", 20.0, 22.0, -1},
		{"Exactly minus five", 17.0, 22.0, -1},
		{"Well below league", 16.0, 22.0, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Score(models.NormalizedStats{KPercent: f(tt.k), MLBKPercent: f(tt.mlbK)})
			assert.Equal(t, tt.expected, set.KScore)
		})
	}
}

func TestBBScoreBands(t *testing.T) {
	tests := []struct {
		name      string
		bb, mlbBB float64
		expected  int
	}{
		{"Well below league", 5.0, 8.0, 2},
		{"Exactly minus two", 6.0, 8.0, 2},
		{"Slightly below league", 7.5, 8.0, 1},
		{"Exactly league average", 8.0, 8.0, 1},
		{"Slightly above league", 9.0, 8.0, -1},
		{"Exactly plus two", 10.0, 8.0, -1},
		{"Well above league", 11.0, 8.0, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Score(models.NormalizedStats{BBPercent: f(tt.bb), MLBBBPercent: f(tt.mlbBB)})
			assert.Equal(t, tt.expected, set.BBScore)
		})
	}
}

func TestWHIPScoreBands(t *testing.T) {
	tests := []struct {
		name     string
		whip     float64
		expected int
	}{
		{"Elite", 0.95, 2},
		{"Just under one", 0.999, 2},
		{"Exactly one", 1.0, 1},
		{"Good", 1.09, 1},
		{"Exactly one point one", 1.1, -1},
		{"Mediocre", 1.2, -1},
		{"Exactly one and a quarter", 1.25, -2},
		{"Poor", 1.6, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Score(models.NormalizedStats{WHIP: f(tt.whip)})
			assert.Equal(t, tt.expected, set.WHIPScore)
		})
	}
}

func TestERAScoreBands(t *testing.T) {
	tests := []struct {
		name     string
		era      float64
		expected int
	}{
		{"Elite", 2.5, 2},
		{"Just under three", 2.99, 2},
		{"Exactly three", 3.0, 1},
		{"Good", 3.4, 1},
		{"Exactly three and a half", 3.5, -1},
		{"Mediocre", 4.0, -1},
		{"Exactly four and a half", 4.5, -2},
		{"Poor", 6.2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Score(models.NormalizedStats{ERA: f(tt.era)})
			assert.Equal(t, tt.expected, set.ERAScore)
		})
	}
}

// TestScoreMissingOperandDegradesToZero checks that a metric with any missing
// input contributes nothing while its siblings still score.
func TestScoreMissingOperandDegradesToZero(t *testing.T) {
	set := Score(models.NormalizedStats{
		KPercent: f(25.0), // no league baseline, cannot compare
		WHIP:     f(0.95),
	})

	assert.Equal(t, 0, set.KScore)
	assert.Equal(t, 0, set.BBScore)
	assert.Equal(t, 0, set.ERAScore)
	assert.Equal(t, 2, set.WHIPScore)
	assert.Equal(t, 2, set.TotalScore)
}

func TestScoreAllUnavailable(t *testing.T) {
	set := Score(models.NormalizedStats{})

	assert.Equal(t, 0, set.KScore)
	assert.Equal(t, 0, set.BBScore)
	assert.Equal(t, 0, set.WHIPScore)
	assert.Equal(t, 0, set.ERAScore)
	assert.Equal(t, 0, set.TotalScore)
	assert.Equal(t, 50.0, set.RunPercentage)
}

// TestScoreStrongPitcherScenario walks the full pipeline for a strong starter:
// K% 25 vs 22, BB% 6 vs 8, WHIP 0.95, ERA 2.8.
func TestScoreStrongPitcherScenario(t *testing.T) {
	set := Score(models.NormalizedStats{
		KPercent:     f(25.0),
		MLBKPercent:  f(22.0),
		BBPercent:    f(6.0),
		MLBBBPercent: f(8.0),
		WHIP:         f(0.95),
		ERA:          f(2.8),
	})

	assert.Equal(t, 1, set.KScore)
	assert.Equal(t, 2, set.BBScore)
	assert.Equal(t, 2, set.WHIPScore)
	assert.Equal(t, 2, set.ERAScore)
	assert.Equal(t, 7, set.TotalScore)
	assert.Equal(t, 15.0, set.RunPercentage)
}

func TestRunPercentageBounds(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		expected float64
	}{
		{"Best possible total", 8, 10.0},
		{"Strong positive", 4, 30.0},
		{"Single point", 1, 45.0},
		{"Zero maps to fifty", 0, 50.0},
		{"Single negative", -1, 55.0},
		{"Weak negative", -4, 70.0},
		{"Worst possible total", -8, 90.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, runPercentage(tt.total))
		})
	}
}

// TestRunPercentageMonotone checks run likelihood never increases as the
// total score improves.
func TestRunPercentageMonotone(t *testing.T) {
	prev := runPercentage(-8)
	for total := -7; total <= 8; total++ {
		current := runPercentage(total)
		assert.LessOrEqual(t, current, prev, "total %d", total)
		prev = current
	}
}
