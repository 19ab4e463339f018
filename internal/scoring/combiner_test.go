package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/yrfi-edge/internal/models"
)

func analysisWithTotal(total int) *models.PitcherAnalysis {
	return &models.PitcherAnalysis{
		Scores: models.ScoreSet{TotalScore: total},
	}
}

func TestCombineRequiresTwoPitchers(t *testing.T) {
	a := analysisWithTotal(3)

	_, err := Combine(a, nil)
	assert.ErrorIs(t, err, ErrInsufficientPitchers)

	_, err = Combine(nil, a)
	assert.ErrorIs(t, err, ErrInsufficientPitchers)

	_, err = Combine(nil, nil)
	assert.ErrorIs(t, err, ErrInsufficientPitchers)
}

func TestCombineProbabilities(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected float64
	}{
		{"Mixed strong and weak", 7, -3, 30.0},
		{"Both neutral", 0, 0, 40.0},
		{"Slightly positive", 1, 0, 37.5},
		{"Slightly negative", -1, 0, 42.5},
		{"Both weak", -8, -8, 80.0},
		{"Both elite clamps low", 8, 8, 5.0},
		{"Strongly positive", 8, 4, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prob, err := Combine(analysisWithTotal(tt.a), analysisWithTotal(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, prob)
		})
	}
}

// TestCombineSymmetric checks combine(a,b) == combine(b,a) across the full
// total range.
func TestCombineSymmetric(t *testing.T) {
	for a := -8; a <= 8; a += 2 {
		for b := -8; b <= 8; b += 2 {
			ab, err := Combine(analysisWithTotal(a), analysisWithTotal(b))
			require.NoError(t, err)
			ba, err := Combine(analysisWithTotal(b), analysisWithTotal(a))
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "a=%d b=%d", a, b)
		}
	}
}

func TestCombineAlwaysInRange(t *testing.T) {
	for a := -8; a <= 8; a++ {
		for b := -8; b <= 8; b++ {
			prob, err := Combine(analysisWithTotal(a), analysisWithTotal(b))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, prob, 5.0)
			assert.LessOrEqual(t, prob, 95.0)
		}
	}
}
