// Package scoring derives first-inning run likelihoods from scraped pitching
// stats: string cells are normalized into optional floats, each metric is
// scored against a fixed threshold table, and two pitchers' totals combine
// into a matchup probability.
package scoring

import (
	"strconv"
	"strings"

	"github.com/yourusername/yrfi-edge/internal/models"
)

// Normalize converts the raw string cells into numeric values. Rate fields may
// carry a trailing "%". Each field is parsed independently; a cell that fails
// to parse leaves its field nil and never fails normalization as a whole.
func Normalize(season models.RawSeasonStats, splits models.RawSplitStats) models.NormalizedStats {
	return models.NormalizedStats{
		KPercent:     parsePercent(season.KPercent),
		BBPercent:    parsePercent(season.BBPercent),
		MLBKPercent:  parsePercent(season.MLBKPercent),
		MLBBBPercent: parsePercent(season.MLBBBPercent),
		ERA:          parseFloat(splits.FirstInningERA),
		WHIP:         parseFloat(splits.FirstInningWHIP),
	}
}

// parsePercent parses a rate cell, tolerating a "%" suffix.
func parsePercent(s string) *float64 {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

// parseFloat parses a plain decimal cell, returning nil if invalid
func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}
