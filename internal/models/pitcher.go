package models

import (
	"time"

	"github.com/google/uuid"
)

// NotAvailable is the sentinel value for a stat cell the source could not provide.
const NotAvailable = "N/A"

// RawSeasonStats holds the season-level rate stats for one pitcher exactly as
// they appear in the source table, alongside the league-average row. Absent
// cells carry the NotAvailable sentinel, never empty pointers.
type RawSeasonStats struct {
	Year         string `json:"year"`
	KPercent     string `json:"k_percent"`
	BBPercent    string `json:"bb_percent"`
	MLBKPercent  string `json:"mlb_k_percent"`
	MLBBBPercent string `json:"mlb_bb_percent"`
}

// RawSplitStats holds the first-inning split cells as scraped.
type RawSplitStats struct {
	FirstInningERA  string `json:"first_inning_era"`
	FirstInningWHIP string `json:"first_inning_whip"`
}

// NormalizedStats is the numeric view of the raw stats. A nil field means the
// corresponding cell was missing or unparseable; consumers must handle that
// explicitly rather than expect a zero value.
type NormalizedStats struct {
	KPercent     *float64 `json:"k_percent"`
	BBPercent    *float64 `json:"bb_percent"`
	MLBKPercent  *float64 `json:"mlb_k_percent"`
	MLBBBPercent *float64 `json:"mlb_bb_percent"`
	ERA          *float64 `json:"era"`
	WHIP         *float64 `json:"whip"`
}

// ScoreSet is the per-metric score breakdown for one pitcher. Each metric
// score is in {-2,-1,0,1,2}, with 0 reserved for metrics whose inputs were
// unavailable. TotalScore is the plain sum, so it stays within [-8,8].
type ScoreSet struct {
	KScore        int     `json:"k_score"`
	BBScore       int     `json:"bb_score"`
	WHIPScore     int     `json:"whip_score"`
	ERAScore      int     `json:"era_score"`
	TotalScore    int     `json:"total_score"`
	RunPercentage float64 `json:"first_inning_run_percentage"`
}

// PitcherAnalysis aggregates everything derived for one pitcher in one season.
// It is created by the analyzer pipeline and never mutated afterwards.
type PitcherAnalysis struct {
	ID         uuid.UUID       `json:"id"`
	PlayerName string          `json:"player_name"`
	Year       int             `json:"year"`
	Season     RawSeasonStats  `json:"season_stats"`
	Splits     RawSplitStats   `json:"inning_splits"`
	Normalized NormalizedStats `json:"normalized"`
	Scores     ScoreSet        `json:"scores"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
}

// MatchupResult is the combined view of a two-pitcher game. YRFIProbability is
// the chance (percent) that at least one run scores in the first inning, and
// is always within [5,95].
type MatchupResult struct {
	Home            *PitcherAnalysis `json:"home"`
	Away            *PitcherAnalysis `json:"away"`
	YRFIProbability float64          `json:"yrfi_probability"`
}

// NRFIProbability returns the complementary no-run probability.
func (m *MatchupResult) NRFIProbability() float64 {
	return 100 - m.YRFIProbability
}
