package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/montanaflynn/stats"

	"github.com/yourusername/yrfi-edge/internal/models"
)

// csvHeader is the column layout of the batch report, one row per pitcher.
var csvHeader = []string{
	"player_name",
	"year",
	"k_percent",
	"bb_percent",
	"first_inning_era",
	"first_inning_whip",
}

// WriteCSV writes the batch report for the given analyses. Raw cell values
// are written as-is so "N/A" markers survive into the file.
func WriteCSV(w io.Writer, analyses []*models.PitcherAnalysis) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, analysis := range analyses {
		row := []string{
			analysis.PlayerName,
			fmt.Sprintf("%d", analysis.Year),
			analysis.Season.KPercent,
			analysis.Season.BBPercent,
			analysis.Splits.FirstInningERA,
			analysis.Splits.FirstInningWHIP,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write report row for %s: %w", analysis.PlayerName, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SlateSummary aggregates the individual run likelihoods across a batch.
type SlateSummary struct {
	Pitchers int     `json:"pitchers"`
	Mean     float64 `json:"mean_run_percentage"`
	Median   float64 `json:"median_run_percentage"`
	Min      float64 `json:"min_run_percentage"`
	Max      float64 `json:"max_run_percentage"`
}

// Summarize computes aggregate run-likelihood stats over the analyses.
// Returns nil when there is nothing to aggregate.
func Summarize(analyses []*models.PitcherAnalysis) *SlateSummary {
	if len(analyses) == 0 {
		return nil
	}

	values := make(stats.Float64Data, 0, len(analyses))
	for _, analysis := range analyses {
		values = append(values, analysis.Scores.RunPercentage)
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	return &SlateSummary{
		Pitchers: len(analyses),
		Mean:     mean,
		Median:   median,
		Min:      min,
		Max:      max,
	}
}
