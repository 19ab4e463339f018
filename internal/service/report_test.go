package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/yrfi-edge/internal/models"
)

func reportAnalysis(name string, runPct float64) *models.PitcherAnalysis {
	return &models.PitcherAnalysis{
		PlayerName: name,
		Year:       2024,
		Season: models.RawSeasonStats{
			KPercent:  "25.0%",
			BBPercent: "6.0%",
		},
		Splits: models.RawSplitStats{
			FirstInningERA:  "2.80",
			FirstInningWHIP: "0.95",
		},
		Scores: models.ScoreSet{RunPercentage: runPct},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	analyses := []*models.PitcherAnalysis{
		reportAnalysis("Jacob Degrom", 15),
		reportAnalysis("Gerrit Cole", 25),
	}

	require.NoError(t, WriteCSV(&buf, analyses))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"player_name", "year", "k_percent", "bb_percent", "first_inning_era", "first_inning_whip"}, records[0])
	assert.Equal(t, []string{"Jacob Degrom", "2024", "25.0%", "6.0%", "2.80", "0.95"}, records[1])
	assert.Equal(t, "Gerrit Cole", records[2][0])
}

func TestWriteCSVPreservesNotAvailableMarkers(t *testing.T) {
	var buf bytes.Buffer
	analysis := reportAnalysis("Some Guy", 50)
	analysis.Season.KPercent = models.NotAvailable
	analysis.Splits.FirstInningERA = models.NotAvailable

	require.NoError(t, WriteCSV(&buf, []*models.PitcherAnalysis{analysis}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "N/A", records[1][2])
	assert.Equal(t, "N/A", records[1][4])
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]*models.PitcherAnalysis{
		reportAnalysis("A", 15),
		reportAnalysis("B", 45),
		reportAnalysis("C", 90),
	})

	require.NotNil(t, summary)
	assert.Equal(t, 3, summary.Pitchers)
	assert.InDelta(t, 50.0, summary.Mean, 0.0001)
	assert.Equal(t, 45.0, summary.Median)
	assert.Equal(t, 15.0, summary.Min)
	assert.Equal(t, 90.0, summary.Max)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Nil(t, Summarize(nil))
}
