package service

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/yrfi-edge/internal/datasource"
	"github.com/yourusername/yrfi-edge/internal/models"
)

// stubSource serves canned stats per player URL; unknown URLs are unavailable.
type stubSource struct {
	stats map[string]*datasource.PitcherStats
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) PitcherStats(ctx context.Context, playerURL string, season int) (*datasource.PitcherStats, error) {
	if stats, ok := s.stats[playerURL]; ok {
		return stats, nil
	}
	return nil, datasource.NewStatSourceError("stub", datasource.ErrCodeNotFound, "unknown pitcher", nil)
}

func strongPitcher(name string) *datasource.PitcherStats {
	return &datasource.PitcherStats{
		PlayerID:   name,
		PlayerName: name,
		Season: models.RawSeasonStats{
			Year:         "2024",
			KPercent:     "25.0%",
			BBPercent:    "6.0%",
			MLBKPercent:  "22.0%",
			MLBBBPercent: "8.0%",
		},
		Splits: models.RawSplitStats{
			FirstInningERA:  "2.8",
			FirstInningWHIP: "0.95",
		},
	}
}

func weakPitcher(name string) *datasource.PitcherStats {
	return &datasource.PitcherStats{
		PlayerID:   name,
		PlayerName: name,
		Season: models.RawSeasonStats{
			Year:         "2024",
			KPercent:     "18.0%",
			BBPercent:    "9.5%",
			MLBKPercent:  "22.0%",
			MLBBBPercent: "8.0%",
		},
		Splits: models.RawSplitStats{
			FirstInningERA:  "5.10",
			FirstInningWHIP: "1.40",
		},
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestAnalyzePitcherPipeline(t *testing.T) {
	source := &stubSource{stats: map[string]*datasource.PitcherStats{
		"url-a": strongPitcher("Strong Starter"),
	}}
	analyzer := NewAnalyzer(source, 1, quietLogger())

	analysis, err := analyzer.AnalyzePitcher(context.Background(), "url-a", 2024)
	require.NoError(t, err)

	assert.Equal(t, "Strong Starter", analysis.PlayerName)
	assert.Equal(t, 2024, analysis.Year)
	assert.Equal(t, 7, analysis.Scores.TotalScore)
	assert.Equal(t, 15.0, analysis.Scores.RunPercentage)
	assert.NotEqual(t, analysis.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestAnalyzePitcherUnavailable(t *testing.T) {
	analyzer := NewAnalyzer(&stubSource{}, 1, quietLogger())

	_, err := analyzer.AnalyzePitcher(context.Background(), "url-a", 2024)
	assert.ErrorIs(t, err, datasource.ErrUnavailable)
}

func TestAnalyzeMatchupBothResolved(t *testing.T) {
	source := &stubSource{stats: map[string]*datasource.PitcherStats{
		"url-a": strongPitcher("Strong Starter"),
		"url-b": weakPitcher("Weak Starter"),
	}}
	analyzer := NewAnalyzer(source, 2, quietLogger())

	game, err := analyzer.AnalyzeMatchup(context.Background(), "url-a", "url-b", 2024)
	require.NoError(t, err)
	require.True(t, game.Resolved())
	require.NotNil(t, game.Result)

	// weak pitcher: K -1 (diff -4), BB -1 (diff +1.5), WHIP -2, ERA -2 => -6
	assert.Equal(t, -6, game.Away.Scores.TotalScore)
	// combined 7 + (-6) = 1 => 40 - 2.5
	assert.Equal(t, 37.5, game.Result.YRFIProbability)
	assert.Equal(t, 62.5, game.Result.NRFIProbability())
}

func TestAnalyzeMatchupPartialResolution(t *testing.T) {
	source := &stubSource{stats: map[string]*datasource.PitcherStats{
		"url-a": strongPitcher("Strong Starter"),
	}}
	analyzer := NewAnalyzer(source, 2, quietLogger())

	game, err := analyzer.AnalyzeMatchup(context.Background(), "url-a", "url-missing", 2024)
	require.NoError(t, err)

	assert.NotNil(t, game.Home)
	assert.Nil(t, game.Away)
	assert.False(t, game.Resolved())
	assert.Nil(t, game.Result, "unresolved matchup must not carry a probability")
}

func TestAnalyzeSlateRequiresEvenURLCount(t *testing.T) {
	analyzer := NewAnalyzer(&stubSource{}, 1, quietLogger())

	_, err := analyzer.AnalyzeSlate(context.Background(), []string{"a", "b", "c"}, 2024)
	assert.Error(t, err)

	_, err = analyzer.AnalyzeSlate(context.Background(), nil, 2024)
	assert.Error(t, err)
}

func TestAnalyzeSlatePairsSequentially(t *testing.T) {
	source := &stubSource{stats: map[string]*datasource.PitcherStats{
		"g1-home": strongPitcher("One"),
		"g1-away": strongPitcher("Two"),
		"g2-home": weakPitcher("Three"),
		"g2-away": weakPitcher("Four"),
	}}
	analyzer := NewAnalyzer(source, 2, quietLogger())

	games, err := analyzer.AnalyzeSlate(context.Background(),
		[]string{"g1-home", "g1-away", "g2-home", "g2-away"}, 2024)
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, 1, games[0].Number)
	assert.Equal(t, "One", games[0].Home.PlayerName)
	assert.Equal(t, "Two", games[0].Away.PlayerName)
	require.NotNil(t, games[0].Result)
	// combined +14 => 40 - 35 = 5 (clamped floor)
	assert.Equal(t, 5.0, games[0].Result.YRFIProbability)

	assert.Equal(t, 2, games[1].Number)
	require.NotNil(t, games[1].Result)
	// combined -12 => 40 + 30
	assert.Equal(t, 70.0, games[1].Result.YRFIProbability)
}

func TestAnalyzeBatchSkipsUnresolvedAndKeepsOrder(t *testing.T) {
	source := &stubSource{stats: map[string]*datasource.PitcherStats{
		"url-a": strongPitcher("First"),
		"url-c": weakPitcher("Last"),
	}}
	analyzer := NewAnalyzer(source, 3, quietLogger())

	analyses, err := analyzer.AnalyzeBatch(context.Background(),
		[]string{"url-a", "url-missing", "url-c"}, 2024)
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	assert.Equal(t, "First", analyses[0].PlayerName)
	assert.Equal(t, "Last", analyses[1].PlayerName)
}
