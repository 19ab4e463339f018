// Package service orchestrates the per-pitcher pipeline (fetch, normalize,
// score) and assembles matchup and batch results.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/yrfi-edge/internal/datasource"
	"github.com/yourusername/yrfi-edge/internal/models"
	"github.com/yourusername/yrfi-edge/internal/scoring"
)

// Game pairs two pitcher analyses for one matchup. Either side may be nil
// when the source could not resolve that pitcher; Result is set only when
// both sides resolved.
type Game struct {
	Number int
	Home   *models.PitcherAnalysis
	Away   *models.PitcherAnalysis
	Result *models.MatchupResult
}

// Resolved reports whether both pitchers were analyzed.
func (g *Game) Resolved() bool {
	return g.Home != nil && g.Away != nil
}

// Analyzer runs the scoring pipeline against a stat source.
type Analyzer struct {
	source        datasource.StatSource
	maxConcurrent int
	logger        *logrus.Logger
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(source datasource.StatSource, maxConcurrent int, logger *logrus.Logger) *Analyzer {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Analyzer{
		source:        source,
		maxConcurrent: maxConcurrent,
		logger:        logger,
	}
}

// AnalyzePitcher runs one pitcher through fetch, normalize and score.
func (a *Analyzer) AnalyzePitcher(ctx context.Context, playerURL string, season int) (*models.PitcherAnalysis, error) {
	stats, err := a.source.PitcherStats(ctx, playerURL, season)
	if err != nil {
		a.logger.WithError(err).WithFields(logrus.Fields{
			"player_url": playerURL,
			"season":     season,
		}).Warn("Pitcher stats unavailable")
		return nil, err
	}

	normalized := scoring.Normalize(stats.Season, stats.Splits)
	scores := scoring.Score(normalized)

	analysis := &models.PitcherAnalysis{
		ID:         uuid.New(),
		PlayerName: stats.PlayerName,
		Year:       season,
		Season:     stats.Season,
		Splits:     stats.Splits,
		Normalized: normalized,
		Scores:     scores,
		AnalyzedAt: time.Now(),
	}

	a.logger.WithFields(logrus.Fields{
		"player":         analysis.PlayerName,
		"season":         season,
		"total_score":    scores.TotalScore,
		"run_percentage": scores.RunPercentage,
	}).Info("Pitcher analyzed")

	return analysis, nil
}

// AnalyzeMatchup analyzes two pitchers and, when both resolve, combines them
// into a YRFI probability. An unresolved pitcher leaves its side nil; the
// matchup result is then absent rather than the call failing.
func (a *Analyzer) AnalyzeMatchup(ctx context.Context, homeURL, awayURL string, season int) (*Game, error) {
	game := &Game{Number: 1}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrent)

	g.Go(func() error {
		if analysis, err := a.AnalyzePitcher(gctx, homeURL, season); err == nil {
			game.Home = analysis
		}
		return nil
	})
	g.Go(func() error {
		if analysis, err := a.AnalyzePitcher(gctx, awayURL, season); err == nil {
			game.Away = analysis
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if prob, err := scoring.Combine(game.Home, game.Away); err == nil {
		game.Result = &models.MatchupResult{
			Home:            game.Home,
			Away:            game.Away,
			YRFIProbability: prob,
		}
	} else {
		a.logger.WithError(err).Warn("Skipping matchup probability")
	}

	return game, nil
}

// AnalyzeSlate pairs a flat url list sequentially into games and analyzes
// each. The list length must be even.
func (a *Analyzer) AnalyzeSlate(ctx context.Context, playerURLs []string, season int) ([]*Game, error) {
	if len(playerURLs) == 0 {
		return nil, fmt.Errorf("no player URLs provided")
	}
	if len(playerURLs)%2 != 0 {
		return nil, fmt.Errorf("an even number of URLs is required (two per game), got %d", len(playerURLs))
	}

	games := make([]*Game, 0, len(playerURLs)/2)
	for i := 0; i < len(playerURLs); i += 2 {
		game, err := a.AnalyzeMatchup(ctx, playerURLs[i], playerURLs[i+1], season)
		if err != nil {
			return nil, err
		}
		game.Number = i/2 + 1
		games = append(games, game)
	}
	return games, nil
}

// AnalyzeBatch analyzes an ordered url list individually, skipping entries
// the source cannot resolve. Used by the batch report interface.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, playerURLs []string, season int) ([]*models.PitcherAnalysis, error) {
	if len(playerURLs) == 0 {
		return nil, fmt.Errorf("no player URLs provided")
	}

	results := make([]*models.PitcherAnalysis, len(playerURLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrent)
	for i, url := range playerURLs {
		i, url := i, url
		g.Go(func() error {
			if analysis, err := a.AnalyzePitcher(gctx, url, season); err == nil {
				results[i] = analysis
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drop unresolved entries, preserving input order
	analyses := make([]*models.PitcherAnalysis, 0, len(results))
	for _, analysis := range results {
		if analysis != nil {
			analyses = append(analyses, analysis)
		}
	}

	a.logger.WithFields(logrus.Fields{
		"requested": len(playerURLs),
		"resolved":  len(analyses),
	}).Info("Batch analysis complete")

	return analyses, nil
}
