package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yourusername/yrfi-edge/internal/models"
	"github.com/yourusername/yrfi-edge/internal/service"
)

// printGame prints the per-pitcher summaries and, when available, the
// combined matchup probabilities.
func printGame(out io.Writer, game *service.Game) {
	fmt.Fprintln(out, "\n===== PLAYER STATISTICS SUMMARY =====")
	for i, analysis := range []*models.PitcherAnalysis{game.Home, game.Away} {
		if analysis == nil {
			continue
		}
		printPitcherSummary(out, i+1, analysis)
	}
	fmt.Fprintln(out, strings.Repeat("-", 40))

	if game.Result != nil {
		fmt.Fprintln(out, "\n===== MATCHUP SUMMARY =====")
		fmt.Fprintf(out, "Probability of a Run in the 1st Inning (YRFI): %.1f%%\n", game.Result.YRFIProbability)
		fmt.Fprintf(out, "Probability of No Run in the 1st Inning (NRFI): %.1f%%\n", game.Result.NRFIProbability())
	}
}

// printPitcherSummary prints one pitcher's stats with signed deltas against
// the MLB average where both operands parsed, falling back to the raw cells.
func printPitcherSummary(out io.Writer, index int, analysis *models.PitcherAnalysis) {
	fmt.Fprintf(out, "\nPITCHER %d: %s (%d)\n", index, analysis.PlayerName, analysis.Year)
	fmt.Fprintln(out, strings.Repeat("-", 40))

	printRateLine(out, "Strikeout Rate (K%)", analysis.Season.KPercent, analysis.Season.MLBKPercent,
		analysis.Normalized.KPercent, analysis.Normalized.MLBKPercent)
	printRateLine(out, "Walk Rate (BB%)", analysis.Season.BBPercent, analysis.Season.MLBBBPercent,
		analysis.Normalized.BBPercent, analysis.Normalized.MLBBBPercent)

	fmt.Fprintf(out, "1st Inning ERA: %s\n", analysis.Splits.FirstInningERA)
	fmt.Fprintf(out, "1st Inning WHIP: %s\n", analysis.Splits.FirstInningWHIP)
	fmt.Fprintf(out, "Individual First Inning Run Likelihood: %.1f%%\n", analysis.Scores.RunPercentage)
}

func printRateLine(out io.Writer, label, raw, rawMLB string, value, baseline *float64) {
	if value != nil && baseline != nil {
		diff := *value - *baseline
		comparison := "above"
		if diff < 0 {
			comparison = "below"
		}
		fmt.Fprintf(out, "%s: %s (%.1f%% %s MLB avg)\n", label, raw, absFloat(diff), comparison)
		return
	}
	fmt.Fprintf(out, "%s: %s (MLB avg: %s)\n", label, raw, rawMLB)
}

// printRecommendation prints a sized bet.
func printRecommendation(out io.Writer, rec *models.BetRecommendation) {
	fmt.Fprintf(out, "\n--- %s Bet Recommendation ---\n", rec.Side)
	fmt.Fprintf(out, "Implied Probability of %s: %.2f%%\n", rec.Side, rec.ImpliedProbability*100)
	fmt.Fprintf(out, "Model's Probability of %s: %.2f%%\n", rec.Side, rec.ModelProbability*100)
	fmt.Fprintf(out, "Kelly Fraction for %s: %.2f%%\n", rec.Side, rec.KellyFraction*100)
	fmt.Fprintf(out, "Recommended Bet Amount for %s: $%s\n", rec.Side, rec.BetAmount.StringFixed(2))
}

// promptFloat reads one line and parses it as a float. An unparseable line is
// an error the caller treats as "skip this sizing step".
func promptFloat(reader *bufio.Reader, out io.Writer, prompt string) (float64, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(line), 64)
}

// promptYes reads one line and reports whether the user answered yes.
func promptYes(reader *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
