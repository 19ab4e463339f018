package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/yrfi-edge/internal/kelly"
	"github.com/yourusername/yrfi-edge/internal/service"
)

var (
	yrfiOdds float64
	nrfiOdds float64
	bankroll float64
)

func init() {
	matchupCmd.Flags().Float64Var(&yrfiOdds, "yrfi-odds", 0, "American odds for YRFI (prompted when omitted)")
	matchupCmd.Flags().Float64Var(&nrfiOdds, "nrfi-odds", 0, "American odds for NRFI fallback (prompted when omitted)")
	matchupCmd.Flags().Float64Var(&bankroll, "bankroll", 0, "Bankroll for Kelly sizing (prompted when omitted)")
}

var matchupCmd = &cobra.Command{
	Use:   "matchup <home-pitcher-url> <away-pitcher-url>",
	Short: "Analyze a single game's starting pitchers",
	Long: `Analyzes both starting pitchers for one game, prints each pitcher's
stats against the MLB average, the combined YRFI/NRFI probabilities, and a
Kelly bet recommendation for user-supplied odds.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		game, err := analyzer.AnalyzeMatchup(ctx, args[0], args[1], season)
		if err != nil {
			return err
		}

		printGame(cmd.OutOrStdout(), game)

		if game.Result == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "\nData for only one pitcher available; cannot calculate combined YRFI probability or Kelly bet.")
			return nil
		}

		runKelly(cmd, game)
		return nil
	},
}

// runKelly sizes the bet for a resolved matchup. Malformed odds or bankroll
// input abort only this step, never the analysis output already printed.
func runKelly(cmd *cobra.Command, game *service.Game) {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(os.Stdin)

	odds := yrfiOdds
	if !cmd.Flags().Changed("yrfi-odds") {
		v, err := promptFloat(reader, out, "Enter American odds for YRFI (e.g., -150 or 120): ")
		if err != nil {
			fmt.Fprintln(out, "Invalid YRFI odds input. Skipping Kelly bet.")
			return
		}
		odds = v
	}

	roll := bankroll
	if !cmd.Flags().Changed("bankroll") {
		v, err := promptFloat(reader, out, "Enter your bankroll: ")
		if err != nil {
			fmt.Fprintln(out, "Invalid bankroll input. Skipping Kelly bet.")
			return
		}
		roll = v
	}

	var fallback *float64
	if cmd.Flags().Changed("nrfi-odds") {
		fallback = &nrfiOdds
	}

	rec, err := sizer.Size(game.Result.YRFIProbability, odds, fallback, roll)
	if err != nil {
		if errors.Is(err, kelly.ErrNoPositiveEdge) {
			// Offer the complementary side interactively when no NRFI
			// odds were given up front
			if fallback == nil && promptYes(reader, out, "YRFI bet has no positive edge. Evaluate NRFI odds? (y/n): ") {
				v, perr := promptFloat(reader, out, "Enter American odds for NRFI: ")
				if perr != nil {
					fmt.Fprintln(out, "Invalid NRFI odds input. Skipping NRFI bet.")
					return
				}
				rec, err = sizer.Size(game.Result.YRFIProbability, odds, &v, roll)
			}
			if err != nil {
				if errors.Is(err, kelly.ErrInvalidOdds) {
					fmt.Fprintf(out, "\nCannot size bet: %v\n", err)
				} else {
					fmt.Fprintln(out, "\nNo positive edge on either side. No bet recommended.")
				}
				return
			}
		} else {
			fmt.Fprintf(out, "\nCannot size bet: %v\n", err)
			return
		}
	}

	printRecommendation(out, rec)
}
