package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/yrfi-edge/internal/kelly"
)

var interactive bool

func init() {
	slateCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for Kelly sizing after each resolved game")
}

var slateCmd = &cobra.Command{
	Use:   "slate <url,url,...>",
	Short: "Analyze multiple games in one run",
	Long: `Analyzes a flat, even-length list of pitcher URLs paired sequentially
into games (two per game). URLs may be given as one comma-separated argument
or as separate arguments.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := splitURLs(args)
		if len(urls)%2 != 0 {
			return fmt.Errorf("an even number of URLs is required (two per game), got %d", len(urls))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
		defer cancel()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Found %d game(s) to analyze for %d.\n", len(urls)/2, season)

		games, err := analyzer.AnalyzeSlate(ctx, urls, season)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		for _, game := range games {
			fmt.Fprintf(out, "\n========== GAME %d OF %d ==========\n", game.Number, len(games))
			printGame(out, game)

			if game.Result == nil {
				fmt.Fprintf(out, "\nSkipping matchup summary for game %d: data for both pitchers is not available.\n", game.Number)
				continue
			}

			if interactive && promptYes(reader, out, fmt.Sprintf("\nCalculate Kelly bet for game %d? (y/n): ", game.Number)) {
				sizeGameInteractively(reader, out, game.Result.YRFIProbability)
			}
		}
		return nil
	},
}

// sizeGameInteractively prompts for odds and bankroll and prints the sizing
// result for one game. Bad input skips only this game's sizing.
func sizeGameInteractively(reader *bufio.Reader, out io.Writer, yrfiProb float64) {
	odds, err := promptFloat(reader, out, "Enter American odds for YRFI (e.g., -150 or 120): ")
	if err != nil {
		fmt.Fprintln(out, "Invalid YRFI odds input. Skipping Kelly bet.")
		return
	}
	roll, err := promptFloat(reader, out, "Enter your bankroll: ")
	if err != nil {
		fmt.Fprintln(out, "Invalid bankroll input. Skipping Kelly bet.")
		return
	}

	rec, err := sizer.Size(yrfiProb, odds, nil, roll)
	if err != nil && errors.Is(err, kelly.ErrNoPositiveEdge) {
		if promptYes(reader, out, "YRFI bet has no positive edge. Evaluate NRFI odds? (y/n): ") {
			v, perr := promptFloat(reader, out, "Enter American odds for NRFI: ")
			if perr != nil {
				fmt.Fprintln(out, "Invalid NRFI odds input. Skipping NRFI bet.")
				return
			}
			rec, err = sizer.Size(yrfiProb, odds, &v, roll)
		}
	}
	if err != nil {
		if errors.Is(err, kelly.ErrNoPositiveEdge) {
			fmt.Fprintln(out, "No positive edge on either side. No bet recommended.")
		} else {
			fmt.Fprintf(out, "Cannot size bet: %v\n", err)
		}
		return
	}

	printRecommendation(out, rec)
}

// splitURLs accepts both comma-separated and space-separated url lists.
func splitURLs(args []string) []string {
	var urls []string
	for _, arg := range args {
		for _, url := range strings.Split(arg, ",") {
			if trimmed := strings.TrimSpace(url); trimmed != "" {
				urls = append(urls, trimmed)
			}
		}
	}
	return urls
}
