package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/yrfi-edge/internal/service"
)

var outputPath string

func init() {
	reportCmd.Flags().StringVarP(&outputPath, "out", "o", "-", "Output file for the CSV report (- for stdout)")
}

var reportCmd = &cobra.Command{
	Use:   "report <url,url,...>",
	Short: "Produce a tabular report for a list of pitchers",
	Long: `Analyzes an ordered list of pitcher URLs for one season and writes a
CSV report, one row per pitcher. Pitchers the source cannot resolve are
skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := splitURLs(args)

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
		defer cancel()

		analyses, err := analyzer.AnalyzeBatch(ctx, urls, season)
		if err != nil {
			return err
		}
		if len(analyses) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No results.")
			return nil
		}

		out := cmd.OutOrStdout()
		if outputPath != "-" {
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create report file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err := service.WriteCSV(out, analyses); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Succeeded with %d of %d result(s).\n", len(analyses), len(urls))
		if summary := service.Summarize(analyses); summary != nil {
			fmt.Fprintf(cmd.ErrOrStderr(),
				"Run likelihood across slate: mean %.1f%%, median %.1f%%, range %.1f%%-%.1f%%\n",
				summary.Mean, summary.Median, summary.Min, summary.Max)
		}
		return nil
	},
}
