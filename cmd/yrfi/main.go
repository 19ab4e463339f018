// Package main provides the yrfi command, a first-inning run likelihood
// analyzer for pitcher matchups.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/yrfi-edge/internal/config"
	"github.com/yourusername/yrfi-edge/internal/datasource"
	"github.com/yourusername/yrfi-edge/internal/kelly"
	"github.com/yourusername/yrfi-edge/internal/logger"
	"github.com/yourusername/yrfi-edge/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	season     int

	appLogger  *logrus.Logger
	cfg        *config.Config
	httpClient *datasource.ScraperHTTPClient
	analyzer   *service.Analyzer
	sizer      *kelly.Sizer
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().IntVarP(&season, "season", "s", time.Now().Year(), "Season year to analyze")

	rootCmd.AddCommand(matchupCmd)
	rootCmd.AddCommand(slateCmd)
	rootCmd.AddCommand(reportCmd)
}

var rootCmd = &cobra.Command{
	Use:   "yrfi",
	Short: "First-inning run likelihood analyzer",
	Long: `Fetches pitcher stats from Baseball Savant, scores each pitcher's
first-inning run likelihood, combines matchups into YRFI/NRFI probabilities,
and sizes bets with the Kelly criterion.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if httpClient != nil {
			_ = httpClient.Close()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies() error {
	appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	httpClient = datasource.NewScraperHTTPClient(datasource.HTTPClientConfig{
		Timeout:           time.Duration(cfg.Savant.TimeoutSeconds) * time.Second,
		MaxRetries:        cfg.Savant.MaxRetries,
		RetryWaitMin:      200 * time.Millisecond,
		RetryWaitMax:      5 * time.Second,
		RequestDelay:      time.Duration(cfg.Savant.RequestDelayMillis) * time.Millisecond,
		CircuitBreakerMax: cfg.Savant.CircuitBreakerLimit,
		UserAgent:         cfg.Savant.UserAgent,
	}, appLogger)

	var source datasource.StatSource = datasource.NewSavantClient(httpClient, cfg.Savant.BaseURL, appLogger)
	if cfg.Savant.CacheTTLSeconds > 0 {
		source = datasource.NewCachingStatSource(source,
			time.Duration(cfg.Savant.CacheTTLSeconds)*time.Second, appLogger)
	}

	analyzer = service.NewAnalyzer(source, cfg.Savant.MaxConcurrentFetch, appLogger)
	sizer = kelly.NewSizer(kelly.Config{
		Multiplier: cfg.Betting.KellyMultiplier,
		MinStake:   cfg.Betting.MinStake,
	}, appLogger)

	return nil
}
