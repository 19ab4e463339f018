// Package config provides configuration management for the yrfi-edge analyzer.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Savant  SavantConfig  `mapstructure:"savant" validate:"required"`
	Betting BettingConfig `mapstructure:"betting" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// SavantConfig represents the Baseball Savant scraper configuration
type SavantConfig struct {
	BaseURL             string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds      int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries          int    `mapstructure:"max_retries" validate:"gte=0"`
	RequestDelayMillis  int    `mapstructure:"request_delay_millis" validate:"gte=0"`
	CacheTTLSeconds     int    `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
	MaxConcurrentFetch  int    `mapstructure:"max_concurrent_fetch" validate:"required,gt=0"`
	CircuitBreakerLimit int    `mapstructure:"circuit_breaker_limit" validate:"required,gt=0"`
	UserAgent           string `mapstructure:"user_agent" validate:"required"`
}

// BettingConfig represents Kelly sizing configuration
type BettingConfig struct {
	// KellyMultiplier scales the raw Kelly fraction; 1.0 is full Kelly,
	// smaller values stake more conservatively.
	KellyMultiplier float64 `mapstructure:"kelly_multiplier" validate:"required,gt=0,lte=1"`
	MinStake        float64 `mapstructure:"min_stake" validate:"gte=0"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
