package datasource

import (
	"context"
	"errors"

	"github.com/yourusername/yrfi-edge/internal/models"
)

// StatSource defines the interface for fetching pitching stats from an
// external provider.
type StatSource interface {
	// PitcherStats retrieves the season rate stats and first-inning splits
	// for one pitcher in one season. Both records come from a single
	// provider session. Any upstream failure surfaces as ErrUnavailable,
	// never as partial data.
	PitcherStats(ctx context.Context, playerURL string, season int) (*PitcherStats, error)

	// Name returns the name of the stat source
	Name() string
}

// PitcherStats bundles the two raw records a source produces for one
// (player, season) pair.
type PitcherStats struct {
	PlayerID   string                `json:"player_id"`
	PlayerName string                `json:"player_name"`
	Season     models.RawSeasonStats `json:"season_stats"`
	Splits     models.RawSplitStats  `json:"inning_splits"`
}

// StatSourceError represents errors from stat source operations
type StatSourceError struct {
	Source  string // Stat source name
	Code    string // Error code (e.g., "not_found")
	Message string // Error message
	Err     error  // Underlying error
}

func (e StatSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

// Unwrap lets errors.Is see through to ErrUnavailable.
func (e StatSourceError) Unwrap() error {
	return ErrUnavailable
}

// Common error codes
const (
	ErrCodeNetworkError = "network_error"
	ErrCodeNotFound     = "not_found"
	ErrCodeInvalidData  = "invalid_data"
	ErrCodeServerError  = "server_error"
	ErrCodeInvalidURL   = "invalid_url"
)

// ErrUnavailable is the umbrella error every stat source failure maps to.
// Callers treat the pitcher as absent rather than aborting the run.
var ErrUnavailable = errors.New("stats unavailable")

// NewStatSourceError creates a new stat source error
func NewStatSourceError(source, code, message string, err error) StatSourceError {
	return StatSourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
