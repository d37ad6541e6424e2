// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env on top.
// - External errors are wrapped via this package's sentinel errors.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// BGGBaseURL is the base URL of the game database XML API.
	BGGBaseURL string `koanf:"bgg_base_url"`

	// BGGTimeoutMS bounds a single upstream HTTP call.
	BGGTimeoutMS int `koanf:"bgg_timeout_ms"`

	// BGGRatePerSec throttles upstream calls (token bucket refill rate).
	BGGRatePerSec float64 `koanf:"bgg_rate_per_sec"`

	// CandidateCap bounds how many search results are considered.
	CandidateCap int `koanf:"candidate_cap"`

	// TopN is the number of recommendations returned.
	TopN int `koanf:"top_n"`

	// DetailRetryDelayMS is the wait before re-polling a 202 "still processing" detail response.
	DetailRetryDelayMS int `koanf:"detail_retry_delay_ms"`

	// DetailMaxAttempts caps detail fetch attempts (initial call included).
	DetailMaxAttempts int `koanf:"detail_max_attempts"`

	// FetchConcurrency bounds parallel detail fetches; 1 means strictly sequential.
	FetchConcurrency int `koanf:"fetch_concurrency"`

	// Scoring weights.
	BaseScore          float64 `koanf:"base_score"`
	RatingCountDivisor float64 `koanf:"rating_count_divisor"`
	PopularityCap      float64 `koanf:"popularity_cap"`
	MechanicBonus      float64 `koanf:"mechanic_bonus"`
	CategoryBonus      float64 `koanf:"category_bonus"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8080",
		BGGBaseURL:         "https://boardgamegeek.com/xmlapi2",
		BGGTimeoutMS:       15_000,
		BGGRatePerSec:      2,
		CandidateCap:       30,
		TopN:               3,
		DetailRetryDelayMS: 2_000,
		DetailMaxAttempts:  3,
		FetchConcurrency:   4,
		BaseScore:          10.0,
		RatingCountDivisor: 1000,
		PopularityCap:      5.0,
		MechanicBonus:      2.0,
		CategoryBonus:      1.5,
	}
}
