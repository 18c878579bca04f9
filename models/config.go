package models

import (
	"os"
	"time"

	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Configuration
//
// All settings come from RECIPES_* environment variables so deployment
// configuration stays external to the binary. The API credentials are not
// validated: a missing or wrong key simply makes every search fail into the
// empty-result path.
// ============================================================================

const (
	// DefaultSearchURL is the recipe search endpoint
	DefaultSearchURL = "https://api.edamam.com/search"

	// DefaultAddress is the web listen address
	DefaultAddress = ":8000"

	// DefaultSessionTTL is how long an idle browser session keeps its search state
	DefaultSessionTTL = 2 * time.Hour

	// MinSessionSecretLength is the minimum length of the session signing key
	MinSessionSecretLength = 32

	devSessionSecret = "development-only-session-secret-do-not-use"
)

// Config holds runtime configuration for all front-ends
type Config struct {
	Credentials    Credentials   // RECIPES_EDAMAM_APP_ID / RECIPES_EDAMAM_APP_KEY
	SearchURL      string        // RECIPES_EDAMAM_URL
	Address        string        // RECIPES_ADDRESS
	SessionSecret  string        // RECIPES_SESSION_SECRET
	SessionTTL     time.Duration // RECIPES_SESSION_TTL
	SearchTimeout  time.Duration // RECIPES_SEARCH_TIMEOUT, zero means no timeout
	MetricsAddress string        // RECIPES_METRICS_ADDRESS, empty disables the listener
	LogLevel       string        // RECIPES_LOG_LEVEL
}

// LoadConfig reads configuration from environment variables, applying defaults
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Credentials: Credentials{
			AppID:  os.Getenv("RECIPES_EDAMAM_APP_ID"),
			AppKey: os.Getenv("RECIPES_EDAMAM_APP_KEY"),
		},
		SearchURL:      DefaultSearchURL,
		Address:        DefaultAddress,
		SessionSecret:  devSessionSecret,
		SessionTTL:     DefaultSessionTTL,
		MetricsAddress: os.Getenv("RECIPES_METRICS_ADDRESS"),
		LogLevel:       "info",
	}

	if v := os.Getenv("RECIPES_EDAMAM_URL"); v != "" {
		cfg.SearchURL = v
	}
	if v := os.Getenv("RECIPES_ADDRESS"); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv("RECIPES_SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("RECIPES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("RECIPES_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, serr.Wrap(err, "invalid RECIPES_SESSION_TTL value, expected duration like '2h'")
		}
		cfg.SessionTTL = ttl
	}

	if v := os.Getenv("RECIPES_SEARCH_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, serr.Wrap(err, "invalid RECIPES_SEARCH_TIMEOUT value, expected duration like '10s'")
		}
		cfg.SearchTimeout = timeout
	}

	return cfg, nil
}

// Validate checks the settings the server cannot run without.
// Credentials are not checked.
func (c *Config) Validate() error {
	if c.SearchURL == "" {
		return serr.New("RECIPES_EDAMAM_URL must not be empty")
	}
	if len(c.SessionSecret) < MinSessionSecretLength {
		return serr.New("RECIPES_SESSION_SECRET must be at least 32 characters")
	}
	if c.SessionTTL <= 0 {
		return serr.New("RECIPES_SESSION_TTL must be positive")
	}
	if c.SearchTimeout < 0 {
		return serr.New("RECIPES_SEARCH_TIMEOUT must not be negative")
	}
	return nil
}

// HasCredentials reports whether both API credentials are set
func (c *Config) HasCredentials() bool {
	return c.Credentials.AppID != "" && c.Credentials.AppKey != ""
}
