package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full settings tree for the library.
type Config struct {
	Fetch   FetchConfig
	Extract ExtractConfig
	Logging LogConfig
}

// FetchConfig tunes the outbound HTTP client.
type FetchConfig struct {
	Timeout          time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	RetryMax         int           `envconfig:"FETCH_RETRY_MAX" default:"3"`
	RetryWaitMin     time.Duration `envconfig:"FETCH_RETRY_WAIT_MIN" default:"1s"`
	RetryWaitMax     time.Duration `envconfig:"FETCH_RETRY_WAIT_MAX" default:"30s"`
	UserAgent        string        `envconfig:"FETCH_USER_AGENT" default:"vulpes/0.1"`
	RatePerSec       float64       `envconfig:"FETCH_RATE_PER_SEC" default:"0"`
	MaxBodySize      int64         `envconfig:"FETCH_MAX_BODY_SIZE" default:"10485760"`
	BreakerThreshold int           `envconfig:"FETCH_BREAKER_THRESHOLD" default:"5"`
	BreakerCooldown  time.Duration `envconfig:"FETCH_BREAKER_COOLDOWN" default:"30s"`
}

// ExtractConfig tunes the text extraction pipeline.
type ExtractConfig struct {
	// MaxInputSize caps document bytes accepted by the boundary.
	MaxInputSize int64 `envconfig:"EXTRACT_MAX_INPUT_SIZE" default:"10485760"`
}

// LogConfig controls the library logger. Logging is off unless asked for,
// since library consumers own their process's output.
type LogConfig struct {
	Enabled     bool   `envconfig:"LOG_ENABLED" default:"false"`
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
}

// Load reads the environment into a Config.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("vulpes", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadOrDefault loads from the environment, falling back to Default on error.
func LoadOrDefault() *Config {
	c, err := Load()
	if err != nil {
		return Default()
	}
	return c
}

// Default returns the built-in settings without consulting the environment.
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			Timeout:          30 * time.Second,
			RetryMax:         3,
			RetryWaitMin:     time.Second,
			RetryWaitMax:     30 * time.Second,
			UserAgent:        "vulpes/0.1",
			MaxBodySize:      10 << 20,
			BreakerThreshold: 5,
			BreakerCooldown:  30 * time.Second,
		},
		Extract: ExtractConfig{
			MaxInputSize: 10 << 20,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}
