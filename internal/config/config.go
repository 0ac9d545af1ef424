package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/securepass/securepass-go/internal/breach"
)

type Config struct {
	HIBPAPIKey     string
	PasswordAPIURL string
	BreachAPIURL   string
	UserAgent      string
	RequestTimeout time.Duration
	MinInterval    time.Duration
}

func Load() Config {
	return Config{
		HIBPAPIKey:     getEnv("HIBP_API_KEY", ""),
		PasswordAPIURL: getEnv("SECUREPASS_PASSWORD_API_URL", breach.DefaultPasswordAPIURL),
		BreachAPIURL:   getEnv("SECUREPASS_BREACH_API_URL", breach.DefaultBreachAPIURL),
		UserAgent:      getEnv("SECUREPASS_USER_AGENT", breach.DefaultUserAgent),
		RequestTimeout: getDuration("SECUREPASS_REQUEST_TIMEOUT", breach.DefaultTimeout),
		MinInterval:    getDuration("SECUREPASS_MIN_INTERVAL", breach.DefaultMinInterval),
	}
}

// BreachOptions maps the config onto breach client options.
func (c Config) BreachOptions() breach.Options {
	return breach.Options{
		PasswordAPIURL: c.PasswordAPIURL,
		BreachAPIURL:   c.BreachAPIURL,
		UserAgent:      c.UserAgent,
		Timeout:        c.RequestTimeout,
		MinInterval:    c.MinInterval,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
