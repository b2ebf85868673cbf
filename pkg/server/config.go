package server

import (
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Config configures the HTTP server. Rate limits apply to API routes only;
// /health, /ready and /metrics are never limited.
type Config struct {
	Address string
	Port    int

	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	// MaxBodyBytes caps request bodies; larger problems get 413.
	MaxBodyBytes int64

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	LogLevel string
}

// DefaultConfig returns the defaults, overridden by PORT and LOG_LEVEL when set.
func DefaultConfig() *Config {
	cfg := &Config{
		Port:            8080,
		RateLimit:       100,
		RateLimitBurst:  200,
		MaxBodyBytes:    8 << 20,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		LogLevel:        slog.LevelInfo.String(),
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		} else {
			slog.Warn("ignoring invalid PORT", "value", v)
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}
