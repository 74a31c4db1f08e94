package httpclient

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig tunes the circuit breaker that guards logical requests.
type BreakerConfig struct {
	Name string

	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32

	// Interval clears the closed-state counts; zero never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the breaker once
	// MinRequests requests have been counted.
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultBreakerConfig returns settings suited to the meetings API.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "meetings-api",
		MaxRequests:      1,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

func newBreaker(cfg BreakerConfig, c *Client) *gobreaker.CircuitBreaker {
	if cfg.Name == "" {
		cfg.Name = DefaultBreakerConfig().Name
	}
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureThreshold
		},
		// Only backend unavailability counts against the breaker.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var parseErr *JSONParseError
			if errors.As(err, &parseErr) || errors.Is(err, context.Canceled) {
				return true
			}
			var statusErr *HTTPStatusError
			if errors.As(err, &statusErr) && statusErr.Status < 500 {
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}
	return gobreaker.NewCircuitBreaker(settings)
}
