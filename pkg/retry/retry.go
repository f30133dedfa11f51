package retry

import (
	"context"
	"fmt"
	"time"
)

// Config holds retry configuration
type Config struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	MaxDelay        time.Duration
	BackoffFactor   float64
	MaxTotalTimeout time.Duration
}

// DefaultConfig returns a default retry configuration with 30 seconds max timeout
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     5,
		InitialDelay:    100 * time.Millisecond,
		MaxDelay:        5 * time.Second,
		BackoffFactor:   2.0,
		MaxTotalTimeout: 30 * time.Second,
	}
}

// Do executes the given function with exponential backoff retry logic.
// Only used for startup connectivity probes; user actions are never retried.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("retry aborted after %d attempts: %w (last error: %v)", attempt-1, ctx.Err(), lastErr)
			}
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == cfg.MaxAttempts {
			return fmt.Errorf("max retry attempts (%d) exceeded: %w", cfg.MaxAttempts, lastErr)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry aborted after %d attempts: %w (last error: %v)", attempt, ctx.Err(), lastErr)
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.BackoffFactor)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return fmt.Errorf("max retry attempts exceeded: %w", lastErr)
}
