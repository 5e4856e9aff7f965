// File: internal/errkind/retry.go
// Project: OS Final Project
// Description: Exponential-backoff retry for transient boundary failures
// Version: 1.0.0
// Author: Ori Yadahan
// Created: 2026-02-02

package errkind

import (
	"context"
	"time"

	"github.com/oriyadahan12/OS-FINAL-PROJECT/internal/logger"
)

var log = logger.WithComponent("Retry")

// RetryConfig configures exponential backoff retry behavior.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig returns sensible defaults for a transient listener bind
// failure (e.g. a just-freed port still in TIME_WAIT during a test restart).
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
	}
}

// Operation is a function that can be retried.
type Operation func() error

// IsRetryable determines if an error should be retried.
type IsRetryable func(error) bool

// Retry executes operation with exponential backoff until it succeeds, the
// context is cancelled, isRetryable rejects the error, or attempts run out.
func Retry(ctx context.Context, op Operation, cfg RetryConfig, isRetryable IsRetryable) error {
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := op()
		if err == nil {
			if attempt > 1 {
				log.Info("operation succeeded after %d attempts", attempt)
			}
			return nil
		}
		lastErr = err

		if isRetryable != nil && !isRetryable(err) {
			return err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		log.Warn("attempt %d/%d failed, retrying in %v: %v", attempt, cfg.MaxAttempts, delay, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return lastErr
}
