package middleware

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/debsouryadatta/langgraph-agents/core/client"
	"github.com/debsouryadatta/langgraph-agents/internal/utils"
	"github.com/debsouryadatta/langgraph-agents/providers/ai"
)

// RetryConfig tunes the retry middleware. Zero values are replaced with the
// defaults noted on each field.
type RetryConfig struct {
	// MaxRetries is the number of attempts after the first failure. Default: 3.
	MaxRetries int

	// InitialBackoff is the wait before the first retry. Default: 1s.
	InitialBackoff time.Duration

	// MaxBackoff caps the computed backoff. Default: 30s.
	MaxBackoff time.Duration

	// BackoffFactor is the exponential growth per attempt. Default: 2.0.
	BackoffFactor float64

	// JitterFraction adds up to this fraction of the backoff as random noise.
	// Default: 0.1.
	JitterFraction float64

	// RetryableFunc decides whether an error is worth another attempt.
	// Default: [IsTransient].
	RetryableFunc func(error) bool
}

// transientStatus lists the HTTP statuses treated as transient. 529 is the
// "overloaded" status some hosted providers use.
var transientStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
	529:                            true,
}

// IsTransient reports whether err carries an HTTP status worth retrying.
// Timeouts and cancellations are not retried.
func IsTransient(err error) bool {
	var statusErr *utils.StatusError
	if errors.As(err, &statusErr) {
		return transientStatus[statusErr.StatusCode]
	}
	return false
}

func applyRetryDefaults(config *RetryConfig) {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.InitialBackoff == 0 {
		config.InitialBackoff = time.Second
	}
	if config.MaxBackoff == 0 {
		config.MaxBackoff = 30 * time.Second
	}
	if config.BackoffFactor == 0 {
		config.BackoffFactor = 2.0
	}
	if config.JitterFraction == 0 {
		config.JitterFraction = 0.1
	}
	if config.RetryableFunc == nil {
		config.RetryableFunc = IsTransient
	}
}

// computeBackoff returns min(InitialBackoff * BackoffFactor^attempt, MaxBackoff)
// plus jitter, for a 0-indexed attempt.
func computeBackoff(config RetryConfig, attempt int) time.Duration {
	base := float64(config.InitialBackoff) * math.Pow(config.BackoffFactor, float64(attempt))
	if base > float64(config.MaxBackoff) {
		base = float64(config.MaxBackoff)
	}

	jitter := base * config.JitterFraction * rand.Float64() //nolint:gosec // non-cryptographic jitter
	return time.Duration(base + jitter)
}

// NewRetryMiddleware retries failed calls that config.RetryableFunc accepts.
// Non-retryable errors are returned at once. On exhaustion the error wraps
// both [ErrRetryExhausted] and the last provider error.
func NewRetryMiddleware(config RetryConfig) client.Middleware {
	applyRetryDefaults(&config)

	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			var lastErr error

			for attempt := 0; attempt <= config.MaxRetries; attempt++ {
				if attempt > 0 {
					timer := time.NewTimer(computeBackoff(config, attempt-1))
					select {
					case <-ctx.Done():
						timer.Stop()
						return nil, ctx.Err()
					case <-timer.C:
					}
				}

				response, err := next(ctx, request)
				if err == nil {
					return response, nil
				}
				lastErr = err

				if !config.RetryableFunc(err) {
					return nil, err
				}
			}

			return nil, fmt.Errorf("%w after %d retries: %w", ErrRetryExhausted, config.MaxRetries, lastErr)
		}
	}
}
