package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/pathdash/internal/debug"
)

// retryClass says how a failed attempt should be handled.
type retryClass int

const (
	failFast retryClass = iota
	retryTransient
	retryOnce
)

// classify sorts provider errors. Context errors and anything the provider
// did not mark as transient fail fast; a malformed response gets one retry.
func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return failFast
	}
	var (
		inv     *ErrInvalidResponse
		rl      *ErrRateLimit
		unavail *ErrProviderUnavailable
	)
	switch {
	case errors.As(err, &inv):
		return retryOnce
	case errors.As(err, &rl), errors.As(err, &unavail):
		return retryTransient
	default:
		return failFast
	}
}

// RetryProvider retries transient failures of the wrapped provider with
// exponential backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	usedOnce := false
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classify(err) {
		case failFast:
			return nil, err
		case retryOnce:
			if usedOnce {
				return nil, err
			}
			usedOnce = true
		}
		if attempt >= r.config.MaxAttempts {
			return nil, err
		}

		wait := r.wait(attempt, err)
		debug.Log("llm %s purpose=%s attempt %d/%d failed, retrying in %v: %v",
			r.inner.ModelID(), PurposeFrom(ctx), attempt, r.config.MaxAttempts, wait, err)
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// wait returns the pause after the given 1-based attempt. A server supplied
// Retry-After wins but is still capped at MaxWait.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return min(rl.RetryAfter, r.config.MaxWait)
	}

	d := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt-1))
	d = math.Min(d, float64(r.config.MaxWait))
	d *= 0.8 + 0.4*rand.Float64()
	return time.Duration(d)
}
