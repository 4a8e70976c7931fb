package client

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/abhisek/wikiquiz/internal/quiz"
)

// RetryConfig configures retries of read operations.
type RetryConfig struct {
	// MaxAttempts counts the first try. Values below 1 disable retries.
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the settings used by the CLI.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 250 * time.Millisecond,
		MaxWait:     2 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryService is a decorator that retries ListHistory and FetchQuiz on
// transient failures with exponential backoff and jitter. GenerateQuiz is
// never retried: each call creates a stored quiz on the service.
type RetryService struct {
	inner  Service
	config RetryConfig
}

var _ Service = (*RetryService)(nil)

// WithRetry wraps svc with retry logic.
func WithRetry(svc Service, cfg RetryConfig) Service {
	if cfg.MaxAttempts <= 1 {
		return svc
	}
	return &RetryService{inner: svc, config: cfg}
}

func (r *RetryService) GenerateQuiz(ctx context.Context, url string) (*quiz.Quiz, error) {
	return r.inner.GenerateQuiz(ctx, url)
}

func (r *RetryService) ListHistory(ctx context.Context) ([]quiz.HistoryEntry, error) {
	var entries []quiz.HistoryEntry
	err := r.do(ctx, func() error {
		var err error
		entries, err = r.inner.ListHistory(ctx)
		return err
	})
	return entries, err
}

func (r *RetryService) FetchQuiz(ctx context.Context, id quiz.ID) (*quiz.Quiz, error) {
	var q *quiz.Quiz
	err := r.do(ctx, func() error {
		var err error
		q, err = r.inner.FetchQuiz(ctx, id)
		return err
	})
	return q, err
}

func (r *RetryService) do(ctx context.Context, call func() error) error {
	var lastErr error
	for attempt := range r.config.MaxAttempts {
		err := call()
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}

		// Last attempt: don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(r.backoff(attempt)):
		}
	}
	return lastErr
}

// retryable reports whether err is worth another attempt: connection
// failures, 429 and 5xx answers. Context errors and anything that is not
// a ServiceError are final.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var se *ServiceError
	if !errors.As(err, &se) {
		return false
	}
	switch se.Kind {
	case KindUnavailable:
		return true
	case KindStatus:
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	default:
		return false
	}
}

// backoff computes the wait duration for the given attempt.
func (r *RetryService) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
