package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:     attempts,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2,
	}
}

func TestDo_SuccessFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	calls := 0
	var retried []int
	cfg := fastConfig(5)
	cfg.OnRetry = func(attempt int, wait time.Duration, err error) {
		retried = append(retried, attempt)
	}

	err := Do(context.Background(), cfg, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("broker not available")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_MaxAttemptsReached(t *testing.T) {
	cause := errors.New("broker not available")
	calls := 0

	err := Do(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		return cause
	})

	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 3, calls)
}

func TestDo_NonRetryableStopsImmediately(t *testing.T) {
	permanent := errors.New("invalid configuration")
	cfg := fastConfig(5)
	cfg.Retryable = func(err error) bool { return !errors.Is(err, permanent) }
	calls := 0

	err := Do(context.Background(), cfg, func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0

	err := Do(ctx, fastConfig(3), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestDoWithValue(t *testing.T) {
	calls := 0
	value, err := DoWithValue(context.Background(), fastConfig(3), func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("temporary")
		}
		return "connected", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "connected", value)
}

func TestBackoff(t *testing.T) {
	cfg := Config{InitialInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond, Multiplier: 2}

	assert.Equal(t, 100*time.Millisecond, backoff(cfg, 1))
	assert.Equal(t, 200*time.Millisecond, backoff(cfg, 2))
	assert.Equal(t, 300*time.Millisecond, backoff(cfg, 3))
}
