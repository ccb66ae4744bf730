package retry

import (
	"context"
	"errors"
	"math"
	"time"
)

// ErrMaxRetriesExceeded는 최대 재시도 횟수를 초과했을 때 발생합니다
var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded")

// Config는 재시도 설정입니다
type Config struct {
	MaxAttempts     int           // 최대 시도 횟수
	InitialInterval time.Duration // 초기 대기 시간
	MaxInterval     time.Duration // 최대 대기 시간
	Multiplier      float64       // 대기 시간 증가 배율

	// Retryable이 false를 반환하면 즉시 중단합니다. nil이면 모든 에러를 재시도합니다
	Retryable func(err error) bool

	// OnRetry는 다음 시도 전에 호출됩니다
	OnRetry func(attempt int, wait time.Duration, err error)
}

// DefaultConfig는 기본 재시도 설정입니다
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     5,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		Multiplier:      2.0,
	}
}

// Do는 fn이 성공하거나 시도 횟수를 모두 쓸 때까지 exponential backoff로 재시도합니다
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	_, err := DoWithValue(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// DoWithValue는 값을 반환하는 함수를 재시도합니다
func DoWithValue[T any](ctx context.Context, cfg Config, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if cfg.Retryable != nil && !cfg.Retryable(err) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		wait := backoff(cfg, attempt)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, wait, err)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, errors.Join(ErrMaxRetriesExceeded, lastErr)
}

// backoff은 attempt번째 실패 후의 대기 시간을 계산합니다
func backoff(cfg Config, attempt int) time.Duration {
	multiplier := cfg.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	wait := float64(cfg.InitialInterval) * math.Pow(multiplier, float64(attempt-1))
	if cfg.MaxInterval > 0 && wait > float64(cfg.MaxInterval) {
		wait = float64(cfg.MaxInterval)
	}
	return time.Duration(wait)
}
