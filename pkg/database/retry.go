package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryPolicy bounds how hard a store connection is attempted at startup.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), uint64(attempts-1))
	return backoff.WithContext(b, ctx)
}

// Connect calls dial until it succeeds, the policy is exhausted or ctx is done.
// Every failed attempt is logged with the attempt number.
func Connect[T any](ctx context.Context, log *zap.Logger, store string, policy RetryPolicy, dial func(context.Context) (T, error)) (T, error) {
	attempt := 0
	op := func() (T, error) {
		attempt++
		return dial(ctx)
	}
	notify := func(err error, next time.Duration) {
		log.Warn("Store connection failed, retrying",
			zap.String("store", store),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", policy.Attempts),
			zap.Duration("retry_in", next),
			zap.Error(err),
		)
	}

	conn, err := backoff.RetryNotifyWithData(op, policy.backOff(ctx), notify)
	if err != nil {
		log.Error("Store connection gave up",
			zap.String("store", store),
			zap.Int("attempts", attempt),
			zap.Error(err),
		)
		return conn, err
	}

	log.Info("Store connected", zap.String("store", store), zap.Int("attempts", attempt))
	return conn, nil
}
