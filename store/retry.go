package store

import (
	"context"
	"errors"

	"github.com/aws/smithy-go"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// retryRead runs f, retrying transient backend failures with exponential
// backoff until Config.RetryTimeout elapses or ctx is done. Reads are
// idempotent so replaying them is safe; writes go through exactly once.
func (s *Store) retryRead(ctx context.Context, op string, f func() error) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = s.config.RetryTimeout

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := f()
		if err == nil {
			return nil
		}
		if !canRetry(err) {
			return backoff.Permanent(err)
		}
		s.logger.Warn("retrying read",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		return err
	}, backoff.WithContext(b, ctx))
}

// canRetry reports whether err is a transient throttling or service failure.
func canRetry(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ProvisionedThroughputExceededException",
			"ThrottlingException",
			"RequestLimitExceeded",
			"InternalServerError",
			"ServiceUnavailable":
			return true
		}
	}
	return false
}
