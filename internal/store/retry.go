package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 3
)

// withRetry runs fn, retrying errors the classifier reports as transient with
// exponential backoff. Non-transient errors are returned at once.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("driver", db.driver).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}

		return err
	})
}
