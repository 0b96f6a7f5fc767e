// Package retryutil wraps the bounded exponential backoff applied to every
// external collaborator call on the export path.
package retryutil

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Do runs op up to attempts times, doubling the delay from base between
// tries. Every error from op is treated as transient; the last error is
// returned once the attempts are exhausted.
func Do(ctx context.Context, attempts int, base time.Duration, op func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(base))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := op(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
