package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const maxAttempts = 5

// retryDelay is a var so tests can shrink it.
var retryDelay = 5 * time.Second

// Connect runs fn until it succeeds, up to maxAttempts with a fixed delay
// between attempts. Failed attempts are logged; the last error is returned
// so callers can treat exhaustion as fatal.
func Connect(ctx context.Context, log *logrus.Entry, service string, fn func() error) error {
	attempt := 0

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryDelay), maxAttempts-1),
		ctx,
	)

	return backoff.Retry(func() error {
		attempt++
		if err := fn(); err != nil {
			fields := logrus.Fields{
				"event":   "connect_fail",
				"target":  service,
				"attempt": attempt,
				"max":     maxAttempts,
			}
			if attempt == maxAttempts {
				log.WithError(err).WithFields(fields).Error("connect failed")
			} else {
				log.WithError(err).WithFields(fields).Warn("retrying")
			}
			return err
		}
		log.WithFields(logrus.Fields{"target": service}).Info("connected")
		return nil
	}, bo)
}
