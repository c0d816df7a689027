// Package retry runs fallible operations again after a delay, doubling
// the delay between consecutive attempts.
package retry

import (
	"time"

	"github.com/sirupsen/logrus"
	"gitlab.com/flatkit/publisher/internal/log"
)

// sleep is replaced in tests.
var sleep = time.Sleep

// Policy controls how often and after which delays an operation is
// attempted again.
type Policy struct {
	// Retries is the number of additional attempts after a failed
	// first one.
	Retries int
	// BaseWait is the delay before the first retry.
	BaseWait time.Duration
	// GrowthFactor multiplies the delay after every failed attempt.
	GrowthFactor int
	// Logger receives the per-attempt log lines. If unset, the default
	// logger is used.
	Logger *logrus.Entry
}

// DefaultPolicy retries five times, waiting 1s, 2s, 4s, 8s and 16s
// between attempts.
func DefaultPolicy() Policy {
	return Policy{
		Retries:      5,
		BaseWait:     time.Second,
		GrowthFactor: 2,
	}
}

// Do runs fn under the default policy.
func Do(fn func() error) error {
	return DefaultPolicy().Do(fn)
}

// Do runs fn until it succeeds or the retry budget is exhausted, in
// which case the most recent error is returned. The calling goroutine
// blocks for the whole wait between attempts.
//
// Every attempt carries its full side effects, so fn must be safe to
// run more than once.
func (p Policy) Do(fn func() error) error {
	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}

	wait := p.BaseWait
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			attemptsTotal.WithLabelValues("success").Inc()
			return nil
		}
		attemptsTotal.WithLabelValues("failure").Inc()
		logger.WithError(err).Info("operation failed")

		if attempt >= p.Retries {
			return err
		}

		logger.Infof("Retrying (%d/%d) in %s...", attempt+1, p.Retries, wait)
		sleep(wait)
		wait *= time.Duration(p.GrowthFactor)
	}
}
